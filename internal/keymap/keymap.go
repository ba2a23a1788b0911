// Package keymap applies user keymap preset files to the shortcut registry
// and handles keymap profile export/import.
package keymap

import (
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"agentdeck/internal/keybind"
	"agentdeck/internal/shortcuts"
	"agentdeck/internal/watcher"
)

// reloadDebounce coalesces the burst of fsnotify events an editor save emits.
const reloadDebounce = 200 * time.Millisecond

// File is the on-disk shape of keymap.yaml: shortcut id -> key spec, e.g.
//
//	bindings:
//	  new-terminal: ctrl+shift+t
//	  open-command-palette: cmd+k
//
// Presets re-map a shell shortcut's default binding; user overrides recorded
// in the customization panel still win over presets.
type File struct {
	Bindings map[string]string `yaml:"bindings"`
}

// Manager loads the keymap preset file, applies it to the registry and
// re-applies it when the file changes on disk.
type Manager struct {
	path     string
	registry *shortcuts.Registry
	emit     shortcuts.EventEmitter
	log      shortcuts.Logger

	fileWatcher *watcher.FileWatcher

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewManager creates a keymap manager for the preset file at path.
func NewManager(path string, registry *shortcuts.Registry, emit shortcuts.EventEmitter, logger shortcuts.Logger) *Manager {
	encoder, _ := zstd.NewWriter(nil)
	decoder, _ := zstd.NewReader(nil)

	return &Manager{
		path:     path,
		registry: registry,
		emit:     emit,
		log:      logger,
		encoder:  encoder,
		decoder:  decoder,
	}
}

// Apply registers the app-shell shortcuts with the current presets merged
// over the built-in defaults. Re-applying replaces the live definitions by
// id, so a changed preset takes effect without restarting.
func (m *Manager) Apply() {
	shortcuts.RegisterShellShortcuts(m.registry, m.emit, m.loadPresets())
}

// loadPresets parses the preset file. A missing file means no presets; a
// broken file or a broken entry is logged and skipped, never fatal.
func (m *Manager) loadPresets() map[string]keybind.Binding {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) && m.log != nil {
			m.log.Warning("failed to read keymap file: " + err.Error())
		}
		return nil
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		if m.log != nil {
			m.log.Warning("keymap file is not valid YAML, ignoring: " + err.Error())
		}
		return nil
	}

	presets := make(map[string]keybind.Binding, len(file.Bindings))
	for id, spec := range file.Bindings {
		binding, err := keybind.Parse(spec)
		if err != nil {
			if m.log != nil {
				m.log.Warning(fmt.Sprintf("keymap entry %q: %v", id, err))
			}
			continue
		}
		presets[id] = binding
	}
	return presets
}

// Watch re-applies the presets whenever the file changes on disk.
func (m *Manager) Watch() error {
	if m.fileWatcher != nil {
		return fmt.Errorf("keymap watcher already started")
	}

	fw, err := watcher.New(m.path, reloadDebounce, func() {
		m.Apply()
		if m.log != nil {
			m.log.Info("keymap presets reloaded from " + m.path)
		}
		if m.emit != nil {
			m.emit.Emit("keymap:reloaded", m.path)
		}
	})
	if err != nil {
		return err
	}
	if err := fw.Start(); err != nil {
		fw.Close()
		return err
	}

	m.fileWatcher = fw
	return nil
}

// Close stops the file watcher, if started.
func (m *Manager) Close() {
	if m.fileWatcher != nil {
		m.fileWatcher.Close()
		m.fileWatcher = nil
	}
}
