package keymap

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"agentdeck/internal/keybind"
)

// Profile is an exported snapshot of the user's custom key bindings, written
// zstd-compressed so profiles stay parseable blobs rather than hand-editable
// files (keymap.yaml is the hand-editable surface).
type Profile struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	ExportedAt time.Time                  `json:"exported_at"`
	Bindings   map[string]keybind.Binding `json:"bindings"`
}

// ExportProfile writes the current override set to path.
func (m *Manager) ExportProfile(path, name string) (*Profile, error) {
	profile := &Profile{
		ID:         uuid.New().String(),
		Name:       name,
		ExportedAt: time.Now(),
		Bindings:   m.registry.Overrides(),
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	compressed := m.encoder.EncodeAll(data, nil)
	if err := os.WriteFile(path, compressed, 0644); err != nil {
		return nil, fmt.Errorf("write profile: %w", err)
	}

	return profile, nil
}

// ImportProfile reads a profile from path and applies its bindings as custom
// overrides. Bindings for shortcut ids not currently registered are skipped
// by the registry's own unknown-id rule.
func (m *Manager) ImportProfile(path string) (*Profile, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	data, err := m.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress profile: %w", err)
	}

	profile := &Profile{}
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	for id, binding := range profile.Bindings {
		m.registry.SetCustomBinding(id, binding)
	}

	return profile, nil
}
