package shortcuts

import "agentdeck/internal/keybind"

// shellShortcut pairs a definition with the frontend event its action emits
// (empty for shortcuts that only touch overlay state).
type shellShortcut struct {
	def   Definition
	event string
	data  interface{}
}

// RegisterShellShortcuts registers the app-shell shortcut set. These live for
// the process lifetime and are registered exactly once at startup — except
// when a keymap preset file changes, in which case re-registering replaces
// them in place with the new defaults. Presets re-map a shortcut's default
// binding by id; user overrides still win over either.
func RegisterShellShortcuts(r *Registry, emit EventEmitter, presets map[string]keybind.Binding) {
	shell := []shellShortcut{
		{
			def: Definition{
				ID:          "close-top-overlay",
				Label:       "Close overlay",
				Description: "Close the topmost open panel, palette or modal",
				Category:    CategoryGeneral,
				Default:     keybind.Binding{Key: "Escape"},
				Global:      true,
				Action:      func() { r.CloseTopOverlay() },
			},
		},
		{
			def: Definition{
				ID:          "toggle-shortcuts-help",
				Label:       "Keyboard shortcuts",
				Description: "Show or hide the keyboard shortcuts panel",
				Category:    CategoryGeneral,
				Default:     keybind.Binding{Key: "/", Ctrl: true},
				Global:      true,
				Action:      r.ToggleHelp,
			},
		},
		{
			def: Definition{
				ID:          "open-command-palette",
				Label:       "Command palette",
				Description: "Open the command palette",
				Category:    CategoryGeneral,
				Default:     keybind.Binding{Key: "k", Ctrl: true},
				Global:      true,
				Action:      r.OpenCommandPalette,
			},
			event: "palette:open",
		},
		{
			def: Definition{
				ID:          "open-quick-switcher",
				Label:       "Quick switcher",
				Description: "Jump to a project, session or agent",
				Category:    CategoryNavigation,
				Default:     keybind.Binding{Key: "p", Ctrl: true},
				Global:      true,
				Action:      r.OpenQuickSwitcher,
			},
			event: "switcher:open",
		},
		{
			def: Definition{
				ID:          "switch-view-agents",
				Label:       "Agents view",
				Description: "Switch to the agents dashboard",
				Category:    CategoryNavigation,
				Default:     keybind.Binding{Key: "1", Ctrl: true},
			},
			event: "view:switch",
			data:  map[string]string{"view": "agents"},
		},
		{
			def: Definition{
				ID:          "switch-view-projects",
				Label:       "Projects view",
				Description: "Switch to the project registry",
				Category:    CategoryNavigation,
				Default:     keybind.Binding{Key: "2", Ctrl: true},
			},
			event: "view:switch",
			data:  map[string]string{"view": "projects"},
		},
		{
			def: Definition{
				ID:          "switch-view-usage",
				Label:       "Usage view",
				Description: "Switch to the usage dashboard",
				Category:    CategoryNavigation,
				Default:     keybind.Binding{Key: "3", Ctrl: true},
			},
			event: "view:switch",
			data:  map[string]string{"view": "usage"},
		},
		{
			def: Definition{
				ID:          "new-terminal",
				Label:       "New terminal",
				Description: "Open a new terminal tab",
				Category:    CategoryTerminal,
				Default:     keybind.Binding{Key: "n", Ctrl: true},
			},
			event: "terminal:new",
		},
		{
			def: Definition{
				ID:          "next-terminal-tab",
				Label:       "Next terminal",
				Description: "Focus the next terminal tab",
				Category:    CategoryTerminal,
				Default:     keybind.Binding{Key: "Tab", Ctrl: true},
				Global:      true,
			},
			event: "terminal:next-tab",
		},
		{
			def: Definition{
				ID:          "previous-terminal-tab",
				Label:       "Previous terminal",
				Description: "Focus the previous terminal tab",
				Category:    CategoryTerminal,
				Default:     keybind.Binding{Key: "Tab", Ctrl: true, Shift: true},
				Global:      true,
			},
			event: "terminal:previous-tab",
		},
		{
			def: Definition{
				ID:          "interrupt-agent",
				Label:       "Interrupt agent",
				Description: "Send an interrupt to the focused agent session",
				Category:    CategoryAgents,
				Default:     keybind.Binding{Key: "c", Ctrl: true, Shift: true},
			},
			event: "agent:interrupt",
		},
		{
			def: Definition{
				ID:          "toggle-sidebar",
				Label:       "Toggle sidebar",
				Description: "Show or hide the navigation sidebar",
				Category:    CategoryPanels,
				Default:     keybind.Binding{Key: "b", Ctrl: true},
			},
			event: "sidebar:toggle",
		},
	}

	for _, s := range shell {
		def := s.def
		if preset, ok := presets[def.ID]; ok {
			def.Default = preset
		}
		if s.event != "" {
			base, event, data := def.Action, s.event, s.data
			def.Action = func() {
				if base != nil {
					base()
				}
				if emit != nil {
					emit.Emit(event, data)
				}
			}
		}
		r.Register(def)
	}
}
