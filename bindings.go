// bindings.go
package main

import (
	"fmt"

	"agentdeck/internal/keybind"
	"agentdeck/internal/keymap"
	"agentdeck/internal/shortcuts"
)

// ===== Key Event Bindings =====

// HandleKeyEvent forwards one keydown from the webview into the dispatcher.
// Returns true when a shortcut consumed the event; the frontend then calls
// preventDefault on the original DOM event.
func (a *App) HandleKeyEvent(event keybind.Event) bool {
	if a.keyFeed == nil {
		return false
	}
	return a.keyFeed.push(event)
}

// SetTextInputFocus is called by the frontend on focusin/focusout so the
// dispatcher knows whether a text-editing control (input, textarea,
// content-editable) currently holds focus.
func (a *App) SetTextInputFocus(focused bool) {
	a.focusMu.Lock()
	a.textInputFocused = focused
	a.focusMu.Unlock()
}

// ===== Shortcut Registry Bindings =====

// ShortcutInfo describes one shortcut for the customization panel
type ShortcutInfo struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Binding     keybind.Binding `json:"binding"`
	Display     string          `json:"display"`
	IsCustom    bool            `json:"isCustom"`
	Global      bool            `json:"global"`
	Disabled    bool            `json:"disabled"`
}

// ShortcutCategory is one category group, in the fixed display order
type ShortcutCategory struct {
	Category  string         `json:"category"`
	Shortcuts []ShortcutInfo `json:"shortcuts"`
}

func (a *App) shortcutInfo(def shortcuts.Definition) ShortcutInfo {
	binding, _ := a.registry.EffectiveBinding(def.ID)
	_, isCustom := a.registry.Override(def.ID)
	return ShortcutInfo{
		ID:          def.ID,
		Label:       def.Label,
		Description: def.Description,
		Category:    string(def.Category),
		Binding:     binding,
		Display:     binding.Display(),
		IsCustom:    isCustom,
		Global:      def.Global,
		Disabled:    def.Disabled,
	}
}

// ShortcutsByCategory returns all live shortcuts grouped for display
func (a *App) ShortcutsByCategory() []ShortcutCategory {
	if a.registry == nil {
		return nil
	}

	var out []ShortcutCategory
	for _, group := range a.registry.ByCategory() {
		cat := ShortcutCategory{Category: string(group.Category)}
		for _, def := range group.Shortcuts {
			cat.Shortcuts = append(cat.Shortcuts, a.shortcutInfo(def))
		}
		out = append(out, cat)
	}
	return out
}

// FindShortcutConflicts reports pairs of shortcuts sharing one effective
// binding, for the customization panel's warnings
func (a *App) FindShortcutConflicts() []shortcuts.Conflict {
	if a.registry == nil {
		return nil
	}
	return a.registry.FindConflicts()
}

// EffectiveBindingInfo is the resolved binding for one shortcut id
type EffectiveBindingInfo struct {
	Binding keybind.Binding `json:"binding"`
	Display string          `json:"display"`
}

// GetEffectiveBinding resolves a shortcut's armed binding; nil for unknown ids
func (a *App) GetEffectiveBinding(id string) *EffectiveBindingInfo {
	if a.registry == nil {
		return nil
	}
	binding, ok := a.registry.EffectiveBinding(id)
	if !ok {
		return nil
	}
	return &EffectiveBindingInfo{Binding: binding, Display: binding.Display()}
}

// SetCustomBinding overrides a shortcut's binding; persisted immediately
func (a *App) SetCustomBinding(id string, binding keybind.Binding) {
	if a.registry == nil {
		return
	}
	a.registry.SetCustomBinding(id, binding)
}

// ResetBinding reverts one shortcut to its default binding
func (a *App) ResetBinding(id string) {
	if a.registry == nil {
		return
	}
	a.registry.ResetBinding(id)
}

// ResetAllBindings reverts every shortcut to its default binding
func (a *App) ResetAllBindings() {
	if a.registry == nil {
		return
	}
	a.registry.ResetAllBindings()
}

// FrontendShortcut declares a shortcut owned by a webview panel. Its action
// emits shortcut:invoked with the id; the owning panel reacts to the event.
type FrontendShortcut struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Default     keybind.Binding `json:"defaultBinding"`
	Global      bool            `json:"global"`
}

// RegisterFrontendShortcut registers a webview-declared shortcut. Panels call
// UnregisterShortcut with the same id when they unmount.
func (a *App) RegisterFrontendShortcut(spec FrontendShortcut) {
	if a.registry == nil {
		return
	}

	hub, id := a.eventHub, spec.ID
	a.registry.Register(shortcuts.Definition{
		ID:          spec.ID,
		Label:       spec.Label,
		Description: spec.Description,
		Category:    shortcuts.Category(spec.Category),
		Default:     spec.Default,
		Global:      spec.Global,
		Action: func() {
			if hub != nil {
				hub.EmitShortcutInvoked(id)
			}
		},
	})
}

// UnregisterShortcut removes a shortcut; its override is kept for a future
// registration under the same id
func (a *App) UnregisterShortcut(id string) {
	if a.registry == nil {
		return
	}
	a.registry.Unregister(id)
}

// ===== Overlay Bindings =====

// GetOverlayFlags returns the open/closed state of the transient surfaces
func (a *App) GetOverlayFlags() shortcuts.OverlayFlags {
	if a.registry == nil {
		return shortcuts.OverlayFlags{}
	}
	return a.registry.Overlays()
}

// OpenHelp opens the keyboard shortcuts panel
func (a *App) OpenHelp() {
	if a.registry != nil {
		a.registry.OpenHelp()
	}
}

// CloseHelp closes the keyboard shortcuts panel
func (a *App) CloseHelp() {
	if a.registry != nil {
		a.registry.CloseHelp()
	}
}

// ToggleHelp flips the keyboard shortcuts panel
func (a *App) ToggleHelp() {
	if a.registry != nil {
		a.registry.ToggleHelp()
	}
}

// OpenCommandPalette opens the command palette
func (a *App) OpenCommandPalette() {
	if a.registry != nil {
		a.registry.OpenCommandPalette()
	}
}

// CloseCommandPalette closes the command palette
func (a *App) CloseCommandPalette() {
	if a.registry != nil {
		a.registry.CloseCommandPalette()
	}
}

// ToggleCommandPalette flips the command palette
func (a *App) ToggleCommandPalette() {
	if a.registry != nil {
		a.registry.ToggleCommandPalette()
	}
}

// OpenQuickSwitcher opens the quick switcher
func (a *App) OpenQuickSwitcher() {
	if a.registry != nil {
		a.registry.OpenQuickSwitcher()
	}
}

// CloseQuickSwitcher closes the quick switcher
func (a *App) CloseQuickSwitcher() {
	if a.registry != nil {
		a.registry.CloseQuickSwitcher()
	}
}

// ToggleQuickSwitcher flips the quick switcher
func (a *App) ToggleQuickSwitcher() {
	if a.registry != nil {
		a.registry.ToggleQuickSwitcher()
	}
}

// OpenModal marks a generic modal open
func (a *App) OpenModal() {
	if a.registry != nil {
		a.registry.OpenModal()
	}
}

// CloseModal marks the generic modal closed
func (a *App) CloseModal() {
	if a.registry != nil {
		a.registry.CloseModal()
	}
}

// CloseTopOverlay closes the highest-priority open overlay (the Escape action)
func (a *App) CloseTopOverlay() bool {
	if a.registry == nil {
		return false
	}
	return a.registry.CloseTopOverlay()
}

// ===== Keymap Profile Bindings =====

// ExportKeymapProfile writes the current custom bindings to a file
func (a *App) ExportKeymapProfile(path, name string) (*keymap.Profile, error) {
	if a.keymapManager == nil {
		return nil, fmt.Errorf("keymap manager not initialized")
	}
	return a.keymapManager.ExportProfile(path, name)
}

// ImportKeymapProfile reads a profile file and applies its bindings
func (a *App) ImportKeymapProfile(path string) (*keymap.Profile, error) {
	if a.keymapManager == nil {
		return nil, fmt.Errorf("keymap manager not initialized")
	}
	return a.keymapManager.ImportProfile(path)
}
