package shortcuts

// overlayState tracks which transient UI surfaces are open. The flags live on
// the registry so the Escape multiplexer and the customization panel read one
// source of truth. Guarded by Registry.mu.
type overlayState struct {
	helpOpen     bool
	paletteOpen  bool
	switcherOpen bool
	modalOpen    bool
}

// OverlayFlags is a read snapshot of the open/closed overlay flags.
type OverlayFlags struct {
	HelpOpen           bool `json:"helpOpen"`
	CommandPaletteOpen bool `json:"commandPaletteOpen"`
	QuickSwitcherOpen  bool `json:"quickSwitcherOpen"`
	ModalOpen          bool `json:"modalOpen"`
}

// Overlays returns the current overlay flags.
func (r *Registry) Overlays() OverlayFlags {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return OverlayFlags{
		HelpOpen:           r.overlays.helpOpen,
		CommandPaletteOpen: r.overlays.paletteOpen,
		QuickSwitcherOpen:  r.overlays.switcherOpen,
		ModalOpen:          r.overlays.modalOpen,
	}
}

func (r *Registry) setOverlay(flag *bool, open bool) {
	r.mu.Lock()
	changed := *flag != open
	*flag = open
	r.mu.Unlock()

	if changed {
		r.notify()
	}
}

func (r *Registry) toggleOverlay(flag *bool) {
	r.mu.Lock()
	*flag = !*flag
	r.mu.Unlock()

	r.notify()
}

// OpenHelp opens the shortcuts-help panel.
func (r *Registry) OpenHelp() { r.setOverlay(&r.overlays.helpOpen, true) }

// CloseHelp closes the shortcuts-help panel.
func (r *Registry) CloseHelp() { r.setOverlay(&r.overlays.helpOpen, false) }

// ToggleHelp flips the shortcuts-help panel.
func (r *Registry) ToggleHelp() { r.toggleOverlay(&r.overlays.helpOpen) }

// OpenCommandPalette opens the command palette.
func (r *Registry) OpenCommandPalette() { r.setOverlay(&r.overlays.paletteOpen, true) }

// CloseCommandPalette closes the command palette.
func (r *Registry) CloseCommandPalette() { r.setOverlay(&r.overlays.paletteOpen, false) }

// ToggleCommandPalette flips the command palette.
func (r *Registry) ToggleCommandPalette() { r.toggleOverlay(&r.overlays.paletteOpen) }

// OpenQuickSwitcher opens the quick switcher.
func (r *Registry) OpenQuickSwitcher() { r.setOverlay(&r.overlays.switcherOpen, true) }

// CloseQuickSwitcher closes the quick switcher.
func (r *Registry) CloseQuickSwitcher() { r.setOverlay(&r.overlays.switcherOpen, false) }

// ToggleQuickSwitcher flips the quick switcher.
func (r *Registry) ToggleQuickSwitcher() { r.toggleOverlay(&r.overlays.switcherOpen) }

// OpenModal marks a generic modal as open.
func (r *Registry) OpenModal() { r.setOverlay(&r.overlays.modalOpen, true) }

// CloseModal marks the generic modal as closed.
func (r *Registry) CloseModal() { r.setOverlay(&r.overlays.modalOpen, false) }

// CloseTopOverlay closes the highest-priority overlay that is currently open
// and reports whether anything was closed. Priority is fixed: shortcuts-help
// panel, then command palette, then quick switcher, then generic modal. Only
// the topmost one closes; lower flags are left untouched. This is the action
// behind the built-in Escape shortcut.
func (r *Registry) CloseTopOverlay() bool {
	r.mu.Lock()
	var closed bool
	switch {
	case r.overlays.helpOpen:
		r.overlays.helpOpen = false
		closed = true
	case r.overlays.paletteOpen:
		r.overlays.paletteOpen = false
		closed = true
	case r.overlays.switcherOpen:
		r.overlays.switcherOpen = false
		closed = true
	case r.overlays.modalOpen:
		r.overlays.modalOpen = false
		closed = true
	}
	r.mu.Unlock()

	if closed {
		r.notify()
	}
	return closed
}
