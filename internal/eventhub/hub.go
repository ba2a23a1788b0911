package eventhub

import (
	"context"
)

// Broadcaster delivers events to the frontend. The Wails runtime adapter in
// the app shell is the usual implementation.
type Broadcaster interface {
	BroadcastEvent(eventType string, payload interface{})
}

// EventHub is the single fan-out point for backend-to-frontend events.
type EventHub struct {
	ctx         context.Context
	broadcaster Broadcaster
}

// New creates a new EventHub
func New(ctx context.Context) *EventHub {
	return &EventHub{ctx: ctx}
}

// SetBroadcaster sets the event broadcaster
func (h *EventHub) SetBroadcaster(b Broadcaster) {
	h.broadcaster = b
}

func (h *EventHub) emit(eventName string, payload interface{}) {
	if h.broadcaster != nil {
		h.broadcaster.BroadcastEvent(eventName, payload)
	}
}

// Emit is the generic event sender (used as an EventEmitter)
func (h *EventHub) Emit(eventName string, payload interface{}) {
	h.emit(eventName, payload)
}

// ShortcutInvokedEvent fires when a dispatched key event matched a
// frontend-declared shortcut; the owning panel reacts to it.
type ShortcutInvokedEvent struct {
	ShortcutID string `json:"shortcutId"`
}

func (h *EventHub) EmitShortcutInvoked(shortcutID string) {
	h.emit("shortcut:invoked", ShortcutInvokedEvent{ShortcutID: shortcutID})
}

// EmitShortcutsChanged tells the customization panel to re-read registry
// state (definitions, overrides, overlay flags or conflicts changed).
func (h *EventHub) EmitShortcutsChanged() {
	h.emit("shortcuts:changed", nil)
}

// KeymapReloadedEvent fires after the keymap preset file was re-applied.
type KeymapReloadedEvent struct {
	Path string `json:"path"`
}

func (h *EventHub) EmitKeymapReloaded(path string) {
	h.emit("keymap:reloaded", KeymapReloadedEvent{Path: path})
}
