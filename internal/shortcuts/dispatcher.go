package shortcuts

import (
	"fmt"
	"sync"

	"agentdeck/internal/keybind"
)

// KeySource is the host windowing layer's keydown feed. The handler returns
// true when the event was consumed, which the host translates into
// preventDefault on the original DOM event.
type KeySource interface {
	SubscribeKeys(handler func(keybind.Event) bool) (cancel func())
}

// FocusQuery answers whether the currently focused element is a text-editing
// control (input, textarea, content-editable).
type FocusQuery interface {
	IsTextInputFocused() bool
}

// Dispatcher owns the single subscription to the key-event source for the
// process lifetime of the shell. It is stateless per event: each keydown is
// resolved against the registry's current state, and actions are invoked
// without awaiting them, so a second keydown may be processed before a prior
// action's async work completes.
type Dispatcher struct {
	registry *Registry
	source   KeySource
	focus    FocusQuery
	log      Logger

	mu     sync.Mutex
	cancel func()
}

// NewDispatcher creates a dispatcher over the given registry. A nil focus
// query is treated as "no text input ever focused".
func NewDispatcher(registry *Registry, source KeySource, focus FocusQuery, logger Logger) *Dispatcher {
	if logger == nil {
		logger = stdLogger{}
	}
	return &Dispatcher{
		registry: registry,
		source:   source,
		focus:    focus,
		log:      logger,
	}
}

// Start attaches the dispatcher to its key source. Attached exactly once for
// the shell's lifetime; calling Start on a started dispatcher is an error.
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return fmt.Errorf("dispatcher already started")
	}
	d.cancel = d.source.SubscribeKeys(d.Dispatch)
	return nil
}

// Stop detaches from the key source. Safe to call on a stopped dispatcher.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Dispatch matches one keydown against all registered shortcuts in
// registration order and invokes the first match's action exactly once.
// Returns true when a shortcut consumed the event. Disabled shortcuts never
// match; non-global shortcuts do not match while a text-editing control has
// focus. Matching is exact on the key (case-insensitive) and on all four
// modifier flags.
func (d *Dispatcher) Dispatch(ev keybind.Event) bool {
	editing := d.focus != nil && d.focus.IsTextInputFocused()

	d.registry.mu.RLock()
	var matched bool
	var action func()
	for _, id := range d.registry.order {
		def := d.registry.defs[id]
		if def.Disabled {
			continue
		}
		if editing && !def.Global {
			continue
		}
		binding, ok := d.registry.effectiveBindingLocked(id)
		if !ok {
			continue
		}
		if binding.Matches(ev) {
			matched = true
			action = def.Action
			break
		}
	}
	d.registry.mu.RUnlock()

	if !matched {
		return false
	}
	if action != nil {
		action()
	}
	return true
}
