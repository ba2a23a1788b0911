package shortcuts

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"agentdeck/internal/keybind"
)

// overridesKey is the single namespaced key the override blob lives under in
// the settings store.
const overridesKey = "keyboard.custom_bindings"

// Registry is the in-memory catalog of shortcut definitions plus the user
// override map. It is constructed once at shell startup and shared by the
// dispatcher and the customization panel; isolated instances are cheap to
// build in tests.
type Registry struct {
	mu    sync.RWMutex
	store Store
	log   Logger

	defs  map[string]*Definition
	order []string // registration order; replace keeps the original position

	overrides map[string]keybind.Binding

	subscribers map[string]func()

	overlays overlayState
}

// NewRegistry creates a registry backed by the given settings store. Either
// argument may be nil: a nil store disables persistence, a nil logger falls
// back to the standard log package.
func NewRegistry(store Store, logger Logger) *Registry {
	if logger == nil {
		logger = stdLogger{}
	}
	return &Registry{
		store:       store,
		log:         logger,
		defs:        make(map[string]*Definition),
		overrides:   make(map[string]keybind.Binding),
		subscribers: make(map[string]func()),
	}
}

// LoadOverrides reads the persisted override blob. Called once at startup.
// Missing or malformed data is never fatal: the registry proceeds with an
// empty override set. Overrides for ids that are not (yet) registered are
// kept as-is; they become effective if a matching id registers later.
func (r *Registry) LoadOverrides() {
	if r.store == nil {
		return
	}

	raw, found, err := r.store.GetSetting(overridesKey)
	if err != nil {
		r.log.Warning("failed to load custom key bindings: " + err.Error())
		return
	}
	if !found {
		return
	}

	overrides := make(map[string]keybind.Binding)
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		r.log.Warning("custom key bindings are corrupt, starting with defaults: " + err.Error())
		return
	}

	r.mu.Lock()
	r.overrides = overrides
	r.mu.Unlock()
}

// Register inserts or replaces a definition by id and returns a disposal
// handle that unregisters it. Re-registration under a live id replaces the
// prior definition in place, keeping its position in registration order.
func (r *Registry) Register(def Definition) (dispose func()) {
	r.mu.Lock()
	d := def
	if _, exists := r.defs[d.ID]; exists {
		r.log.Warning(fmt.Sprintf("shortcut %q re-registered, replacing prior definition", d.ID))
	} else {
		r.order = append(r.order, d.ID)
	}
	r.defs[d.ID] = &d
	r.mu.Unlock()

	r.notify()
	return func() { r.Unregister(def.ID) }
}

// Unregister removes a definition. The id is immediately non-dispatchable;
// any override for it is retained harmlessly. Unknown ids are a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	if _, exists := r.defs[id]; !exists {
		r.mu.Unlock()
		return
	}
	delete(r.defs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	r.notify()
}

// List returns all live definitions in registration order.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.defs[id])
	}
	return out
}

// CategoryGroup is one category's shortcuts in registration order.
type CategoryGroup struct {
	Category  Category
	Shortcuts []Definition
}

// ByCategory groups live definitions by the fixed declared category order.
// Categories with no shortcuts are omitted.
func (r *Registry) ByCategory() []CategoryGroup {
	r.mu.RLock()
	byCat := make(map[Category][]Definition)
	for _, id := range r.order {
		d := r.defs[id]
		byCat[d.Category] = append(byCat[d.Category], *d)
	}
	r.mu.RUnlock()

	var groups []CategoryGroup
	for _, cat := range CategoryOrder {
		if defs, ok := byCat[cat]; ok {
			groups = append(groups, CategoryGroup{Category: cat, Shortcuts: defs})
		}
	}
	return groups
}

// EffectiveBinding resolves the binding actually armed for a shortcut: the
// user override if one exists, else the definition's default. The second
// return is false for unknown ids.
func (r *Registry) EffectiveBinding(id string) (keybind.Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.effectiveBindingLocked(id)
}

func (r *Registry) effectiveBindingLocked(id string) (keybind.Binding, bool) {
	def, ok := r.defs[id]
	if !ok {
		return keybind.Binding{}, false
	}
	if override, ok := r.overrides[id]; ok {
		return override, true
	}
	return def.Default, true
}

// Override returns the user override for an id, if any.
func (r *Registry) Override(id string) (keybind.Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.overrides[id]
	return b, ok
}

// Overrides returns a snapshot of the override map (used by profile export).
func (r *Registry) Overrides() map[string]keybind.Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]keybind.Binding, len(r.overrides))
	for id, b := range r.overrides {
		out[id] = b
	}
	return out
}

// SetCustomBinding overrides a shortcut's binding and persists immediately.
// Unknown ids are a harmless no-op. Collisions with other shortcuts are
// allowed; they are surfaced by FindConflicts, never rejected here.
func (r *Registry) SetCustomBinding(id string, binding keybind.Binding) {
	r.mu.Lock()
	if _, exists := r.defs[id]; !exists {
		r.mu.Unlock()
		return
	}
	r.overrides[id] = binding
	r.saveOverridesLocked()
	r.mu.Unlock()

	r.notify()
}

// ResetBinding removes a shortcut's override, reverting it to its default.
// Removing a stale override for an unregistered id is also fine.
func (r *Registry) ResetBinding(id string) {
	r.mu.Lock()
	if _, exists := r.overrides[id]; !exists {
		r.mu.Unlock()
		return
	}
	delete(r.overrides, id)
	r.saveOverridesLocked()
	r.mu.Unlock()

	r.notify()
}

// ResetAllBindings empties the override map and removes the persisted key
// entirely rather than writing an empty object.
func (r *Registry) ResetAllBindings() {
	r.mu.Lock()
	r.overrides = make(map[string]keybind.Binding)
	if r.store != nil {
		if err := r.store.DeleteSetting(overridesKey); err != nil {
			r.log.Warning("failed to delete custom key bindings: " + err.Error())
		}
	}
	r.mu.Unlock()

	r.notify()
}

// saveOverridesLocked writes the override map through to the store. Write
// failures are logged; in-memory state stays authoritative either way.
// Callers hold r.mu, so writes for the same key are naturally sequenced.
func (r *Registry) saveOverridesLocked() {
	if r.store == nil {
		return
	}
	data, err := json.Marshal(r.overrides)
	if err != nil {
		r.log.Warning("failed to serialize custom key bindings: " + err.Error())
		return
	}
	if err := r.store.SaveSetting(overridesKey, string(data)); err != nil {
		r.log.Warning("failed to persist custom key bindings: " + err.Error())
	}
}

// Subscribe registers a callback invoked after every registry change
// (definitions, overrides, overlay flags). Returns a cancel func.
func (r *Registry) Subscribe(fn func()) (cancel func()) {
	id := uuid.New().String()

	r.mu.Lock()
	r.subscribers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subscribers, id)
		r.mu.Unlock()
	}
}

// notify invokes subscribers outside the registry lock so they may call back
// into the registry.
func (r *Registry) notify() {
	r.mu.RLock()
	fns := make([]func(), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		fns = append(fns, fn)
	}
	r.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
