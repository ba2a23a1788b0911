package shortcuts

import (
	"testing"

	"agentdeck/internal/keybind"
)

// fakeSource hands the subscribed handler back to the test.
type fakeSource struct {
	handler func(keybind.Event) bool
}

func (s *fakeSource) SubscribeKeys(h func(keybind.Event) bool) func() {
	s.handler = h
	return func() { s.handler = nil }
}

// fakeFocus simulates the focus-context query.
type fakeFocus struct {
	editing bool
}

func (f *fakeFocus) IsTextInputFocused() bool { return f.editing }

func TestDispatcher_InvokesMatchingAction(t *testing.T) {
	r := NewRegistry(nil, nil)
	var calls int
	r.Register(Definition{
		ID:      "new-terminal",
		Default: keybind.Binding{Key: "n", Ctrl: true},
		Action:  func() { calls++ },
	})

	d := NewDispatcher(r, &fakeSource{}, &fakeFocus{}, nil)

	if !d.Dispatch(keybind.Event{Key: "n", Ctrl: true}) {
		t.Error("Expected event to be consumed")
	}
	if calls != 1 {
		t.Errorf("Expected action invoked exactly once, got %d", calls)
	}

	// Extra modifier is a non-match
	if d.Dispatch(keybind.Event{Key: "n", Ctrl: true, Shift: true}) {
		t.Error("Expected extra modifier to be a non-match")
	}
	if calls != 1 {
		t.Errorf("Expected no further invocation, got %d", calls)
	}
}

func TestDispatcher_NoMatchPassesThrough(t *testing.T) {
	r := NewRegistry(nil, nil)
	r.Register(Definition{ID: "a", Default: keybind.Binding{Key: "k", Ctrl: true}, Action: func() {}})

	d := NewDispatcher(r, &fakeSource{}, &fakeFocus{}, nil)
	if d.Dispatch(keybind.Event{Key: "j", Ctrl: true}) {
		t.Error("Expected unmatched event to pass through")
	}
}

func TestDispatcher_TextInputFocus(t *testing.T) {
	r := NewRegistry(nil, nil)
	var localCalls, globalCalls int
	r.Register(Definition{
		ID:      "local",
		Default: keybind.Binding{Key: "k", Ctrl: true},
		Action:  func() { localCalls++ },
	})
	r.Register(Definition{
		ID:      "global",
		Default: keybind.Binding{Key: "g", Ctrl: true},
		Global:  true,
		Action:  func() { globalCalls++ },
	})

	focus := &fakeFocus{editing: true}
	d := NewDispatcher(r, &fakeSource{}, focus, nil)

	if d.Dispatch(keybind.Event{Key: "k", Ctrl: true}) {
		t.Error("Non-global shortcut should not fire while editing text")
	}
	if localCalls != 0 {
		t.Errorf("Expected 0 local calls, got %d", localCalls)
	}

	if !d.Dispatch(keybind.Event{Key: "g", Ctrl: true}) {
		t.Error("Global shortcut should fire while editing text")
	}
	if globalCalls != 1 {
		t.Errorf("Expected 1 global call, got %d", globalCalls)
	}

	// Same non-global event fires once focus leaves the text control
	focus.editing = false
	if !d.Dispatch(keybind.Event{Key: "k", Ctrl: true}) {
		t.Error("Non-global shortcut should fire outside text input")
	}
	if localCalls != 1 {
		t.Errorf("Expected 1 local call, got %d", localCalls)
	}
}

func TestDispatcher_SkipsDisabled(t *testing.T) {
	r := NewRegistry(nil, nil)
	var calls int
	r.Register(Definition{
		ID:       "off",
		Default:  keybind.Binding{Key: "o", Ctrl: true},
		Disabled: true,
		Action:   func() { calls++ },
	})

	d := NewDispatcher(r, &fakeSource{}, &fakeFocus{}, nil)
	if d.Dispatch(keybind.Event{Key: "o", Ctrl: true}) {
		t.Error("Disabled shortcut should not consume the event")
	}
	if calls != 0 {
		t.Errorf("Expected 0 calls, got %d", calls)
	}
}

func TestDispatcher_FirstMatchWins(t *testing.T) {
	r := NewRegistry(newMemStore(), nil)
	var order []string
	r.Register(Definition{
		ID:      "first",
		Default: keybind.Binding{Key: "k", Ctrl: true},
		Action:  func() { order = append(order, "first") },
	})
	r.Register(Definition{
		ID:      "second",
		Default: keybind.Binding{Key: "k", Ctrl: true},
		Action:  func() { order = append(order, "second") },
	})

	d := NewDispatcher(r, &fakeSource{}, &fakeFocus{}, nil)
	d.Dispatch(keybind.Event{Key: "k", Ctrl: true})

	if len(order) != 1 || order[0] != "first" {
		t.Errorf("Expected only the first registered shortcut to fire, got %v", order)
	}
}

func TestDispatcher_OverrideChangesMatching(t *testing.T) {
	r := NewRegistry(newMemStore(), nil)
	var calls int
	r.Register(Definition{
		ID:      "new-terminal",
		Default: keybind.Binding{Key: "n", Ctrl: true},
		Action:  func() { calls++ },
	})

	d := NewDispatcher(r, &fakeSource{}, &fakeFocus{}, nil)

	d.Dispatch(keybind.Event{Key: "n", Ctrl: true})
	if calls != 1 {
		t.Fatalf("Expected 1 call on default binding, got %d", calls)
	}

	r.SetCustomBinding("new-terminal", keybind.Binding{Key: "t", Ctrl: true, Shift: true})

	if d.Dispatch(keybind.Event{Key: "n", Ctrl: true}) {
		t.Error("Old default should no longer match after override")
	}
	if !d.Dispatch(keybind.Event{Key: "t", Ctrl: true, Shift: true}) {
		t.Error("Override binding should match")
	}
	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}

	r.ResetBinding("new-terminal")
	if !d.Dispatch(keybind.Event{Key: "n", Ctrl: true}) {
		t.Error("Default should match again after reset")
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestDispatcher_StartStop(t *testing.T) {
	r := NewRegistry(nil, nil)
	var calls int
	r.Register(Definition{
		ID:      "a",
		Default: keybind.Binding{Key: "a", Ctrl: true},
		Action:  func() { calls++ },
	})

	source := &fakeSource{}
	d := NewDispatcher(r, source, &fakeFocus{}, nil)

	if err := d.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := d.Start(); err == nil {
		t.Error("Expected error starting twice")
	}
	if source.handler == nil {
		t.Fatal("Expected dispatcher to subscribe to the key source")
	}

	source.handler(keybind.Event{Key: "a", Ctrl: true})
	if calls != 1 {
		t.Errorf("Expected 1 call through the source, got %d", calls)
	}

	d.Stop()
	if source.handler != nil {
		t.Error("Expected Stop to cancel the subscription")
	}
	d.Stop() // stopping a stopped dispatcher is fine
}
