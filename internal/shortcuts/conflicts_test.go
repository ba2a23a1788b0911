package shortcuts

import (
	"testing"

	"agentdeck/internal/keybind"
)

func TestFindConflicts_NoneWhenDistinct(t *testing.T) {
	r := NewRegistry(nil, nil)
	r.Register(Definition{ID: "a", Default: keybind.Binding{Key: "k", Ctrl: true}})
	r.Register(Definition{ID: "b", Default: keybind.Binding{Key: "l", Ctrl: true}})
	r.Register(Definition{ID: "c", Default: keybind.Binding{Key: "k", Ctrl: true, Shift: true}})

	conflicts := r.FindConflicts()
	if len(conflicts) != 0 {
		t.Errorf("Expected no conflicts, got %d", len(conflicts))
	}
}

func TestFindConflicts_OverrideCollidesWithDefault(t *testing.T) {
	r := NewRegistry(newMemStore(), nil)
	r.Register(Definition{ID: "a", Default: keybind.Binding{Key: "k", Ctrl: true}})
	r.Register(Definition{ID: "b", Default: keybind.Binding{Key: "l", Ctrl: true}})

	r.SetCustomBinding("b", keybind.Binding{Key: "k", Ctrl: true})

	conflicts := r.FindConflicts()
	if len(conflicts) != 1 {
		t.Fatalf("Expected exactly one conflict, got %d", len(conflicts))
	}
	c := conflicts[0]
	if c.ShortcutID != "b" || c.ConflictingID != "a" {
		t.Errorf("Expected b vs a, got %s vs %s", c.ShortcutID, c.ConflictingID)
	}
	if c.Binding.Canonical() != "Ctrl+k" {
		t.Errorf("Expected Ctrl+k, got %s", c.Binding.Canonical())
	}
}

func TestFindConflicts_ThreeWayPointsAtFirstSeen(t *testing.T) {
	r := NewRegistry(newMemStore(), nil)
	r.Register(Definition{ID: "a", Default: keybind.Binding{Key: "k", Ctrl: true}})
	r.Register(Definition{ID: "b", Default: keybind.Binding{Key: "l", Ctrl: true}})
	r.Register(Definition{ID: "c", Default: keybind.Binding{Key: "m", Ctrl: true}})

	r.SetCustomBinding("b", keybind.Binding{Key: "k", Ctrl: true})
	r.SetCustomBinding("c", keybind.Binding{Key: "K", Ctrl: true})

	conflicts := r.FindConflicts()
	if len(conflicts) != 2 {
		t.Fatalf("Expected exactly two conflicts, got %d", len(conflicts))
	}
	// Later ids are reported against the same first-seen id, not pairwise
	for _, c := range conflicts {
		if c.ConflictingID != "a" {
			t.Errorf("Expected conflictingId 'a', got '%s'", c.ConflictingID)
		}
	}
	if conflicts[0].ShortcutID != "b" || conflicts[1].ShortcutID != "c" {
		t.Errorf("Expected conflicts in registration order, got %s then %s",
			conflicts[0].ShortcutID, conflicts[1].ShortcutID)
	}
}

func TestFindConflicts_ModifierOrderIrrelevant(t *testing.T) {
	r := NewRegistry(newMemStore(), nil)
	r.Register(Definition{ID: "a", Default: keybind.Binding{Key: "t", Ctrl: true, Shift: true}})
	r.Register(Definition{ID: "b", Default: keybind.Binding{Key: "T", Shift: true, Ctrl: true}})

	if len(r.FindConflicts()) != 1 {
		t.Error("Expected conflict regardless of modifier order and key case")
	}
}
