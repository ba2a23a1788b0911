// Package keybind defines the key combination value type shared by the
// shortcut registry, the dispatcher and the customization UI.
package keybind

import (
	"fmt"
	"strings"
)

// Binding is a key plus modifier flags. Two bindings are equal iff their
// canonical encodings match; the struct itself is never compared field by
// field outside this package.
type Binding struct {
	Key   string `json:"key" yaml:"key"`
	Ctrl  bool   `json:"ctrlKey,omitempty" yaml:"ctrl,omitempty"`
	Shift bool   `json:"shiftKey,omitempty" yaml:"shift,omitempty"`
	Alt   bool   `json:"altKey,omitempty" yaml:"alt,omitempty"`
	Meta  bool   `json:"metaKey,omitempty" yaml:"meta,omitempty"`
}

// prettyKeys maps non-printable key values to their display names.
var prettyKeys = map[string]string{
	" ":          "Space",
	"arrowup":    "↑",
	"arrowdown":  "↓",
	"arrowleft":  "←",
	"arrowright": "→",
	"escape":     "Esc",
	"tab":        "Tab",
	"enter":      "Enter",
	"backspace":  "Backspace",
	"delete":     "Delete",
}

// Canonical returns a deterministic encoding of the binding, independent of
// the order modifiers were supplied in. The key is compared lowercased.
func (b Binding) Canonical() string {
	var sb strings.Builder
	if b.Ctrl {
		sb.WriteString("Ctrl+")
	}
	if b.Alt {
		sb.WriteString("Alt+")
	}
	if b.Shift {
		sb.WriteString("Shift+")
	}
	if b.Meta {
		sb.WriteString("Meta+")
	}
	sb.WriteString(strings.ToLower(b.Key))
	return sb.String()
}

// Equal reports whether two bindings are the same key combination.
func (b Binding) Equal(other Binding) bool {
	return b.Canonical() == other.Canonical()
}

// Display returns the human-facing form, e.g. "Ctrl + Shift + T".
func (b Binding) Display() string {
	var parts []string
	if b.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if b.Alt {
		parts = append(parts, "Alt")
	}
	if b.Shift {
		parts = append(parts, "Shift")
	}
	if b.Meta {
		parts = append(parts, "Cmd")
	}
	if pretty, ok := prettyKeys[strings.ToLower(b.Key)]; ok {
		parts = append(parts, pretty)
	} else {
		parts = append(parts, strings.ToUpper(b.Key))
	}
	return strings.Join(parts, " + ")
}

// Parse converts a keymap-file spelling like "ctrl+shift+t" into a Binding.
// Modifier names are case-insensitive; the last non-modifier token is the key.
func Parse(s string) (Binding, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Binding{}, fmt.Errorf("empty key spec")
	}

	var b Binding
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "ctrl", "control":
			b.Ctrl = true
		case "shift":
			b.Shift = true
		case "alt", "option":
			b.Alt = true
		case "meta", "cmd", "super":
			b.Meta = true
		case "":
			// "ctrl++" means the plus key
			b.Key = "+"
		default:
			if b.Key != "" {
				return Binding{}, fmt.Errorf("key spec %q has more than one key", s)
			}
			b.Key = strings.ToLower(part)
		}
	}

	if b.Key == "" {
		return Binding{}, fmt.Errorf("key spec %q has no key", s)
	}
	return b, nil
}

// Event is a raw keydown as reported by the host windowing layer.
type Event struct {
	Key   string `json:"key"`
	Ctrl  bool   `json:"ctrlKey"`
	Shift bool   `json:"shiftKey"`
	Alt   bool   `json:"altKey"`
	Meta  bool   `json:"metaKey"`
}

// Matches reports whether the event is exactly this binding: the key compared
// case-insensitively and all four modifier flags compared exactly. An extra
// held modifier not present in the binding is a non-match.
func (b Binding) Matches(ev Event) bool {
	return strings.EqualFold(b.Key, ev.Key) &&
		b.Ctrl == ev.Ctrl &&
		b.Shift == ev.Shift &&
		b.Alt == ev.Alt &&
		b.Meta == ev.Meta
}
