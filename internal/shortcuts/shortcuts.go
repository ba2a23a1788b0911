// Package shortcuts implements the application-wide keyboard shortcut
// registry: declaring shortcuts, resolving user overrides, detecting binding
// collisions and dispatching raw key events to the owning action.
package shortcuts

import (
	"log"

	"agentdeck/internal/keybind"
)

// Category groups shortcuts for the customization panel.
type Category string

const (
	CategoryGeneral    Category = "general"
	CategoryNavigation Category = "navigation"
	CategoryTerminal   Category = "terminal"
	CategoryAgents     Category = "agents"
	CategoryPanels     Category = "panels"
)

// CategoryOrder is the fixed display order for the customization panel. The
// UI renders groups in this order, never in an order derived from the data.
var CategoryOrder = []Category{
	CategoryGeneral,
	CategoryNavigation,
	CategoryTerminal,
	CategoryAgents,
	CategoryPanels,
}

// Definition declares a shortcut. IDs are unique; registering an existing id
// replaces the prior definition.
type Definition struct {
	ID          string
	Label       string
	Description string
	Category    Category
	Default     keybind.Binding
	Action      func()
	// Disabled shortcuts stay listed but never dispatch.
	Disabled bool
	// Global shortcuts fire even while a text-editing control has focus.
	Global bool
}

// Conflict is an unordered pairing of two shortcut ids whose effective
// bindings are canonically equal.
type Conflict struct {
	ShortcutID    string          `json:"shortcutId"`
	ConflictingID string          `json:"conflictingId"`
	Binding       keybind.Binding `json:"binding"`
}

// Store is the durable key-value store holding the persisted override blob.
// The sqlite-backed database satisfies it.
type Store interface {
	GetSetting(key string) (value string, found bool, err error)
	SaveSetting(key, value string) error
	DeleteSetting(key string) error
}

// Logger is the subset of logging the package needs. The app shell adapts it
// to the Wails runtime logger.
type Logger interface {
	Info(message string)
	Warning(message string)
}

// EventEmitter forwards events to the frontend.
type EventEmitter interface {
	Emit(eventName string, data interface{})
}

// stdLogger is the default Logger, used when no host logger is supplied
// (tests, headless runs).
type stdLogger struct{}

func (stdLogger) Info(message string)    { log.Println("INFO:", message) }
func (stdLogger) Warning(message string) { log.Println("WARN:", message) }
