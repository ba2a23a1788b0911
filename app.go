// app.go
package main

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"agentdeck/internal/config"
	"agentdeck/internal/database"
	"agentdeck/internal/eventhub"
	"agentdeck/internal/keybind"
	"agentdeck/internal/keymap"
	"agentdeck/internal/shortcuts"
)

// App struct contains the core application state and managers
type App struct {
	ctx    context.Context
	mu     sync.RWMutex
	config *config.Config

	// Core managers
	dbManager     *database.Database
	eventHub      *eventhub.EventHub
	registry      *shortcuts.Registry
	dispatcher    *shortcuts.Dispatcher
	keymapManager *keymap.Manager

	keyFeed *keyFeed

	focusMu          sync.RWMutex
	textInputFocused bool

	unsubscribeRegistry func()
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{keyFeed: &keyFeed{}}
}

// startup is called when the app starts (Wails callback)
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	// Load config
	cfg, err := config.Load()
	if err != nil {
		runtime.LogError(ctx, "Failed to load config: "+err.Error())
		return
	}
	a.config = cfg

	logger := &wailsLogger{ctx: ctx}

	// Initialize EventHub, broadcasting over Wails runtime events
	a.eventHub = eventhub.New(ctx)
	a.eventHub.SetBroadcaster(&wailsEventBroadcaster{ctx: ctx})

	// Initialize the settings database. A failed open is not fatal: the
	// registry runs without persistence and customizations last the session.
	var store shortcuts.Store
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		runtime.LogError(ctx, "Failed to open settings database: "+err.Error())
	} else {
		a.dbManager = db
		store = db
	}

	// Shortcut registry: load persisted overrides once, then register the
	// app-shell shortcuts with any keymap presets applied
	a.registry = shortcuts.NewRegistry(store, logger)
	a.registry.LoadOverrides()
	a.unsubscribeRegistry = a.registry.Subscribe(a.eventHub.EmitShortcutsChanged)

	a.keymapManager = keymap.NewManager(cfg.KeymapPath, a.registry, a.eventHub, logger)
	a.keymapManager.Apply()
	if err := a.keymapManager.Watch(); err != nil {
		runtime.LogWarning(ctx, "Keymap file watch unavailable: "+err.Error())
	}

	// The dispatcher owns the single key-event subscription for the process
	// lifetime; the frontend feeds it through HandleKeyEvent
	a.dispatcher = shortcuts.NewDispatcher(a.registry, a.keyFeed, a, logger)
	if err := a.dispatcher.Start(); err != nil {
		runtime.LogError(ctx, "Failed to start shortcut dispatcher: "+err.Error())
	}

	runtime.LogInfo(ctx, "agentdeck started successfully")
}

// shutdown is called when the app is shutting down (Wails callback)
func (a *App) shutdown(ctx context.Context) {
	if a.dispatcher != nil {
		a.dispatcher.Stop()
	}

	if a.keymapManager != nil {
		a.keymapManager.Close()
	}

	if a.unsubscribeRegistry != nil {
		a.unsubscribeRegistry()
	}

	if a.dbManager != nil {
		a.dbManager.Close()
	}

	runtime.LogInfo(ctx, "agentdeck shutdown complete")
}

// IsTextInputFocused reports whether the frontend last declared a
// text-editing control focused (shortcuts.FocusQuery).
func (a *App) IsTextInputFocused() bool {
	a.focusMu.RLock()
	defer a.focusMu.RUnlock()
	return a.textInputFocused
}

// keyFeed adapts the HandleKeyEvent binding to shortcuts.KeySource: it holds
// the dispatcher's handler and pushes each forwarded keydown into it.
type keyFeed struct {
	mu      sync.RWMutex
	handler func(keybind.Event) bool
}

func (f *keyFeed) SubscribeKeys(handler func(keybind.Event) bool) func() {
	f.mu.Lock()
	f.handler = handler
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		f.handler = nil
		f.mu.Unlock()
	}
}

func (f *keyFeed) push(ev keybind.Event) bool {
	f.mu.RLock()
	handler := f.handler
	f.mu.RUnlock()

	if handler == nil {
		return false
	}
	return handler(ev)
}

// wailsEventBroadcaster adapts Wails runtime events to eventhub.Broadcaster
type wailsEventBroadcaster struct {
	ctx context.Context
}

func (b *wailsEventBroadcaster) BroadcastEvent(eventType string, payload interface{}) {
	runtime.EventsEmit(b.ctx, eventType, payload)
}

// wailsLogger adapts the Wails runtime logger to shortcuts.Logger
type wailsLogger struct {
	ctx context.Context
}

func (l *wailsLogger) Info(message string)    { runtime.LogInfo(l.ctx, message) }
func (l *wailsLogger) Warning(message string) { runtime.LogWarning(l.ctx, message) }
