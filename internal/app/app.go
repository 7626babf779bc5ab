// Package app provides the terminal host for the ghostedit engine. It owns
// the tcell screen, the cursor and the view state, turns key presses into
// engine calls and acts on the commands the engine emits.
package app

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/ghostedit/internal/config"
	"github.com/dshills/ghostedit/internal/config/watcher"
	"github.com/dshills/ghostedit/internal/engine"
	"github.com/dshills/ghostedit/internal/logging"
)

// Application is the terminal host. It wires configuration, logging and
// the engine together and runs the event loop.
type Application struct {
	mu sync.RWMutex

	// Core components
	engine  *engine.Engine
	config  *config.Config
	watcher *watcher.Watcher
	screen  tcell.Screen

	// Logging
	logger    *zap.Logger
	closeLog  func() error
	sessionID string

	// View state, owned by the event loop
	cursor    int
	top       int
	showStats bool
	message   string

	// State
	running   atomic.Bool
	ready     chan struct{}
	readyOnce sync.Once
	closeOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// LogFile overrides the configured log file when non-empty.
	LogFile string

	// Content is the initial document.
	Content string

	// Watch enables live reload of the configuration file.
	Watch bool

	// Logger, if set, is used instead of building one from the
	// configuration.
	Logger *zap.Logger

	configOpts []config.LoadOption
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		ready:     make(chan struct{}),
		sessionID: uuid.NewString(),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath, app.opts.configOpts...)
	if err != nil {
		return NewComponentError("config", "load", err)
	}
	app.config = cfg

	// 2. Logging
	if err := app.initLogger(); err != nil {
		return NewComponentError("logging", "open", err)
	}

	// 3. Engine
	opts := append(cfg.EngineOptions(app.logger.Named("engine")), engine.WithContent(app.opts.Content))
	app.engine = engine.New(opts...)

	// 4. Config watcher
	if app.opts.Watch && app.opts.ConfigPath != "" {
		w, err := watcher.New(watcher.WithLogger(app.logger))
		if err != nil {
			return NewComponentError("watcher", "create", err)
		}
		app.watcher = w
		if err := w.Watch(app.opts.ConfigPath); err != nil {
			return NewComponentError("watcher", "watch", err)
		}
		w.OnChange(app.onConfigChange)
	}

	app.logger.Info("ghostedit started",
		zap.String("config", cfg.Path),
		zap.Int("undoLimit", cfg.Engine.UndoLimit),
		zap.Int("emoji", app.engine.EmojiCount()))
	return nil
}

// initLogger builds the logger. Logs go to a file when one is configured
// and are discarded otherwise, since the screen belongs to the UI.
func (app *Application) initLogger() error {
	logger := app.opts.Logger
	if logger == nil {
		level := app.config.Logging.Level
		if app.opts.LogLevel != "" {
			level = app.opts.LogLevel
		}
		path := app.config.Logging.File
		if app.opts.LogFile != "" {
			path = app.opts.LogFile
		}

		if path == "" {
			logger = zap.NewNop()
		} else {
			l, closeFn, err := logging.NewFile(logging.Config{Level: level, Name: "ghostedit"}, path)
			if err != nil {
				return err
			}
			logger = l
			app.closeLog = closeFn
		}
	}

	app.logger = logger.With(zap.String("session", app.sessionID))
	return nil
}

// SetScreen sets the terminal screen. Must be called before Run.
func (app *Application) SetScreen(s tcell.Screen) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.screen = s
	return nil
}

// Run initializes the screen and runs the event loop until the user quits
// or Shutdown is called. A normal exit returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.RLock()
	screen := app.screen
	app.mu.RUnlock()
	if screen == nil {
		return ErrNoScreen
	}

	if err := screen.Init(); err != nil {
		return NewComponentError("screen", "init", err)
	}
	defer screen.Fini()

	if app.watcher != nil {
		app.watcher.Start()
	}

	app.readyOnce.Do(func() { close(app.ready) })
	return app.eventLoop(screen)
}

// Shutdown asks a running event loop to exit.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	app.post(tcell.NewEventInterrupt(nil))
}

// Close releases the watcher and the log file. Call it after Run returns.
func (app *Application) Close() error {
	var err error
	app.closeOnce.Do(func() {
		if app.watcher != nil {
			err = app.watcher.Stop()
		}
		if app.logger != nil {
			app.logger.Info("ghostedit stopped")
		}
		if app.closeLog != nil {
			if cerr := app.closeLog(); err == nil {
				err = cerr
			}
		}
	})
	return err
}

// post queues an event on the screen's event loop.
func (app *Application) post(ev tcell.Event) {
	app.mu.RLock()
	screen := app.screen
	app.mu.RUnlock()
	if screen == nil {
		return
	}
	if err := screen.PostEvent(ev); err != nil {
		app.logger.Warn("event queue full, dropping event", zap.Error(err))
	}
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Engine returns the editor engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// SessionID returns the identifier attached to this session's log lines.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Cursor returns the cursor's byte offset in the document.
func (app *Application) Cursor() int {
	return app.cursor
}
