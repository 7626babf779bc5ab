package app

import (
	"errors"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/ghostedit/internal/config"
	"github.com/dshills/ghostedit/internal/config/watcher"
)

// configEvent carries a reloaded configuration onto the event loop.
type configEvent struct {
	tcell.EventTime
	cfg *config.Config
	err error
}

func newConfigEvent(cfg *config.Config, err error) *configEvent {
	ev := &configEvent{cfg: cfg, err: err}
	ev.SetEventNow()
	return ev
}

// eventLoop draws the screen and handles events until quit.
func (app *Application) eventLoop(screen tcell.Screen) error {
	app.draw()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}

		if err := app.dispatch(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return err
			}
			var pe *RecoveredPanicError
			if !errors.As(err, &pe) {
				return err
			}
			app.message = "internal error, see log"
		}

		app.draw()
	}
}

// dispatch handles one event, converting a panic into an error.
func (app *Application) dispatch(ev tcell.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe := &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
			app.logger.Error("panic while handling event",
				zap.Any("panic", r),
				zap.String("stack", pe.Stack))
			err = pe
		}
	}()
	return app.handleEvent(ev)
}

// handleEvent processes an event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return app.handleKeyEvent(ev)
	case *tcell.EventResize:
		app.mu.RLock()
		screen := app.screen
		app.mu.RUnlock()
		if screen != nil {
			screen.Sync()
		}
		return nil
	case *configEvent:
		app.applyConfig(ev)
		return nil
	case *tcell.EventInterrupt:
		return ErrQuit
	default:
		return nil
	}
}

// onConfigChange runs on the watcher goroutine. It reloads the file and
// hands the result to the event loop; the engine is only touched there.
func (app *Application) onConfigChange(ev watcher.Event) {
	if ev.Op == watcher.OpRemove {
		app.logger.Info("config file removed, keeping current settings", zap.String("path", ev.Path))
		return
	}

	cfg, err := config.Load(app.opts.ConfigPath, app.opts.configOpts...)
	app.post(newConfigEvent(cfg, err))
}

// applyConfig installs a reloaded configuration.
func (app *Application) applyConfig(ev *configEvent) {
	if ev.err != nil {
		app.logger.Warn("config reload failed", zap.Error(ev.err))
		app.message = "config reload failed: " + ev.err.Error()
		return
	}

	ev.cfg.ApplyTo(app.engine)
	app.config = ev.cfg
	app.message = "config reloaded"
	app.logger.Info("config reloaded",
		zap.Int("undoLimit", ev.cfg.Engine.UndoLimit),
		zap.Float64("wordsPerMinute", ev.cfg.Engine.WordsPerMinute),
		zap.Int("emoji", app.engine.EmojiCount()))
}
