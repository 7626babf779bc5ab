package app

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/ghostedit/internal/engine"
	"github.com/dshills/ghostedit/internal/input/key"
	"github.com/dshills/ghostedit/internal/input/mode"
)

// tabText is inserted for Tab when no emoji completion applies.
const tabText = "\t"

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev *tcell.EventKey) error {
	in, ok := key.FromTcell(ev)
	if !ok {
		return nil
	}
	return app.handleInput(in)
}

// handleInput routes a key press. Host shortcuts come first, then the
// engine's mode table, then text entry and navigation.
func (app *Application) handleInput(in key.Input) error {
	app.message = ""

	if in.Ctrl {
		switch in.Name {
		case "c", "q":
			return ErrQuit
		case "k":
			app.showStats = !app.showStats
			return nil
		case "z":
			app.undo()
			return nil
		}
	}

	if cmd, ok := app.engine.HandleInput(in); ok {
		app.execute(cmd)
		return nil
	}

	if app.navigate(in) {
		return nil
	}
	if app.engine.Mode() == engine.ModeInsert && !in.Ctrl {
		app.typeKey(in)
	}
	return nil
}

// execute acts on a command emitted by the engine.
func (app *Application) execute(cmd engine.Command) {
	text := app.engine.Content()

	switch cmd {
	case mode.CmdMoveLeft:
		app.cursor = moveLeft(text, app.cursor)
	case mode.CmdMoveRight:
		app.cursor = moveRight(text, app.cursor)
	case mode.CmdMoveUp:
		app.cursor = moveUp(text, app.cursor)
	case mode.CmdMoveDown:
		app.cursor = moveDown(text, app.cursor)
	case mode.CmdDeleteChar:
		app.setContent(deleteChar(text, app.cursor), app.cursor)
	case mode.CmdModeInsert, mode.CmdModeNormal:
		// The engine has already switched modes.
	}

	app.logger.Debug("command",
		zap.Stringer("command", cmd),
		zap.Int("cursor", app.cursor))
}

// navigate handles cursor keys, which work in every mode.
func (app *Application) navigate(in key.Input) bool {
	text := app.engine.Content()

	switch in.Name {
	case key.ArrowLeft:
		app.cursor = moveLeft(text, app.cursor)
	case key.ArrowRight:
		app.cursor = moveRight(text, app.cursor)
	case key.ArrowUp:
		app.cursor = moveUp(text, app.cursor)
	case key.ArrowDown:
		app.cursor = moveDown(text, app.cursor)
	case key.Home:
		app.cursor = lineStart(text, app.cursor)
	case key.End:
		app.cursor = lineEnd(text, app.cursor)
	default:
		return false
	}
	return true
}

// typeKey edits the document for a key pressed in Insert mode.
func (app *Application) typeKey(in key.Input) {
	text := app.engine.Content()

	switch {
	case in.Name == key.Enter:
		app.setContent(insertText(text, app.cursor, "\n"))
	case in.Name == key.Backspace:
		app.setContent(backspace(text, app.cursor))
	case in.Name == key.Delete:
		app.setContent(deleteChar(text, app.cursor), app.cursor)
	case in.Name == key.Tab:
		if !app.completeEmoji() {
			app.setContent(insertText(text, app.cursor, tabText))
		}
	case in.IsRune():
		app.setContent(insertText(text, app.cursor, in.Name))
	}
}

// completeEmoji replaces a ":name" token before the cursor with its glyph.
func (app *Application) completeEmoji() bool {
	text := app.engine.Content()
	name, start, ok := emojiQuery(text, app.cursor)
	if !ok {
		return false
	}
	glyph, ok := app.engine.SuggestEmoji(name)
	if !ok {
		return false
	}

	app.setContent(text[:start]+glyph+text[app.cursor:], start+len(glyph))
	app.logger.Debug("emoji inserted", zap.String("name", name))
	return true
}

// suggestion returns the emoji completion available at the cursor.
func (app *Application) suggestion() (name, glyph string, ok bool) {
	if app.engine.Mode() != engine.ModeInsert {
		return "", "", false
	}
	name, _, ok = emojiQuery(app.engine.Content(), app.cursor)
	if !ok {
		return "", "", false
	}
	glyph, ok = app.engine.SuggestEmoji(name)
	return name, glyph, ok
}

// undo restores the previous snapshot.
func (app *Application) undo() {
	if app.engine.UndoDepth() == 0 {
		app.message = "Already at oldest change"
		return
	}
	text := app.engine.Undo()
	app.cursor = clampCursor(text, app.cursor)
}

// setContent replaces the document through the engine so the change is
// recorded for undo.
func (app *Application) setContent(text string, cursor int) {
	app.engine.UpdateContent(text)
	app.cursor = clampCursor(text, cursor)
}
