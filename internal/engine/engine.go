package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/ghostedit/internal/engine/history"
	"github.com/dshills/ghostedit/internal/engine/stats"
	"github.com/dshills/ghostedit/internal/engine/trie"
	"github.com/dshills/ghostedit/internal/input/key"
	"github.com/dshills/ghostedit/internal/input/mode"
	"github.com/dshills/ghostedit/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Mode is the editor's interaction mode.
	Mode = mode.Mode

	// Command is a symbolic command emitted by HandleKey.
	Command = mode.Command

	// Stats holds document statistics.
	Stats = stats.Stats

	// EmojiEntry is a key/glyph pair for the emoji index.
	EmojiEntry = trie.Entry
)

// Re-export constants.
const (
	ModeNormal = mode.Normal
	ModeInsert = mode.Insert
)

// Engine is the main facade for the editor core. It owns the document
// buffer, the undo history, the mode machine and the emoji index.
//
// Engine is not safe for concurrent use.
type Engine struct {
	// Core components
	content string
	history *history.Stack
	modes   *mode.Machine
	emoji   *trie.Trie

	// Configuration
	maxUndoEntries int
	wordsPerMinute float64
	emojiTable     []trie.Entry
	logger         *zap.Logger
}

// New creates a new Engine with the given options. Without options the
// engine has empty content, empty history, the default emoji table and
// starts in Insert mode.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxUndoEntries: DefaultMaxUndoEntries,
		wordsPerMinute: DefaultWordsPerMinute,
		emojiTable:     defaultEmoji,
		logger:         logging.L(),
	}

	// Apply options to get configuration
	for _, opt := range opts {
		opt(e)
	}

	e.history = history.NewStack(e.maxUndoEntries)
	e.modes = mode.NewMachine()
	e.emoji = trie.New(e.emojiTable...)
	e.emojiTable = nil

	e.modes.OnChange(func(from, to mode.Mode) {
		e.logger.Debug("mode changed",
			zap.Stringer("from", from),
			zap.Stringer("to", to))
	})

	return e
}

// ============================================================================
// Document
// ============================================================================

// Content returns the current document text.
func (e *Engine) Content() string {
	return e.content
}

// UpdateContent replaces the document with text. The previous content is
// recorded in the undo history first. Setting the content it already has
// is a no-op and records nothing.
func (e *Engine) UpdateContent(text string) {
	if text == e.content {
		return
	}

	if e.history.Record(e.content) {
		e.logger.Debug("undo history full, evicted oldest snapshot",
			zap.Int("capacity", e.history.Cap()))
	}
	e.content = text
}

// Undo restores the most recent snapshot and returns the resulting
// content. With empty history the content is returned unchanged.
func (e *Engine) Undo() string {
	prev, ok := e.history.Pop()
	if !ok {
		return e.content
	}

	e.content = prev
	e.logger.Debug("undo",
		zap.Int("remaining", e.history.Len()))
	return e.content
}

// UndoDepth returns the number of snapshots available to Undo.
func (e *Engine) UndoDepth() int {
	return e.history.Len()
}

// MaxUndoEntries returns the undo history bound.
func (e *Engine) MaxUndoEntries() int {
	return e.history.Cap()
}

// SetMaxUndoEntries changes the undo history bound, dropping the oldest
// snapshots if more are held. Non-positive values select the default.
func (e *Engine) SetMaxUndoEntries(max int) {
	e.history.SetCapacity(max)
}

// ============================================================================
// Modes
// ============================================================================

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	return e.modes.Current()
}

// HandleKey classifies a key press for the current mode, switching modes
// when the key calls for it. It returns the emitted command, or false if
// the key emits nothing. HandleKey never changes the document; the host
// acts on the command.
func (e *Engine) HandleKey(name string, ctrl bool) (Command, bool) {
	return e.HandleInput(key.New(name, ctrl))
}

// HandleInput is HandleKey for an already-built key.Input.
func (e *Engine) HandleInput(in key.Input) (Command, bool) {
	return e.modes.Handle(in)
}

// OnModeChange registers a callback for mode changes.
func (e *Engine) OnModeChange(cb func(from, to Mode)) {
	e.modes.OnChange(cb)
}

// ============================================================================
// Emoji
// ============================================================================

// SuggestEmoji returns the glyph whose key is exactly prefix.
// It reports false if prefix is not a complete key; a partial prefix such
// as "gho" does not complete to "ghost".
func (e *Engine) SuggestEmoji(prefix string) (string, bool) {
	glyph, ok := e.emoji.Lookup(prefix)
	if !ok {
		e.logger.Debug("no emoji for prefix", zap.String("prefix", prefix))
	}
	return glyph, ok
}

// AddEmoji adds or replaces an entry in the emoji index.
func (e *Engine) AddEmoji(name, glyph string) {
	e.emoji.Insert(name, glyph)
}

// EmojiCount returns the number of entries in the emoji index.
func (e *Engine) EmojiCount() int {
	return e.emoji.Len()
}

// ============================================================================
// Statistics
// ============================================================================

// Analyze computes statistics for the current content.
func (e *Engine) Analyze() Stats {
	return stats.Analyze(e.content, e.wordsPerMinute)
}

// WordsPerMinute returns the reading speed used by Analyze.
func (e *Engine) WordsPerMinute() float64 {
	return e.wordsPerMinute
}

// SetWordsPerMinute changes the reading speed. Non-positive values are
// ignored.
func (e *Engine) SetWordsPerMinute(wpm float64) {
	if wpm > 0 {
		e.wordsPerMinute = wpm
	}
}
