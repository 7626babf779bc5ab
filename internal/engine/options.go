package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/ghostedit/internal/engine/history"
	"github.com/dshills/ghostedit/internal/engine/stats"
	"github.com/dshills/ghostedit/internal/engine/trie"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = history.DefaultCapacity
	DefaultWordsPerMinute = stats.DefaultWordsPerMinute
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
// The initial content is not recorded in the undo history.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.content = content
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithEmojiTable replaces the emoji seed table.
func WithEmojiTable(entries []trie.Entry) Option {
	return func(e *Engine) {
		e.emojiTable = entries
	}
}

// WithWordsPerMinute sets the reading speed used by Analyze.
func WithWordsPerMinute(wpm float64) Option {
	return func(e *Engine) {
		if wpm > 0 {
			e.wordsPerMinute = wpm
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
