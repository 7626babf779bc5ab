package engine

import "github.com/dshills/ghostedit/internal/engine/trie"

// defaultEmoji is the seed table for the emoji index.
var defaultEmoji = []trie.Entry{
	{Key: "ghost", Value: "👻"},
	{Key: "fire", Value: "🔥"},
	{Key: "heart", Value: "❤️"},
	{Key: "rocket", Value: "🚀"},
	{Key: "smile", Value: "😄"},
	{Key: "check", Value: "✅"},
}

// DefaultEmoji returns a copy of the default emoji seed table.
func DefaultEmoji() []trie.Entry {
	out := make([]trie.Entry, len(defaultEmoji))
	copy(out, defaultEmoji)
	return out
}
