// Package engine provides the stateful core of the ghost editor widget.
//
// The engine package serves as the main facade, combining the document
// buffer, a bounded undo history, the Normal/Insert mode machine, and an
// emoji autocomplete index into a single API for a host UI.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - trie: rune-keyed prefix tree backing emoji suggestions
//   - history: bounded ring buffer of prior document snapshots
//   - stats: word, character, and line counts plus reading time
//
// Mode handling lives in internal/input/mode; the engine owns one Machine.
//
// # Threading
//
// Engine is single-writer. The host must serialize calls, typically by
// only touching the engine from its event loop. No operation blocks.
//
// # Basic Usage
//
//	e := engine.New()
//
//	e.UpdateContent("Hello")
//	e.UpdateContent("Hello, World!")
//
//	text := e.Undo() // "Hello"
//
//	cmd, ok := e.HandleKey("Escape", false) // "MODE_NORMAL", true
//
//	glyph, ok := e.SuggestEmoji("ghost") // "👻", true
//
//	s := e.Analyze() // s.Words == 1
//
// # Absent Results
//
// No engine operation returns an error. Undo on empty history, unknown
// emoji prefixes and unbound keys are reported as absent values.
package engine
