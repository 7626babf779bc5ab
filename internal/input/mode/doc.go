// Package mode provides the two-state modal key dispatcher.
//
// The editor is always in exactly one of two modes:
//   - Normal mode: keys are commands (h/j/k/l motions, x deletes, i inserts)
//   - Insert mode: keys are text, only Escape is interpreted
//
// # Architecture
//
// Key handling is split into a pure transition function and a small
// stateful Machine. Transition classifies a key for a given mode and
// returns the next mode plus an optional Command; it never mutates text.
// The host interprets the Command (for example DELETE_CHAR) and edits the
// document itself.
//
//	┌─────────┐   Escape    ┌─────────┐
//	│ Insert  │ ──────────▶ │ Normal  │
//	└─────────┘             └─────────┘
//	     ▲          i            │
//	     └───────────────────────┘
//
// The Ctrl flag of a key.Input is accepted by Transition but not consulted
// by the default tables; Ctrl chords are reserved for future bindings.
package mode
