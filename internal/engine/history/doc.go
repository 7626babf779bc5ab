// Package history provides the bounded undo history for the editor engine.
//
// History is a linear stack of document snapshots, each taken immediately
// before the document was overwritten. There is no redo: popping an entry
// discards it.
//
// # Bounding
//
// The stack is a fixed-capacity ring buffer. Recording into a full stack
// evicts the oldest snapshot first, so the number of retained entries never
// exceeds the capacity and the entries that survive are always the most
// recent ones.
//
//	s := history.NewStack(50)
//	s.Record("draft 1")
//	s.Record("draft 2")
//	prev, ok := s.Pop() // "draft 2", true
package history
