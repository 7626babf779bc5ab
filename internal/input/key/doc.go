// Package key provides the key input model consumed by the mode state machine.
//
// A key press is an Input: a key name plus a Ctrl flag. Names follow the
// browser KeyboardEvent.key convention, so printable keys are the character
// itself ("i", "x") and special keys have names ("Escape", "Enter").
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+K"
//   - Vim-style: "<C-k>", "<CR>", "<Esc>"
//
// Terminal hosts convert tcell key events with FromTcell.
package key
