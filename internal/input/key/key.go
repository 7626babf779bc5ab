package key

import (
	"strings"
	"unicode/utf8"
)

// Named keys, spelled the way browser hosts report them.
const (
	Escape     = "Escape"
	Enter      = "Enter"
	Tab        = "Tab"
	Backspace  = "Backspace"
	Delete     = "Delete"
	Insert     = "Insert"
	Home       = "Home"
	End        = "End"
	PageUp     = "PageUp"
	PageDown   = "PageDown"
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	Space      = " "
)

// Input is a single key press as delivered by the host.
type Input struct {
	// Name is the key name: the character itself for printable keys,
	// or one of the named key constants.
	Name string

	// Ctrl is true if the Control key was held.
	Ctrl bool
}

// New creates an Input.
func New(name string, ctrl bool) Input {
	return Input{Name: name, Ctrl: ctrl}
}

// IsRune reports whether the input is a single character.
func (in Input) IsRune() bool {
	return utf8.RuneCountInString(in.Name) == 1
}

// Rune returns the character for a rune input, or 0.
func (in Input) Rune() rune {
	if !in.IsRune() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(in.Name)
	return r
}

// String returns the input in Vim-style notation, e.g. "i", "<Esc>", "<C-k>".
func (in Input) String() string {
	name := in.Name
	abbr, named := vimAbbrev[name]
	if named {
		name = abbr
	}
	if in.Ctrl {
		return "<C-" + name + ">"
	}
	if named {
		return "<" + name + ">"
	}
	return name
}

// vimAbbrev maps named keys to their Vim notation.
var vimAbbrev = map[string]string{
	Escape:     "Esc",
	Enter:      "CR",
	Tab:        "Tab",
	Backspace:  "BS",
	Delete:     "Del",
	Insert:     "Insert",
	Home:       "Home",
	End:        "End",
	PageUp:     "PageUp",
	PageDown:   "PageDown",
	ArrowUp:    "Up",
	ArrowDown:  "Down",
	ArrowLeft:  "Left",
	ArrowRight: "Right",
	Space:      "Space",
}

// canonicalNames maps lowercase key names and aliases to named keys.
var canonicalNames = map[string]string{
	"escape":     Escape,
	"esc":        Escape,
	"enter":      Enter,
	"return":     Enter,
	"cr":         Enter,
	"tab":        Tab,
	"backspace":  Backspace,
	"bs":         Backspace,
	"delete":     Delete,
	"del":        Delete,
	"insert":     Insert,
	"ins":        Insert,
	"home":       Home,
	"end":        End,
	"pageup":     PageUp,
	"pgup":       PageUp,
	"pagedown":   PageDown,
	"pgdn":       PageDown,
	"up":         ArrowUp,
	"arrowup":    ArrowUp,
	"down":       ArrowDown,
	"arrowdown":  ArrowDown,
	"left":       ArrowLeft,
	"arrowleft":  ArrowLeft,
	"right":      ArrowRight,
	"arrowright": ArrowRight,
	"space":      Space,
}

// NameFromAlias returns the canonical key name for a name or alias
// (case-insensitive). It reports false if the name is not a named key.
func NameFromAlias(alias string) (string, bool) {
	if alias == Space {
		return Space, true
	}
	name, ok := canonicalNames[strings.ToLower(strings.TrimSpace(alias))]
	return name, ok
}
