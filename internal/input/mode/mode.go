package mode

import "fmt"

// Mode is the active interaction state of the editor.
type Mode uint8

const (
	// Insert is free typing. It is the initial mode.
	Insert Mode = iota

	// Normal interprets keys as commands.
	Normal
)

// Initial is the mode a new editor starts in.
const Initial = Insert

// Standard mode names.
const (
	NameNormal = "normal"
	NameInsert = "insert"
)

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case Normal:
		return NameNormal
	case Insert:
		return NameInsert
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// CursorStyle returns the cursor style for the mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Normal || m == Insert
}

// Parse returns the mode for a name ("normal" or "insert").
func Parse(name string) (Mode, error) {
	switch name {
	case NameNormal:
		return Normal, nil
	case NameInsert:
		return Insert, nil
	default:
		return 0, fmt.Errorf("unknown mode: %s", name)
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}
