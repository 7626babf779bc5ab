package mode

// Command is a symbolic editor command emitted by the transition table.
// The host decides what each command does to the document.
type Command string

// Commands emitted by the default tables.
const (
	CmdModeInsert Command = "MODE_INSERT"
	CmdModeNormal Command = "MODE_NORMAL"
	CmdMoveLeft   Command = "MOVE_LEFT"
	CmdMoveDown   Command = "MOVE_DOWN"
	CmdMoveUp     Command = "MOVE_UP"
	CmdMoveRight  Command = "MOVE_RIGHT"
	CmdDeleteChar Command = "DELETE_CHAR"
)

// String returns the command token.
func (c Command) String() string {
	return string(c)
}

// IsMotion reports whether the command moves the cursor.
func (c Command) IsMotion() bool {
	switch c {
	case CmdMoveLeft, CmdMoveDown, CmdMoveUp, CmdMoveRight:
		return true
	}
	return false
}

// IsModeChange reports whether the command switches modes.
func (c Command) IsModeChange() bool {
	return c == CmdModeInsert || c == CmdModeNormal
}
