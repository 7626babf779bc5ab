package mode

import "github.com/dshills/ghostedit/internal/input/key"

// binding is a table entry: the command emitted and the mode it leads to.
type binding struct {
	next Mode
	cmd  Command
}

// normalBindings maps Normal mode keys. Unlisted keys are ignored.
var normalBindings = map[string]binding{
	"i": {next: Insert, cmd: CmdModeInsert},
	"h": {next: Normal, cmd: CmdMoveLeft},
	"j": {next: Normal, cmd: CmdMoveDown},
	"k": {next: Normal, cmd: CmdMoveUp},
	"l": {next: Normal, cmd: CmdMoveRight},
	"x": {next: Normal, cmd: CmdDeleteChar},
}

// insertBindings maps Insert mode keys. Everything else is text.
var insertBindings = map[string]binding{
	key.Escape: {next: Normal, cmd: CmdModeNormal},
}

// Transition classifies in for the current mode. It returns the next mode
// and the emitted command; ok is false when the key emits nothing, in
// which case next equals current.
//
// in.Ctrl is not consulted by the default tables.
func Transition(current Mode, in key.Input) (next Mode, cmd Command, ok bool) {
	var table map[string]binding
	switch current {
	case Normal:
		table = normalBindings
	case Insert:
		table = insertBindings
	default:
		return current, "", false
	}

	b, found := table[in.Name]
	if !found {
		return current, "", false
	}
	return b.next, b.cmd, true
}
