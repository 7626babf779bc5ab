package key

import (
	"github.com/gdamore/tcell/v2"
)

// tcellNames maps tcell special keys to key names.
// Tab, Enter, Backspace and Escape share codes with Ctrl+I, Ctrl+M, Ctrl+H
// and Ctrl+[; they are reported as the named key.
var tcellNames = map[tcell.Key]string{
	tcell.KeyEscape:     Escape,
	tcell.KeyEnter:      Enter,
	tcell.KeyTab:        Tab,
	tcell.KeyBackspace:  Backspace,
	tcell.KeyBackspace2: Backspace,
	tcell.KeyDelete:     Delete,
	tcell.KeyInsert:     Insert,
	tcell.KeyHome:       Home,
	tcell.KeyEnd:        End,
	tcell.KeyPgUp:       PageUp,
	tcell.KeyPgDn:       PageDown,
	tcell.KeyUp:         ArrowUp,
	tcell.KeyDown:       ArrowDown,
	tcell.KeyLeft:       ArrowLeft,
	tcell.KeyRight:      ArrowRight,
}

// FromTcell converts a tcell key event into an Input.
// It reports false for keys that have no Input representation
// (function keys, Ctrl+Space, and so on).
func FromTcell(ev *tcell.EventKey) (Input, bool) {
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	k := ev.Key()

	if k == tcell.KeyRune {
		return Input{Name: string(ev.Rune()), Ctrl: ctrl}, true
	}

	if name, ok := tcellNames[k]; ok {
		return Input{Name: name, Ctrl: ctrl}, true
	}

	// Legacy terminals deliver Ctrl+letter as a control code.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Input{Name: string(rune('a' + int(k-tcell.KeyCtrlA))), Ctrl: true}, true
	}

	return Input{}, false
}

// ToTcell converts an Input into a tcell key event, for posting synthetic
// key presses onto a tcell event queue.
func ToTcell(in Input) *tcell.EventKey {
	var mod tcell.ModMask
	if in.Ctrl {
		mod = tcell.ModCtrl
	}
	for k, name := range tcellNames {
		if name == in.Name && k != tcell.KeyBackspace {
			return tcell.NewEventKey(k, 0, mod)
		}
	}
	return tcell.NewEventKey(tcell.KeyRune, in.Rune(), mod)
}
