package mode

import (
	"testing"

	"github.com/dshills/ghostedit/internal/input/key"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode        Mode
		name        string
		displayName string
		cursor      CursorStyle
	}{
		{Normal, "normal", "NORMAL", CursorBlock},
		{Insert, "insert", "INSERT", CursorBar},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.mode.DisplayName(); got != tt.displayName {
			t.Errorf("DisplayName() = %q, want %q", got, tt.displayName)
		}
		if got := tt.mode.CursorStyle(); got != tt.cursor {
			t.Errorf("%s CursorStyle() = %v, want %v", tt.mode, got, tt.cursor)
		}
	}

	if Mode(9).Valid() {
		t.Error("Mode(9).Valid() = true, want false")
	}
	if Mode(9).DisplayName() != "UNKNOWN" {
		t.Errorf("Mode(9).DisplayName() = %q", Mode(9).DisplayName())
	}
}

func TestInitialIsInsert(t *testing.T) {
	if Initial != Insert {
		t.Errorf("Initial = %v, want insert", Initial)
	}
	if got := NewMachine().Current(); got != Insert {
		t.Errorf("NewMachine().Current() = %v, want insert", got)
	}
}

func TestParse(t *testing.T) {
	if m, err := Parse("normal"); err != nil || m != Normal {
		t.Errorf("Parse(normal) = %v, %v", m, err)
	}
	if m, err := Parse("insert"); err != nil || m != Insert {
		t.Errorf("Parse(insert) = %v, %v", m, err)
	}
	if _, err := Parse("visual"); err == nil {
		t.Error("Parse(visual) should fail")
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name     string
		current  Mode
		key      string
		wantNext Mode
		wantCmd  Command
		wantOK   bool
	}{
		{"normal i", Normal, "i", Insert, CmdModeInsert, true},
		{"normal h", Normal, "h", Normal, CmdMoveLeft, true},
		{"normal j", Normal, "j", Normal, CmdMoveDown, true},
		{"normal k", Normal, "k", Normal, CmdMoveUp, true},
		{"normal l", Normal, "l", Normal, CmdMoveRight, true},
		{"normal x", Normal, "x", Normal, CmdDeleteChar, true},
		{"normal other", Normal, "z", Normal, "", false},
		{"normal escape", Normal, key.Escape, Normal, "", false},
		{"normal uppercase", Normal, "I", Normal, "", false},
		{"insert escape", Insert, key.Escape, Normal, CmdModeNormal, true},
		{"insert letter", Insert, "i", Insert, "", false},
		{"insert h", Insert, "h", Insert, "", false},
		{"insert enter", Insert, key.Enter, Insert, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd, ok := Transition(tt.current, key.New(tt.key, false))
			if next != tt.wantNext || cmd != tt.wantCmd || ok != tt.wantOK {
				t.Errorf("Transition(%v, %q) = (%v, %q, %v), want (%v, %q, %v)",
					tt.current, tt.key, next, cmd, ok, tt.wantNext, tt.wantCmd, tt.wantOK)
			}
		})
	}
}

func TestTransitionIgnoresCtrl(t *testing.T) {
	for _, m := range []Mode{Normal, Insert} {
		for _, k := range []string{"i", "h", "x", "z", key.Escape} {
			n1, c1, ok1 := Transition(m, key.New(k, false))
			n2, c2, ok2 := Transition(m, key.New(k, true))
			if n1 != n2 || c1 != c2 || ok1 != ok2 {
				t.Errorf("Transition(%v, %q) differs with ctrl held", m, k)
			}
		}
	}
}

func TestTransitionUnknownMode(t *testing.T) {
	next, _, ok := Transition(Mode(7), key.New("i", false))
	if ok || next != Mode(7) {
		t.Errorf("Transition on unknown mode = (%v, %v)", next, ok)
	}
}

func TestCommandClassification(t *testing.T) {
	if !CmdMoveLeft.IsMotion() || CmdDeleteChar.IsMotion() {
		t.Error("IsMotion misclassifies commands")
	}
	if !CmdModeNormal.IsModeChange() || CmdMoveUp.IsModeChange() {
		t.Error("IsModeChange misclassifies commands")
	}
	if CmdDeleteChar.String() != "DELETE_CHAR" {
		t.Errorf("String() = %q", CmdDeleteChar.String())
	}
}
