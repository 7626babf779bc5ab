package key

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestInputIsRune(t *testing.T) {
	tests := []struct {
		in   Input
		want bool
	}{
		{New("i", false), true},
		{New("é", false), true},
		{New(Space, false), true},
		{New(Escape, false), false},
		{New("", false), false},
		{New("k", true), true},
	}

	for _, tt := range tests {
		if got := tt.in.IsRune(); got != tt.want {
			t.Errorf("%#v.IsRune() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInputRune(t *testing.T) {
	if r := New("x", false).Rune(); r != 'x' {
		t.Errorf("Rune() = %q, want 'x'", r)
	}
	if r := New(Escape, false).Rune(); r != 0 {
		t.Errorf("Rune() for named key = %q, want 0", r)
	}
}

func TestInputString(t *testing.T) {
	tests := []struct {
		in   Input
		want string
	}{
		{New("i", false), "i"},
		{New(Escape, false), "<Esc>"},
		{New(Enter, false), "<CR>"},
		{New("k", true), "<C-k>"},
		{New(Escape, true), "<C-Esc>"},
		{New(Space, false), "<Space>"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Input
	}{
		{"i", Input{Name: "i"}},
		{"A", Input{Name: "A"}},
		{"Escape", Input{Name: Escape}},
		{"esc", Input{Name: Escape}},
		{"<Esc>", Input{Name: Escape}},
		{"<CR>", Input{Name: Enter}},
		{"<C-k>", Input{Name: "k", Ctrl: true}},
		{"<C-K>", Input{Name: "k", Ctrl: true}},
		{"Ctrl+K", Input{Name: "k", Ctrl: true}},
		{"ctrl+r", Input{Name: "r", Ctrl: true}},
		{"<lt>", Input{Name: "<"}},
		{"+", Input{Name: "+"}},
		{" ", Input{Name: Space}},
		{"<Space>", Input{Name: Space}},
		{"left", Input{Name: ArrowLeft}},
		{"<C-->", Input{Name: "-", Ctrl: true}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"<>", ErrInvalidSpec},
		{"<A-x>", ErrInvalidSpec},
		{"Alt+x", ErrInvalidSpec},
		{"notakey", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("notakey")
}

func TestNormalizeSpec(t *testing.T) {
	got, err := NormalizeSpec("Ctrl+K")
	if err != nil {
		t.Fatalf("NormalizeSpec error = %v", err)
	}
	if got != "<C-k>" {
		t.Errorf("NormalizeSpec(Ctrl+K) = %q, want <C-k>", got)
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   Input
		wantOK bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), Input{Name: "i"}, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Input{Name: Escape}, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Input{Name: Enter}, true},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Input{Name: Backspace}, true},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Input{Name: ArrowLeft}, true},
		{"ctrl code", tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModNone), Input{Name: "k", Ctrl: true}, true},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModCtrl), Input{Name: "k", Ctrl: true}, true},
		{"function key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), Input{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTcell(tt.ev)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FromTcell() = (%#v, %v), want (%#v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestToTcellRoundTrip(t *testing.T) {
	for _, in := range []Input{
		{Name: "x"},
		{Name: Escape},
		{Name: Backspace},
		{Name: "r", Ctrl: true},
	} {
		got, ok := FromTcell(ToTcell(in))
		if !ok || got != in {
			t.Errorf("FromTcell(ToTcell(%#v)) = (%#v, %v)", in, got, ok)
		}
	}
}
