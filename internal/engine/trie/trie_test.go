package trie

import "testing"

func TestNewEmpty(t *testing.T) {
	tr := New()
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
	if _, ok := tr.Lookup("a"); ok {
		t.Error("Lookup on empty trie should report false")
	}
}

func TestLookup(t *testing.T) {
	tr := New(
		Entry{Key: "ghost", Value: "👻"},
		Entry{Key: "fire", Value: "🔥"},
	)

	tests := []struct {
		name   string
		prefix string
		want   string
		wantOK bool
	}{
		{"exact key", "ghost", "👻", true},
		{"other key", "fire", "🔥", true},
		{"inner node", "gho", "", false},
		{"past leaf", "ghostx", "", false},
		{"no path", "zzz", "", false},
		{"case sensitive", "Ghost", "", false},
		{"empty prefix", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.Lookup(tt.prefix)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.prefix, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInsertOverwrites(t *testing.T) {
	tr := New(Entry{Key: "heart", Value: "❤️"})
	tr.Insert("heart", "💜")

	got, ok := tr.Lookup("heart")
	if !ok || got != "💜" {
		t.Errorf("Lookup(heart) = (%q, %v), want (💜, true)", got, ok)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestIntermediateTerminal(t *testing.T) {
	tr := New(
		Entry{Key: "fire", Value: "🔥"},
		Entry{Key: "fi", Value: "fi"},
	)

	if got, ok := tr.Lookup("fi"); !ok || got != "fi" {
		t.Errorf("Lookup(fi) = (%q, %v), want (fi, true)", got, ok)
	}
	if got, ok := tr.Lookup("fire"); !ok || got != "🔥" {
		t.Errorf("Lookup(fire) = (%q, %v), want (🔥, true)", got, ok)
	}
	if _, ok := tr.Lookup("fir"); ok {
		t.Error("Lookup(fir) should report false")
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}

func TestRuneKeys(t *testing.T) {
	tr := New(Entry{Key: "caf\u00e9", Value: "☕"})

	if got, ok := tr.Lookup("caf\u00e9"); !ok || got != "☕" {
		t.Errorf("Lookup(café) = (%q, %v), want (☕, true)", got, ok)
	}
	// "cafe" + combining acute is a different code point sequence.
	if _, ok := tr.Lookup("cafe\u0301"); ok {
		t.Error("Lookup should not normalize combining sequences")
	}
}

func TestEmptyKey(t *testing.T) {
	tr := New()
	tr.Insert("", "root")

	if got, ok := tr.Lookup(""); !ok || got != "root" {
		t.Errorf("Lookup(\"\") = (%q, %v), want (root, true)", got, ok)
	}
}

func TestContains(t *testing.T) {
	tr := New(Entry{Key: "rocket", Value: "🚀"})
	if !tr.Contains("rocket") {
		t.Error("Contains(rocket) = false, want true")
	}
	if tr.Contains("rock") {
		t.Error("Contains(rock) = true, want false")
	}
}
