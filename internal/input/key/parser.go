package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Input.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+K"
//   - Vim-style: "<C-k>", "<CR>", "<Esc>"
//
// Only the Ctrl modifier is modeled.
func Parse(spec string) (Input, error) {
	if spec == "" {
		return Input{}, ErrEmptySpec
	}
	if spec == Space {
		return Input{Name: Space}, nil
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Input{}, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Check for modifier+key format (Ctrl+K). A lone "+" is a character.
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKey(spec, false)
}

// parseVimStyle parses Vim-style notation like "C-k", "CR", "Esc".
func parseVimStyle(inner string) (Input, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Input{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	if len(parts) == 1 {
		return parseKey(parts[0], false)
	}

	// "<C-->" style: trailing hyphen is the key itself.
	keyPart := parts[len(parts)-1]
	mods := parts[:len(parts)-1]
	if keyPart == "" && len(parts) >= 2 {
		keyPart = "-"
		mods = parts[:len(parts)-2]
	}

	ctrl := false
	for _, p := range mods {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			ctrl = true
		default:
			return Input{}, fmt.Errorf("%w: unsupported modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKey(keyPart, ctrl)
}

// parseModifierStyle parses "Ctrl+K" style notation.
func parseModifierStyle(spec string) (Input, error) {
	parts := strings.Split(spec, "+")

	ctrl := false
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control", "c":
			ctrl = true
		default:
			return Input{}, fmt.Errorf("%w: unsupported modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKey(strings.TrimSpace(parts[len(parts)-1]), ctrl)
}

// parseKey parses a key name or single character.
func parseKey(keyPart string, ctrl bool) (Input, error) {
	if keyPart == "" {
		return Input{}, ErrInvalidSpec
	}

	if name, ok := NameFromAlias(keyPart); ok {
		return Input{Name: name, Ctrl: ctrl}, nil
	}

	switch strings.ToLower(keyPart) {
	case "lt":
		return Input{Name: "<", Ctrl: ctrl}, nil
	case "gt":
		return Input{Name: ">", Ctrl: ctrl}, nil
	case "bar":
		return Input{Name: "|", Ctrl: ctrl}, nil
	case "bslash":
		return Input{Name: `\`, Ctrl: ctrl}, nil
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		// Ctrl chords are case-insensitive.
		if ctrl {
			r = unicode.ToLower(r)
		}
		return Input{Name: string(r), Ctrl: ctrl}, nil
	}

	return Input{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Input {
	in, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return in
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	in, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return in.String(), nil
}
