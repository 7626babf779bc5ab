package app

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Cursor positions are byte offsets into the document. Helpers in this
// file keep them on grapheme cluster boundaries and never move them
// across a line break except for vertical motion.

// lineStart returns the offset of the first byte of the line holding off.
func lineStart(text string, off int) int {
	return strings.LastIndexByte(text[:off], '\n') + 1
}

// lineEnd returns the offset of the line break ending the line holding
// off, or len(text) for the last line.
func lineEnd(text string, off int) int {
	i := strings.IndexByte(text[off:], '\n')
	if i < 0 {
		return len(text)
	}
	return off + i
}

// boundaries returns the grapheme cluster boundaries of s, including 0
// and len(s).
func boundaries(s string) []int {
	out := []int{0}
	state := -1
	pos := 0
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		pos += len(cluster)
		out = append(out, pos)
	}
	return out
}

// clampCursor moves off into text and onto a cluster boundary at or
// before it.
func clampCursor(text string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(text) {
		off = len(text)
	}
	for off > 0 && off < len(text) && !utf8.RuneStart(text[off]) {
		off--
	}

	start := lineStart(text, off)
	best := start
	for _, b := range boundaries(text[start:lineEnd(text, off)]) {
		if start+b > off {
			break
		}
		best = start + b
	}
	return best
}

// column returns the cluster index of off within its line.
func column(text string, off int) int {
	return len(boundaries(text[lineStart(text, off):off])) - 1
}

// offsetAtColumn returns the offset of cluster col on the line starting
// at start, clamped to the end of that line.
func offsetAtColumn(text string, start, col int) int {
	b := boundaries(text[start:lineEnd(text, start)])
	if col >= len(b) {
		col = len(b) - 1
	}
	return start + b[col]
}

func moveLeft(text string, off int) int {
	start := lineStart(text, off)
	b := boundaries(text[start:off])
	if len(b) < 2 {
		return off
	}
	return start + b[len(b)-2]
}

func moveRight(text string, off int) int {
	end := lineEnd(text, off)
	if off >= end {
		return off
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[off:end], -1)
	return off + len(cluster)
}

func moveUp(text string, off int) int {
	start := lineStart(text, off)
	if start == 0 {
		return off
	}
	return offsetAtColumn(text, lineStart(text, start-1), column(text, off))
}

func moveDown(text string, off int) int {
	end := lineEnd(text, off)
	if end == len(text) {
		return off
	}
	return offsetAtColumn(text, end+1, column(text, off))
}

// deleteChar removes the cluster under off. Line breaks are not deleted.
func deleteChar(text string, off int) string {
	end := lineEnd(text, off)
	if off >= end {
		return text
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[off:end], -1)
	return text[:off] + text[off+len(cluster):]
}

// backspace removes the cluster before off, joining lines at a line
// start, and returns the new text and cursor.
func backspace(text string, off int) (string, int) {
	if off == 0 {
		return text, 0
	}
	if text[off-1] == '\n' {
		return text[:off-1] + text[off:], off - 1
	}
	prev := moveLeft(text, off)
	return text[:prev] + text[off:], prev
}

// insertText inserts s at off and returns the new text and cursor.
func insertText(text string, off int, s string) (string, int) {
	return text[:off] + s + text[off:], off + len(s)
}

// emojiQuery finds a ":name" token ending at off. It returns the name and
// the offset of the colon.
func emojiQuery(text string, off int) (string, int, bool) {
	i := off
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if !isWordRune(r) {
			break
		}
		i -= size
	}
	if i == off || i == 0 || text[i-1] != ':' {
		return "", 0, false
	}
	return text[i:off], i - 1, true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
