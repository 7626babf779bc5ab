// Package stats computes document statistics.
package stats

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// DefaultWordsPerMinute is the reading speed used for ReadingTime.
const DefaultWordsPerMinute = 200.0

// Stats summarizes a document.
type Stats struct {
	// Words is the number of maximal runs of non-whitespace characters.
	Words int

	// Chars is the number of Unicode code points, line terminators included.
	Chars int

	// Graphemes is the number of user-perceived characters.
	Graphemes int

	// Lines is the number of line segments. A trailing terminator does not
	// start a new line and an empty document has zero lines.
	Lines int

	// ReadingTime is the estimated reading time in minutes, unrounded.
	ReadingTime float64
}

// Analyze computes statistics for text at the given reading speed.
// A non-positive wordsPerMinute selects DefaultWordsPerMinute.
func Analyze(text string, wordsPerMinute float64) Stats {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}

	words := len(strings.Fields(text))
	return Stats{
		Words:       words,
		Chars:       utf8.RuneCountInString(text),
		Graphemes:   uniseg.GraphemeClusterCount(text),
		Lines:       CountLines(text),
		ReadingTime: float64(words) / wordsPerMinute,
	}
}

// CountLines returns the number of line segments in text. Lines end at
// "\n"; a "\r\n" pair counts once.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
