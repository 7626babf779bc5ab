package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/ghostedit/internal/engine"
	"github.com/dshills/ghostedit/internal/input/mode"
)

// tabWidth is the display width of a tab character.
const tabWidth = 4

var (
	textStyle  = tcell.StyleDefault
	barStyle   = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite)
	panelStyle = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)

	modeStyles = map[engine.Mode]tcell.Style{
		engine.ModeNormal: tcell.StyleDefault.Bold(true).Background(tcell.ColorBlue).Foreground(tcell.ColorWhite),
		engine.ModeInsert: tcell.StyleDefault.Bold(true).Background(tcell.ColorGreen).Foreground(tcell.ColorBlack),
	}
)

// draw renders the document, the status line and, when enabled, the
// statistics panel.
func (app *Application) draw() {
	app.mu.RLock()
	s := app.screen
	app.mu.RUnlock()
	if s == nil {
		return
	}

	s.Clear()
	width, height := s.Size()
	rows := height - 1
	if rows < 1 {
		s.Show()
		return
	}

	text := app.engine.Content()
	cursorRow := strings.Count(text[:app.cursor], "\n")
	cursorCol := displayWidth(text[lineStart(text, app.cursor):app.cursor])

	// Scroll so the cursor row is visible.
	if cursorRow < app.top {
		app.top = cursorRow
	}
	if cursorRow >= app.top+rows {
		app.top = cursorRow - rows + 1
	}

	lines := strings.Split(text, "\n")
	for y := 0; y < rows && app.top+y < len(lines); y++ {
		drawText(s, 0, y, width, lines[app.top+y], textStyle)
	}

	st := app.engine.Analyze()
	app.drawStatus(s, height-1, width, st)
	if app.showStats {
		app.drawStatsPanel(s, width, st)
	}

	s.SetCursorStyle(cursorStyle(app.engine.Mode().CursorStyle()))
	s.ShowCursor(cursorCol, cursorRow-app.top)
	s.Show()
}

// drawStatus renders the mode indicator, the message or emoji hint and the
// word count on the bottom row.
func (app *Application) drawStatus(s tcell.Screen, row, width int, st engine.Stats) {
	for x := 0; x < width; x++ {
		s.SetContent(x, row, ' ', nil, barStyle)
	}

	m := app.engine.Mode()
	col := drawText(s, 0, row, width, " "+m.DisplayName()+" ", modeStyles[m])
	col++

	middle := app.message
	if middle == "" {
		if name, glyph, ok := app.suggestion(); ok {
			middle = fmt.Sprintf(":%s %s (Tab)", name, glyph)
		}
	}

	right := statusRight(st)
	rightStart := width - displayWidth(right) - 1
	drawText(s, col, row, rightStart-1, middle, barStyle)
	if rightStart > col {
		drawText(s, rightStart, row, width, right, barStyle)
	}
}

// drawStatsPanel renders the statistics box in the top right corner.
func (app *Application) drawStatsPanel(s tcell.Screen, width int, st engine.Stats) {
	lines := statsLines(st, app.engine.UndoDepth(), app.engine.MaxUndoEntries())

	boxWidth := 0
	for _, l := range lines {
		if w := displayWidth(l); w > boxWidth {
			boxWidth = w
		}
	}
	boxWidth += 2

	x0 := width - boxWidth - 1
	if x0 < 0 {
		x0 = 0
	}
	for y, l := range lines {
		for x := x0; x < x0+boxWidth && x < width; x++ {
			s.SetContent(x, y, ' ', nil, panelStyle)
		}
		drawText(s, x0+1, y, width, l, panelStyle)
	}
}

// statusRight formats the right side of the status line.
func statusRight(st engine.Stats) string {
	return fmt.Sprintf("%d words  %.1fm", st.Words, st.ReadingTime)
}

// statsLines formats the statistics panel.
func statsLines(st engine.Stats, undoDepth, undoLimit int) []string {
	return []string{
		"Statistics",
		fmt.Sprintf("Words       %d", st.Words),
		fmt.Sprintf("Characters  %d", st.Chars),
		fmt.Sprintf("Graphemes   %d", st.Graphemes),
		fmt.Sprintf("Lines       %d", st.Lines),
		fmt.Sprintf("Reading     %.1fm", st.ReadingTime),
		fmt.Sprintf("Undo        %d/%d", undoDepth, undoLimit),
	}
}

// drawText draws s starting at column x, clipped before column limit, and
// returns the column after the last cell drawn.
func drawText(scr tcell.Screen, x, y, limit int, s string, style tcell.Style) int {
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)

		if cluster == "\t" {
			for i := 0; i < tabWidth && x < limit; i++ {
				scr.SetContent(x, y, ' ', nil, style)
				x++
			}
			continue
		}
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}

		runes := []rune(cluster)
		scr.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

// displayWidth returns the number of columns s occupies.
func displayWidth(s string) int {
	n := strings.Count(s, "\t")
	return uniseg.StringWidth(strings.ReplaceAll(s, "\t", "")) + n*tabWidth
}

// cursorStyle maps a mode cursor style onto the terminal's.
func cursorStyle(c mode.CursorStyle) tcell.CursorStyle {
	if c == mode.CursorBar {
		return tcell.CursorStyleSteadyBar
	}
	return tcell.CursorStyleSteadyBlock
}
