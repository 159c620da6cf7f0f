package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// tagColors maps inline color tags such as <R> to display colors.
var tagColors = map[byte]tcell.Color{
	'R': tcell.ColorRed,
	'G': tcell.ColorGreen,
	'L': tcell.ColorSilver,
	'W': tcell.ColorWhite,
	'Y': tcell.ColorYellow,
	'B': tcell.ColorBlue,
	'C': tcell.ColorAqua,
}

// Run is a stretch of text in a single color.
type Run struct {
	Text  string
	Color tcell.Color
}

// ParseMarkup splits text on color tags. Text before the first tag uses base.
// Unknown tags are kept as literal text.
func ParseMarkup(text string, base tcell.Color) []Run {
	var runs []Run
	color := base
	start := 0
	for i := 0; i+2 < len(text); i++ {
		if text[i] != '<' || text[i+2] != '>' {
			continue
		}
		c, ok := tagColors[text[i+1]]
		if !ok {
			continue
		}
		if i > start {
			runs = append(runs, Run{Text: text[start:i], Color: color})
		}
		color = c
		start = i + 3
		i += 2
	}
	if start < len(text) {
		runs = append(runs, Run{Text: text[start:], Color: color})
	}
	return runs
}

// StripMarkup returns the text with color tags removed.
func StripMarkup(text string) string {
	var b strings.Builder
	for _, run := range ParseMarkup(text, tcell.ColorDefault) {
		b.WriteString(run.Text)
	}
	return b.String()
}

type glyph struct {
	r     rune
	color tcell.Color
}

// wrapMarkup lays out marked-up text in lines of at most width cells, breaking
// on spaces. Explicit newlines always break. A width of 0 disables wrapping.
func wrapMarkup(text string, base tcell.Color, width int) [][]glyph {
	var lines [][]glyph
	var line, word []glyph

	flushWord := func() {
		if len(word) == 0 {
			return
		}
		if width > 0 && len(line) > 0 && len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = nil
		}
		if len(line) > 0 {
			line = append(line, glyph{' ', base})
		}
		line = append(line, word...)
		word = nil
	}

	for _, run := range ParseMarkup(text, base) {
		for _, r := range run.Text {
			switch r {
			case ' ':
				flushWord()
			case '\n':
				flushWord()
				lines = append(lines, line)
				line = nil
			default:
				word = append(word, glyph{r, run.Color})
			}
		}
	}
	flushWord()
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// DrawMarkup draws wrapped marked-up text with its top-left corner at (x, y)
// and returns the number of lines used.
func DrawMarkup(c Canvas, x, y, width int, text string, base tcell.Color) int {
	lines := wrapMarkup(text, base, width)
	for row, line := range lines {
		for col, g := range line {
			c.SetContent(x+col, y+row, g.r, tcell.StyleDefault.Foreground(g.color))
		}
	}
	return len(lines)
}

// DrawCentered draws a single line of marked-up text centered on column cx.
func DrawCentered(c Canvas, cx, y int, text string, base tcell.Color) {
	x := cx - len([]rune(StripMarkup(text)))/2
	DrawMarkup(c, x, y, 0, text, base)
}
