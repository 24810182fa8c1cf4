package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the terminal cell grid a Canvas renders into. tcell.Screen
// satisfies it.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Ensure tcell screens can be rendered to.
var _ Surface = (tcell.Screen)(nil)

// textItem is a string queued for drawing over the pixels.
type textItem struct {
	col, row int
	value    string
	style    tcell.Style
}

// WriteString draws s starting at a 0-based terminal cell, honoring wide
// runes. Cells outside the surface are skipped. Returns the column after the
// last rune.
func WriteString(s Surface, col, row int, value string, style tcell.Style) int {
	w, h := s.Size()
	if row < 0 || row >= h {
		return col + runewidth.StringWidth(value)
	}
	for _, r := range value {
		if col >= 0 && col < w {
			s.SetContent(col, row, r, nil, style)
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}

// StringWidth returns the number of terminal columns value occupies.
func StringWidth(value string) int {
	return runewidth.StringWidth(value)
}
