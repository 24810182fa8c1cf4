// Package draw renders logical-resolution shapes and text onto a terminal
// surface using half-block characters.
package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
)

// Color converts 8-bit channels to a true-color terminal color.
func Color(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes from toward to; t=0 returns from, t=1 returns to.
func Blend(from, to tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	r, g, b := toColorful(from).BlendRgb(toColorful(to), t).Clamped().RGB255()
	return Color(r, g, b)
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// TextStyle returns a style with the given foreground and background.
func TextStyle(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
