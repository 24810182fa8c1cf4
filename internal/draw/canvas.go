package draw

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Game code draws in logical coordinates; the canvas
// scales them to whatever terminal size it currently has.
type Canvas struct {
	termWidth      int           // Actual terminal columns
	termHeight     int           // Actual terminal rows
	subPixelHeight int           // termHeight * 2
	pixels         []tcell.Color // Flat slice: [y * termWidth + x]; ColorDefault means unset
	background     tcell.Color

	// Logical coordinate space used by game objects
	logicalWidth  float64
	logicalHeight float64

	texts []textItem

	// Reusable buffers to reduce allocations
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to
// terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		background:    tcell.ColorBlack,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]tcell.Color, c.subPixelHeight*termWidth)
}

// Clear resets all pixels and queued text and sets the background color.
func (c *Canvas) Clear(background tcell.Color) {
	clear(c.pixels)
	c.texts = c.texts[:0]
	c.background = background
}

// Background returns the color set by the last Clear.
func (c *Canvas) Background() tcell.Color {
	return c.background
}

// pixelX and pixelY scale a logical coordinate to pixel space. Multiplying
// before dividing keeps integer ratios exact.
func (c *Canvas) pixelX(x float64) float64 {
	return x * float64(c.termWidth) / c.logicalWidth
}

func (c *Canvas) pixelY(y float64) float64 {
	return y * float64(c.subPixelHeight) / c.logicalHeight
}

// setPixel sets a pixel at actual terminal sub-pixel coordinates.
func (c *Canvas) setPixel(x, y int, color tcell.Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// pixel returns the color at sub-pixel (x, y), or ColorDefault when unset or
// out of range.
func (c *Canvas) pixel(x, y int) tcell.Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return tcell.ColorDefault
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets a pixel using float logical coordinates.
func (c *Canvas) SetFloat(x, y float64, color tcell.Color) {
	c.setPixel(int(math.Floor(c.pixelX(x))), int(math.Floor(c.pixelY(y))), color)
}

// FillRect fills the logical rectangle. Every rectangle covers at least one
// pixel so thin objects such as bullets stay visible.
func (c *Canvas) FillRect(x, y, w, h float64, color tcell.Color) {
	x0 := int(math.Floor(c.pixelX(x)))
	x1 := int(math.Ceil(c.pixelX(x+w))) - 1
	if x1 < x0 {
		x1 = x0
	}
	y0 := int(math.Floor(c.pixelY(y)))
	y1 := int(math.Ceil(c.pixelY(y+h))) - 1
	if y1 < y0 {
		y1 = y0
	}
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py, color)
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, color tcell.Color) {
	x1 := int(math.Round(c.pixelX(p1.X)))
	y1 := int(math.Round(c.pixelY(p1.Y)))
	x2 := int(math.Round(c.pixelX(p2.X)))
	y2 := int(math.Round(c.pixelY(p2.Y)))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool, color tcell.Color) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, color)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], color)
	}
}

// fillPolygon fills a polygon using scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point, color tcell.Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: c.pixelX(p.X), Y: c.pixelY(p.Y)}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, color)
			}
		}
	}
}

// DrawText queues text whose first cell is at the logical position (x, y).
func (c *Canvas) DrawText(x, y float64, value string, style tcell.Style) {
	col, row := c.LogicalToTerminal(x, y)
	c.DrawTextAt(col, row, value, style)
}

// DrawTextCentered queues text horizontally centered on the logical position.
func (c *Canvas) DrawTextCentered(x, y float64, value string, style tcell.Style) {
	col, row := c.LogicalToTerminal(x, y)
	c.DrawTextAt(col-StringWidth(value)/2, row, value, style)
}

// DrawTextRight queues text whose last cell ends at the logical position.
func (c *Canvas) DrawTextRight(x, y float64, value string, style tcell.Style) {
	col, row := c.LogicalToTerminal(x, y)
	c.DrawTextAt(col-StringWidth(value), row, value, style)
}

// DrawTextAt queues text at a 0-based terminal cell.
func (c *Canvas) DrawTextAt(col, row int, value string, style tcell.Style) {
	if value == "" {
		return
	}
	c.texts = append(c.texts, textItem{col: col, row: row, value: value, style: style})
}

// Render writes every cell of the canvas to the surface, then the queued
// text on top.
func (c *Canvas) Render(s Surface) {
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			top := c.pixel(col, row*2)
			bottom := c.pixel(col, row*2+1)

			var ch rune
			var style tcell.Style
			switch {
			case top == tcell.ColorDefault && bottom == tcell.ColorDefault:
				ch = BlockEmpty
				style = TextStyle(c.background, c.background)
			case top == bottom:
				ch = BlockFull
				style = TextStyle(top, c.background)
			default:
				ch = BlockUpperHalf
				style = TextStyle(c.orBackground(top), c.orBackground(bottom))
			}
			s.SetContent(col, row, ch, nil, style)
		}
	}

	for _, t := range c.texts {
		WriteString(s, t.col, t.row, t.value, t.style)
	}
}

func (c *Canvas) orBackground(color tcell.Color) tcell.Color {
	if color == tcell.ColorDefault {
		return c.background
	}
	return color
}

// LogicalToTerminal converts logical coordinates to a 0-based terminal cell.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(c.pixelX(x)))
	py := int(math.Floor(c.pixelY(y)))
	return px, py / 2
}

// TerminalToLogical converts a 0-based terminal cell to the logical
// coordinates of its center.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * c.logicalWidth / float64(c.termWidth)
	y = (float64(row)*2 + 1) * c.logicalHeight / float64(c.subPixelHeight)
	return x, y
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}
