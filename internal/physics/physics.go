// Package physics provides axis-aligned bounding boxes and overlap tests.
package physics

// Rect is an axis-aligned rectangle. X and Y are the top-left corner; Y grows
// downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether r and o overlap. Rectangles that only share an
// edge do not intersect, and neither does a rectangle without area.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// ContainsPoint reports whether (x, y) lies inside r. The left and top edges
// are inclusive, the right and bottom edges exclusive.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Centered returns a w×h rectangle centered on r.
func (r Rect) Centered(w, h float64) Rect {
	return Rect{X: r.CenterX() - w/2, Y: r.CenterY() - h/2, W: w, H: h}
}

// MidBottom returns a w×h rectangle whose bottom edge sits on r's bottom edge,
// horizontally centered.
func (r Rect) MidBottom(w, h float64) Rect {
	return Rect{X: r.CenterX() - w/2, Y: r.Bottom() - h, W: w, H: h}
}
