package object

import (
	"github.com/tomz197/alien-invasion/internal/physics"
)

var (
	_ Object       = (*Alien)(nil)
	_ Destructible = (*Alien)(nil)
)

// Alien is a single member of the fleet. Speed and direction are shared by
// the whole fleet and read from the settings on every update.
type Alien struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	destroyed     bool
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(x, y, w, h float64) *Alien {
	return &Alien{X: x, Y: y, Width: w, Height: h}
}

// Rect returns the alien's bounding box.
func (a *Alien) Rect() physics.Rect {
	return physics.NewRect(a.X, a.Y, a.Width, a.Height)
}

// CheckEdge reports whether the alien touches the left or right screen edge.
func (a *Alien) CheckEdge(screen physics.Rect) bool {
	r := a.Rect()
	return r.Right() >= screen.Right() || r.Left() <= screen.Left()
}

// Drop moves the alien down by dy.
func (a *Alien) Drop(dy float64) {
	a.Y += dy
}

// MarkDestroyed marks the alien for removal.
func (a *Alien) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the alien is marked for destruction.
func (a *Alien) IsDestroyed() bool {
	return a.destroyed
}

// Update moves the alien sideways in the fleet's current direction.
func (a *Alien) Update(ctx UpdateContext) (bool, error) {
	a.X += ctx.Settings.AlienSpeed * float64(ctx.Settings.FleetDirection)
	return a.destroyed, nil
}

// Draw renders a small invader: a body, two legs and two eyes cut out in the
// background color.
func (a *Alien) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	color := ColorOf(ctx.Settings.AlienColor)
	w, h := a.Width, a.Height

	c.FillRect(a.X+0.1*w, a.Y, 0.8*w, 0.7*h, color)
	c.FillRect(a.X, a.Y+0.6*h, 0.2*w, 0.4*h, color)
	c.FillRect(a.X+0.8*w, a.Y+0.6*h, 0.2*w, 0.4*h, color)

	bg := c.Background()
	c.FillRect(a.X+0.25*w, a.Y+0.2*h, 0.15*w, 0.2*h, bg)
	c.FillRect(a.X+0.6*w, a.Y+0.2*h, 0.15*w, 0.2*h, bg)
	return nil
}
