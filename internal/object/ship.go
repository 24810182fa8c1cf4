package object

import (
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/physics"
)

var _ Object = (*Ship)(nil)

// Ship is the player-controlled cannon at the bottom of the screen.
type Ship struct {
	X, Y          float64 // Top-left corner
	Width, Height float64

	MovingLeft  bool
	MovingRight bool
}

// NewShip creates a ship at the bottom center of the screen.
func NewShip(s *config.Settings) *Ship {
	ship := &Ship{Width: s.ShipWidth, Height: s.ShipHeight}
	ship.Center(ScreenRect(s))
	return ship
}

// Rect returns the ship's bounding box.
func (s *Ship) Rect() physics.Rect {
	return physics.NewRect(s.X, s.Y, s.Width, s.Height)
}

// Center places the ship at the bottom center of screen.
func (s *Ship) Center(screen physics.Rect) {
	r := screen.MidBottom(s.Width, s.Height)
	s.X, s.Y = r.X, r.Y
}

// Stop clears both movement flags.
func (s *Ship) Stop() {
	s.MovingLeft = false
	s.MovingRight = false
}

// Update moves the ship by ShipSpeed according to the movement flags. Holding
// both directions cancels out. The ship never leaves the screen.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	dir := 0.0
	if s.MovingRight {
		dir++
	}
	if s.MovingLeft {
		dir--
	}
	s.X += dir * ctx.Settings.ShipSpeed

	if s.X+s.Width > ctx.Screen.Right() {
		s.X = ctx.Screen.Right() - s.Width
	}
	if s.X < ctx.Screen.Left() {
		s.X = ctx.Screen.Left()
	}
	return false, nil
}

// Draw renders the ship as a filled triangle pointing up.
func (s *Ship) Draw(ctx DrawContext) error {
	r := s.Rect()
	color := ColorOf(ctx.Settings.ShipColor)

	hull := []draw.Point{
		{X: r.CenterX(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
	ctx.Canvas.DrawPolygon(hull, true, color)
	return nil
}
