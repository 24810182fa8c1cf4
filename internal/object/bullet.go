package object

import (
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/physics"
)

var (
	_ Object       = (*Bullet)(nil)
	_ Destructible = (*Bullet)(nil)
)

// Bullet is a shot fired straight up from the ship.
type Bullet struct {
	X, Y          float64 // Top-left corner; Y decreases as it travels
	Width, Height float64
	destroyed     bool
}

// NewBullet creates a bullet whose top edge is centered on the ship's top edge.
func NewBullet(ship *Ship, s *config.Settings) *Bullet {
	r := ship.Rect()
	return &Bullet{
		X:      r.CenterX() - s.BulletWidth/2,
		Y:      r.Top(),
		Width:  s.BulletWidth,
		Height: s.BulletHeight,
	}
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() physics.Rect {
	return physics.NewRect(b.X, b.Y, b.Width, b.Height)
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet up. The bullet is removed once its bottom edge is
// at or above the top of the screen.
func (b *Bullet) Update(ctx UpdateContext) (bool, error) {
	b.Y -= ctx.Settings.BulletSpeed
	return b.destroyed || b.Rect().Bottom() <= ctx.Screen.Top(), nil
}

// Draw renders the bullet as a solid rectangle.
func (b *Bullet) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(b.X, b.Y, b.Width, b.Height, ColorOf(ctx.Settings.BulletColor))
	return nil
}
