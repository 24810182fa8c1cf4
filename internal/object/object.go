// Package object defines the game entities: the player's ship, bullets,
// aliens, explosion particles and UI pieces drawn on the canvas.
package object

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta    time.Duration
	Settings *config.Settings
	Screen   physics.Rect
	Spawner  Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas   *draw.Canvas
	Settings *config.Settings
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Canvas.
	Draw(ctx DrawContext) error
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// ScreenRect returns the logical playfield for s.
func ScreenRect(s *config.Settings) physics.Rect {
	return physics.NewRect(0, 0, float64(s.ScreenWidth), float64(s.ScreenHeight))
}

// ColorOf converts a settings color to a terminal color.
func ColorOf(c config.RGB) tcell.Color {
	return draw.Color(c.R, c.G, c.B)
}
