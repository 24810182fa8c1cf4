package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/alien-invasion/internal/draw"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

var (
	_ Object     = (*Particle)(nil)
	_ Releasable = (*Particle)(nil)
)

// Particle is a short-lived piece of explosion debris. Particles are purely
// visual and never collide with anything.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity, px per second
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Color       tcell.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64, color tcell.Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Color = color
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates count particles bursting out of (x, y).
func SpawnExplosion(x, y float64, count int, speed, lifetime float64, color tcell.Color, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		// 50% to 150% of speed, 50% to 100% of lifetime
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)

		spawner.Spawn(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, color))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt

	return !ctx.Screen.ContainsPoint(p.X, p.Y), nil
}

// Draw renders the particle as one pixel fading into the background.
func (p *Particle) Draw(ctx DrawContext) error {
	fade := 0.0
	if p.MaxLifetime > 0 {
		fade = 1 - p.Lifetime/p.MaxLifetime
	}
	ctx.Canvas.SetFloat(p.X, p.Y, draw.Blend(p.Color, ctx.Canvas.Background(), fade))
	return nil
}
