package loop

import "time"

// Game loop and effect tuning.
// Gameplay parameters live in config.Settings; these are presentation and
// timing constants.

const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// HitPause is how long the simulation stalls after the ship is hit.
const HitPause = 500 * time.Millisecond

// Explosions
const (
	alienExplosionParticles = 10
	alienExplosionSpeed     = 120.0 // px per second
	alienExplosionLifetime  = 0.4   // seconds
	shipExplosionParticles  = 30
	shipExplosionSpeed      = 200.0
	shipExplosionLifetime   = 0.8
)

// HUD
const (
	hudMargin     = 20.0 // logical px
	hudShipScale  = 0.5  // remaining-ship icons relative to the real ship
	hitFlashBlend = 0.5  // strongest background tint during the hit pause
)
