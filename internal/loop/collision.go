package loop

import (
	"github.com/tomz197/alien-invasion/internal/object"
)

// checkBulletAlienCollisions removes every overlapping bullet-alien pair.
// A bullet keeps testing after its first hit, so one bullet can take out
// several aliens; an alien already hit is not counted again. Each alien
// destroyed is worth the current AlienPoints.
func checkBulletAlienCollisions(state *State) {
	destroyed := 0
	for _, b := range state.Bullets {
		br := b.Rect()
		for _, a := range state.Aliens {
			if a.IsDestroyed() {
				continue
			}
			if br.Intersects(a.Rect()) {
				b.MarkDestroyed()
				a.MarkDestroyed()
				destroyed++

				ar := a.Rect()
				object.SpawnExplosion(ar.CenterX(), ar.CenterY(), alienExplosionParticles,
					alienExplosionSpeed, alienExplosionLifetime, object.ColorOf(state.Settings.AlienColor), state)
			}
		}
	}

	if destroyed == 0 {
		return
	}

	state.Bullets = compact(state.Bullets)
	state.Aliens = compact(state.Aliens)

	state.Stats.AddScore(state.Settings.AlienPoints * destroyed)
	state.Sound.PlayExplosion()
}

// checkWaveCleared starts the next, faster wave once the fleet is gone.
func checkWaveCleared(state *State) {
	if len(state.Aliens) > 0 {
		return
	}

	state.Bullets = nil
	createFleet(state)
	state.Settings.IncreaseSpeed()
	state.Stats.Level++

	state.Sound.PlayLevelUp()
	state.Logger.Info("wave cleared",
		"level", state.Stats.Level,
		"alien_points", state.Settings.AlienPoints,
	)
}

// compact drops destroyed objects, reusing the backing array.
func compact[T object.Destructible](objs []T) []T {
	kept := objs[:0]
	for _, o := range objs {
		if !o.IsDestroyed() {
			kept = append(kept, o)
		}
	}
	clear(objs[len(kept):])
	return kept
}
