package loop

import (
	"time"

	"github.com/tomz197/alien-invasion/internal/object"
)

// Step advances the simulation by one frame. It does nothing while the game
// is inactive or stalled after a hit.
//
// Order: ship, bullets, fleet edges, aliens, ship-alien contact, aliens at
// the bottom, bullet-alien hits, wave clear. Losing a ship ends the step.
func Step(state *State) error {
	if !state.Active || state.Paused() {
		return nil
	}

	ctx := state.UpdateContext()

	if _, err := state.Ship.Update(ctx); err != nil {
		return err
	}
	if err := updateBullets(state, ctx); err != nil {
		return err
	}

	checkFleetEdges(state)
	if err := updateAliens(state, ctx); err != nil {
		return err
	}

	if shipCollides(state) {
		shipHit(state)
		return nil
	}
	if aliensReachedBottom(state) {
		shipHit(state)
		return nil
	}

	checkBulletAlienCollisions(state)
	checkWaveCleared(state)
	return nil
}

// advancePause counts the hit stall down by delta.
func advancePause(state *State, delta time.Duration) {
	if state.Pause <= 0 {
		return
	}
	state.Pause -= delta
	if state.Pause < 0 {
		state.Pause = 0
	}
}

// updateBullets moves every bullet and drops the ones that left the top of
// the screen.
func updateBullets(state *State, ctx object.UpdateContext) error {
	kept := state.Bullets[:0] // reuse backing array
	for _, b := range state.Bullets {
		remove, err := b.Update(ctx)
		if err != nil {
			return err
		}
		if !remove {
			kept = append(kept, b)
		}
	}
	clear(state.Bullets[len(kept):])
	state.Bullets = kept
	return nil
}

// updateAliens moves the fleet one frame in its current direction.
func updateAliens(state *State, ctx object.UpdateContext) error {
	for _, a := range state.Aliens {
		if _, err := a.Update(ctx); err != nil {
			return err
		}
	}
	return nil
}

// updateEffects advances explosion particles. Effects run in every state so
// explosions finish playing out after the game ends.
func updateEffects(state *State) error {
	ctx := state.UpdateContext()

	kept := state.Effects[:0]
	for _, obj := range state.Effects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(state.Effects[len(kept):])
	state.Effects = kept

	state.FlushSpawned()
	return nil
}

// shipCollides reports whether any alien overlaps the ship.
func shipCollides(state *State) bool {
	ship := state.Ship.Rect()
	for _, a := range state.Aliens {
		if a.Rect().Intersects(ship) {
			return true
		}
	}
	return false
}

// aliensReachedBottom reports whether any alien touches the bottom edge.
func aliensReachedBottom(state *State) bool {
	bottom := state.Screen().Bottom()
	for _, a := range state.Aliens {
		if a.Rect().Bottom() >= bottom {
			return true
		}
	}
	return false
}

// shipHit responds to losing a ship. With lives to spare the board is reset
// and the game stalls for HitPause; on the last life the game ends.
func shipHit(state *State) {
	r := state.Ship.Rect()
	object.SpawnExplosion(r.CenterX(), r.CenterY(), shipExplosionParticles,
		shipExplosionSpeed, shipExplosionLifetime, object.ColorOf(state.Settings.ShipColor), state)
	state.Sound.PlayShipHit()

	if state.Stats.ShipsLeft > 1 {
		state.Stats.ShipsLeft--

		state.Bullets = nil
		state.Aliens = nil
		createFleet(state)
		state.Ship.Center(state.Screen())

		state.Pause = HitPause
		state.Logger.Info("ship hit", "ships_left", state.Stats.ShipsLeft, "score", state.Stats.Score)
		return
	}

	state.Stats.ShipsLeft = 0
	state.Active = false
	state.PointerVisible = true
	state.Ship.Stop()
	state.Logger.Info("game over",
		"score", state.Stats.Score,
		"level", state.Stats.Level,
		"high_score", state.Stats.HighScore,
	)
}
