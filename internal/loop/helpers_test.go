package loop

import (
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/object"
)

// recordingSound counts the effects played.
type recordingSound struct {
	fire, explosion, shipHit, levelUp int
}

func (r *recordingSound) PlayFire()      { r.fire++ }
func (r *recordingSound) PlayExplosion() { r.explosion++ }
func (r *recordingSound) PlayShipHit()   { r.shipHit++ }
func (r *recordingSound) PlayLevelUp()   { r.levelUp++ }

// activeState returns a freshly started game with recorded sound.
func activeState() (*State, *recordingSound) {
	state := NewState(config.NewSettings())
	sound := &recordingSound{}
	state.Sound = sound
	startGame(state)
	return state, sound
}

// alienPositions snapshots where every alien is.
func alienPositions(aliens []*object.Alien) [][2]float64 {
	out := make([][2]float64, len(aliens))
	for i, a := range aliens {
		out[i] = [2]float64{a.X, a.Y}
	}
	return out
}
