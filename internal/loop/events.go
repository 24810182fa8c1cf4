package loop

import (
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/input"
	"github.com/tomz197/alien-invasion/internal/object"
)

// handleEvents applies one frame of input to the state. While the game is
// stalled after a hit, fire, play and clicks are dropped; movement keys still
// set the ship's flags so a key held through the stall moves the ship after
// it.
func handleEvents(state *State, events []input.Event, canvas *draw.Canvas) {
	for _, ev := range events {
		switch ev.Kind {
		case input.KindQuit:
			state.Running = false
			return
		case input.KindKeyDown:
			if state.Paused() && !isMovementKey(ev.Key) {
				continue
			}
			handleKeyDown(state, ev.Key)
		case input.KindKeyUp:
			handleKeyUp(state, ev.Key)
		case input.KindClick:
			if state.Paused() {
				continue
			}
			handleClick(state, canvas, ev.X, ev.Y)
		}
	}
}

func isMovementKey(key input.Key) bool {
	return key == input.KeyLeft || key == input.KeyRight
}

func handleKeyDown(state *State, key input.Key) {
	switch key {
	case input.KeyRight:
		state.Ship.MovingRight = true
	case input.KeyLeft:
		state.Ship.MovingLeft = true
	case input.KeyFire:
		if state.Active {
			fireBullet(state)
		}
	case input.KeyPlay:
		if !state.Active {
			startGame(state)
		}
	}
}

func handleKeyUp(state *State, key input.Key) {
	switch key {
	case input.KeyRight:
		state.Ship.MovingRight = false
	case input.KeyLeft:
		state.Ship.MovingLeft = false
	}
}

// handleClick starts a game when the play button is clicked. Clicks during
// play are ignored.
func handleClick(state *State, canvas *draw.Canvas, col, row int) {
	if state.Active {
		return
	}
	x, y := canvas.TerminalToLogical(col, row)
	if state.PlayButton.Contains(x, y) {
		startGame(state)
	}
}

// fireBullet adds a bullet at the ship unless BulletsAllowed are already in
// flight. Returns whether a bullet was fired.
func fireBullet(state *State) bool {
	if len(state.Bullets) >= state.Settings.BulletsAllowed {
		return false
	}
	state.Bullets = append(state.Bullets, object.NewBullet(state.Ship, state.Settings))
	state.Sound.PlayFire()
	return true
}
