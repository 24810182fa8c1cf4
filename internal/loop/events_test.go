package loop

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/input"
)

func testCanvas() *draw.Canvas {
	return draw.NewScaledCanvas(120, 40, 1200, 800)
}

func TestMovementKeys(t *testing.T) {
	state, _ := activeState()
	canvas := testCanvas()

	handleEvents(state, []input.Event{
		{Kind: input.KindKeyDown, Key: input.KeyRight},
		{Kind: input.KindKeyDown, Key: input.KeyLeft},
	}, canvas)
	if !state.Ship.MovingRight || !state.Ship.MovingLeft {
		t.Fatalf("flags = right:%v left:%v, want both set", state.Ship.MovingRight, state.Ship.MovingLeft)
	}

	handleEvents(state, []input.Event{{Kind: input.KindKeyUp, Key: input.KeyRight}}, canvas)
	if state.Ship.MovingRight || !state.Ship.MovingLeft {
		t.Errorf("flags = right:%v left:%v, want only left", state.Ship.MovingRight, state.Ship.MovingLeft)
	}
}

func TestFireRespectsBulletLimit(t *testing.T) {
	state, sound := activeState()

	for i := 0; i < 3; i++ {
		if !fireBullet(state) {
			t.Fatalf("shot %d refused", i+1)
		}
	}
	if fireBullet(state) {
		t.Error("fourth bullet fired, limit is 3")
	}
	if len(state.Bullets) != 3 {
		t.Errorf("bullets = %d, want 3", len(state.Bullets))
	}
	if sound.fire != 3 {
		t.Errorf("fire sound played %d times, want 3", sound.fire)
	}

	b := state.Bullets[0]
	if b.X != state.Ship.Rect().CenterX()-1.5 || b.Y != state.Ship.Y {
		t.Errorf("bullet at (%v,%v), want on top of the ship", b.X, b.Y)
	}
}

func TestFireIgnoredWhileInactive(t *testing.T) {
	state := NewState(config.NewSettings())

	handleEvents(state, []input.Event{{Kind: input.KindKeyDown, Key: input.KeyFire}}, testCanvas())

	if len(state.Bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(state.Bullets))
	}
}

func TestPausedInputKeepsMovement(t *testing.T) {
	state, _ := activeState()
	state.Ship.MovingLeft = true
	state.Pause = HitPause

	handleEvents(state, []input.Event{
		{Kind: input.KindKeyDown, Key: input.KeyRight},
		{Kind: input.KindKeyDown, Key: input.KeyFire},
		{Kind: input.KindKeyUp, Key: input.KeyLeft},
	}, testCanvas())

	if !state.Ship.MovingRight {
		t.Error("movement key-down dropped during the hit pause")
	}
	if state.Ship.MovingLeft {
		t.Error("key-up dropped during the hit pause")
	}
	if len(state.Bullets) != 0 {
		t.Errorf("bullets = %d, want 0", len(state.Bullets))
	}
}

func TestKeyHeldThroughPauseMovesShip(t *testing.T) {
	state, _ := activeState()
	state.Pause = HitPause
	canvas := testCanvas()

	screen := newFakeScreen()
	stream := input.StartStream(screen, time.Second)

	// Pressed during the stall
	screen.events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	deadline := time.Now().Add(2 * time.Second)
	for !state.Ship.MovingRight {
		if time.Now().After(deadline) {
			t.Fatal("key-down never reached the state")
		}
		handleEvents(state, stream.Read(), canvas)
		time.Sleep(time.Millisecond)
	}

	advancePause(state, HitPause)
	startX := state.Ship.X

	// Auto-repeat while the key stays down
	for i := 0; i < 5; i++ {
		screen.events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
		handleEvents(state, stream.Read(), canvas)
		if err := Step(state); err != nil {
			t.Fatalf("Step() error: %v", err)
		}
	}

	if got := state.Ship.X - startX; got != 5*state.Settings.ShipSpeed {
		t.Errorf("ship moved %v px over 5 frames, want %v", got, 5*state.Settings.ShipSpeed)
	}
}

func TestPausedDropsPlayAndClick(t *testing.T) {
	state, _ := activeState()
	state.Stats.AddScore(200)
	state.Pause = HitPause

	handleEvents(state, []input.Event{
		{Kind: input.KindClick, X: 60, Y: 20},
		{Kind: input.KindKeyDown, Key: input.KeyPlay},
	}, testCanvas())

	if state.Stats.Score != 200 || state.GamesPlayed != 1 {
		t.Errorf("stall input restarted the game: score=%d games=%d", state.Stats.Score, state.GamesPlayed)
	}
}

func TestQuitStopsProcessing(t *testing.T) {
	state, _ := activeState()

	handleEvents(state, []input.Event{
		{Kind: input.KindQuit},
		{Kind: input.KindKeyDown, Key: input.KeyRight},
	}, testCanvas())

	if state.Running {
		t.Error("still running after quit")
	}
	if state.Ship.MovingRight {
		t.Error("events after quit were handled")
	}
}

func TestPlayButtonClick(t *testing.T) {
	tests := []struct {
		name       string
		col, row   int
		wantActive bool
	}{
		{name: "on button", col: 60, row: 20, wantActive: true},
		{name: "button corner", col: 50, row: 19, wantActive: true},
		{name: "left of button", col: 40, row: 20, wantActive: false},
		{name: "above button", col: 60, row: 15, wantActive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState(config.NewSettings())
			handleEvents(state, []input.Event{{Kind: input.KindClick, X: tt.col, Y: tt.row}}, testCanvas())

			if state.Active != tt.wantActive {
				t.Errorf("Active = %v, want %v", state.Active, tt.wantActive)
			}
			if tt.wantActive && state.PointerVisible {
				t.Error("pointer still visible after starting")
			}
		})
	}
}

func TestClickIgnoredWhileActive(t *testing.T) {
	state, _ := activeState()
	state.Stats.AddScore(300)

	handleEvents(state, []input.Event{{Kind: input.KindClick, X: 60, Y: 20}}, testCanvas())

	if state.Stats.Score != 300 || state.GamesPlayed != 1 {
		t.Errorf("click restarted the game: score=%d games=%d", state.Stats.Score, state.GamesPlayed)
	}
}

func TestPlayKeyRestartsAfterGameOver(t *testing.T) {
	state, _ := activeState()
	state.Stats.AddScore(1200)
	state.Settings.IncreaseSpeed()
	state.Active = false
	state.PointerVisible = true

	handleEvents(state, []input.Event{{Kind: input.KindKeyDown, Key: input.KeyPlay}}, testCanvas())

	if !state.Active {
		t.Fatal("play key did not start the game")
	}
	if state.Stats.Score != 0 || state.Stats.Level != 1 || state.Stats.ShipsLeft != 3 {
		t.Errorf("stats = %+v, want fresh game", state.Stats)
	}
	if state.Stats.HighScore != 1200 {
		t.Errorf("HighScore = %d, want 1200", state.Stats.HighScore)
	}
	if state.Settings.AlienPoints != 50 || state.Settings.FleetDirection != 1 {
		t.Errorf("dynamic settings not reset: points=%d direction=%d",
			state.Settings.AlienPoints, state.Settings.FleetDirection)
	}
	if len(state.Aliens) != 77 {
		t.Errorf("aliens = %d, want 77", len(state.Aliens))
	}
}
