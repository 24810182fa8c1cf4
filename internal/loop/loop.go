// Package loop runs the game: a fixed-rate Input → Update → Draw cycle over
// the fleet, the ship and its bullets.
package loop

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/alien-invasion/internal/audio"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/input"
	"github.com/tomz197/alien-invasion/internal/object"
)

// Screen is the terminal the loop draws to and reads from. tcell.Screen
// satisfies it.
type Screen interface {
	draw.Surface
	input.EventSource
	Show()
	Sync()
	Clear()
	HideCursor()
	EnableMouse(...tcell.MouseFlags)
	DisableMouse()
}

var _ Screen = (tcell.Screen)(nil)

// Options configures Run. Zero values fall back to defaults.
type Options struct {
	Settings *config.Settings
	Logger   *log.Logger
	Sound    audio.Player
	KeyHold  time.Duration
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the screen stops delivering events or ctx
// is done.
func Run(ctx context.Context, screen Screen, opts Options) error {
	state := NewState(opts.Settings)
	if opts.Logger != nil {
		state.Logger = opts.Logger
	}
	if opts.Sound != nil {
		state.Sound = opts.Sound
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = config.DefaultKeyHold
	}

	stream := input.StartStream(screen, opts.KeyHold)

	screen.HideCursor()
	screen.Clear()
	screen.EnableMouse()
	pointerVisible := true

	// Game uses fixed logical resolution
	termWidth, termHeight := screen.Size()
	canvas := draw.NewScaledCanvas(termWidth, termHeight,
		float64(state.Settings.ScreenWidth), float64(state.Settings.ScreenHeight))

	state.Logger.Debug("loop started", "term_width", termWidth, "term_height", termHeight)

	lastTime := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		wasActive := state.Active
		events := stream.Read()
		for _, ev := range events {
			if ev.Kind == input.KindResize {
				screen.Sync()
			}
		}
		handleEvents(state, events, canvas)
		if !state.Running {
			break
		}
		if state.Active && !wasActive {
			stream.Reset()
		}
		if state.PointerVisible != pointerVisible {
			setPointer(screen, state.PointerVisible)
			pointerVisible = state.PointerVisible
		}

		// ===== UPDATE PHASE =====
		termWidth, termHeight = screen.Size()
		canvas.Resize(termWidth, termHeight)

		advancePause(state, state.Delta)
		if err := Step(state); err != nil {
			return err
		}
		if err := updateEffects(state); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, canvas); err != nil {
			return err
		}
		canvas.Render(screen)
		screen.Show()

		// ===== FRAME TIMING =====
		wait := targetFrameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			state.Logger.Info("loop cancelled", "reason", context.Cause(ctx))
			return nil
		case <-timer.C:
		}
	}

	state.Logger.Info("quit", "high_score", state.Stats.HighScore, "games", state.GamesPlayed)
	return nil
}

// setPointer turns mouse reporting on or off, which is how a terminal game
// shows or hides its pointer.
func setPointer(screen Screen, visible bool) {
	if visible {
		screen.EnableMouse()
	} else {
		screen.DisableMouse()
	}
}

// drawFrame clears the canvas and draws all objects and the UI overlay.
func drawFrame(state *State, canvas *draw.Canvas) error {
	canvas.Clear(background(state))

	ctx := object.DrawContext{
		Canvas:   canvas,
		Settings: state.Settings,
	}

	for _, b := range state.Bullets {
		if err := b.Draw(ctx); err != nil {
			return err
		}
	}
	if err := state.Ship.Draw(ctx); err != nil {
		return err
	}
	for _, a := range state.Aliens {
		if err := a.Draw(ctx); err != nil {
			return err
		}
	}
	for _, e := range state.Effects {
		if err := e.Draw(ctx); err != nil {
			return err
		}
	}

	return drawUI(state, ctx)
}
