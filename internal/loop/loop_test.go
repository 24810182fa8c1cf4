package loop

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/alien-invasion/internal/config"
)

// fakeScreen is a Screen fed from a channel. Only PollEvent runs on another
// goroutine.
type fakeScreen struct {
	*fakeSurface
	events chan tcell.Event
	shows  int
	mouse  bool
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{
		fakeSurface: newFakeSurface(120, 40),
		events:      make(chan tcell.Event, 16),
	}
}

func (s *fakeScreen) PollEvent() tcell.Event {
	ev, ok := <-s.events
	if !ok {
		return nil
	}
	return ev
}

func (s *fakeScreen) Show()                           { s.shows++ }
func (s *fakeScreen) Sync()                           {}
func (s *fakeScreen) Clear()                          {}
func (s *fakeScreen) HideCursor()                     {}
func (s *fakeScreen) EnableMouse(...tcell.MouseFlags) { s.mouse = true }
func (s *fakeScreen) DisableMouse()                   { s.mouse = false }

// runAsync runs the loop and returns its result channel.
func runAsync(ctx context.Context, screen *fakeScreen) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, screen, Options{Settings: config.NewSettings(), KeyHold: time.Second})
	}()
	return done
}

func waitRun(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return")
	}
}

func TestRunQuitKey(t *testing.T) {
	screen := newFakeScreen()
	screen.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	waitRun(t, runAsync(context.Background(), screen))
}

func TestRunClosedScreen(t *testing.T) {
	screen := newFakeScreen()
	close(screen.events)

	waitRun(t, runAsync(context.Background(), screen))
}

func TestRunContextCancel(t *testing.T) {
	screen := newFakeScreen()
	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, screen)

	time.Sleep(50 * time.Millisecond)
	cancel()

	waitRun(t, done)
	if screen.shows == 0 {
		t.Error("no frame was shown")
	}
}

func TestRunStartsGameAndHidesPointer(t *testing.T) {
	screen := newFakeScreen()
	screen.events <- tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, screen)

	time.Sleep(100 * time.Millisecond)
	cancel()
	waitRun(t, done)

	if screen.mouse {
		t.Error("mouse reporting still on during play")
	}
}
