// Package input turns terminal events into the discrete game events the
// frame loop reacts to.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Kind identifies what happened.
type Kind int

const (
	KindKeyDown Kind = iota
	KindKeyUp
	KindClick
	KindQuit
	KindResize
)

// Key is a game key. Several terminal keys can map to the same Key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyPlay
)

// Event is a single input event for the current frame. X and Y are the
// 0-based terminal cell of a click.
type Event struct {
	Kind Kind
	Key  Key
	X, Y int
}

// EventSource produces terminal events. tcell.Screen satisfies it.
type EventSource interface {
	PollEvent() tcell.Event
}

// Stream delivers terminal events via a channel and tracks which movement
// keys are held. Terminals report presses and auto-repeats but no releases,
// so a movement key counts as held until hold has passed since its last
// event. Fire and play produce a key-down for every terminal event.
type Stream struct {
	ch        chan tcell.Event
	hold      time.Duration
	held      map[Key]time.Time
	mouseDown bool
	closed    bool
	now       func() time.Time
}

func newStream(hold time.Duration) *Stream {
	return &Stream{
		ch:   make(chan tcell.Event, 128),
		hold: hold,
		held: make(map[Key]time.Time),
		now:  time.Now,
	}
}

// StartStream spawns a goroutine that polls src and sends events to the
// stream. The goroutine ends when src returns nil, which tcell does once the
// screen is finalized.
func StartStream(src EventSource, hold time.Duration) *Stream {
	s := newStream(hold)
	go func() {
		for {
			ev := src.PollEvent()
			if ev == nil {
				close(s.ch)
				return
			}
			s.ch <- ev
		}
	}()
	return s
}

// Read drains all pending terminal events without blocking and returns the
// game events they produce, followed by key-up events for keys whose hold
// expired. A closed source yields a quit event.
func (s *Stream) Read() []Event {
	now := s.now()
	var events []Event

drain:
	for !s.closed {
		select {
		case ev, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			events = s.translate(ev, now, events)
		default:
			break drain
		}
	}

	if s.closed {
		events = append(events, Event{Kind: KindQuit})
	}

	for key, last := range s.held {
		if now.Sub(last) >= s.hold {
			delete(s.held, key)
			events = append(events, Event{Kind: KindKeyUp, Key: key})
		}
	}

	return events
}

// Reset forgets held keys without emitting key-up events.
func (s *Stream) Reset() {
	clear(s.held)
	s.mouseDown = false
}

// translate appends the game events for one terminal event.
func (s *Stream) translate(ev tcell.Event, now time.Time, events []Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return append(events, Event{Kind: KindQuit})
		}
		key := mapKey(ev)
		switch key {
		case KeyNone:
			return events
		case KeyFire, KeyPlay:
			// Every press counts; these keys have no held state
			return append(events, Event{Kind: KindKeyDown, Key: key})
		}
		// Auto-repeat refreshes the hold without a second key-down
		_, wasHeld := s.held[key]
		s.held[key] = now
		if wasHeld {
			return events
		}
		return append(events, Event{Kind: KindKeyDown, Key: key})

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		pressed := down && !s.mouseDown
		s.mouseDown = down
		if !pressed {
			return events
		}
		x, y := ev.Position()
		return append(events, Event{Kind: KindClick, X: x, Y: y})

	case *tcell.EventResize:
		return append(events, Event{Kind: KindResize})
	}
	return events
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func mapKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyPlay
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return KeyLeft
		case 'd', 'D', 'l':
			return KeyRight
		case ' ':
			return KeyFire
		case 'p', 'P':
			return KeyPlay
		}
	}
	return KeyNone
}
