package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/alien-invasion/internal/audio"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/object"
	"github.com/tomz197/alien-invasion/internal/physics"
)

// State holds everything the game owns. It is only touched from the loop
// goroutine.
type State struct {
	Settings   *config.Settings
	Stats      *GameStats
	Ship       *object.Ship
	Bullets    []*object.Bullet
	Aliens     []*object.Alien
	Effects    []object.Object // Explosion particles; visual only
	toSpawn    []object.Object // Effects to add after the current update
	PlayButton *object.Button

	Active         bool          // Simulation runs only while active
	Pause          time.Duration // Remaining stall after losing a ship
	PointerVisible bool          // Mouse reporting wanted (play button clickable)
	GamesPlayed    int
	Running        bool // Loop running
	Delta          time.Duration

	Sound  audio.Player
	Logger *log.Logger
}

// NewState creates an inactive game with the first fleet already in place,
// waiting for the play button.
func NewState(settings *config.Settings) *State {
	if settings == nil {
		settings = config.NewSettings()
	}
	s := &State{
		Settings:       settings,
		Stats:          NewGameStats(settings.ShipLimit),
		Ship:           object.NewShip(settings),
		PlayButton:     object.NewPlayButton(object.ScreenRect(settings)),
		PointerVisible: true,
		Running:        true,
		Sound:          audio.Nop{},
		Logger:         log.New(io.Discard),
	}
	createFleet(s)
	return s
}

// Screen returns the logical playfield.
func (s *State) Screen() physics.Rect {
	return object.ScreenRect(s.Settings)
}

// Paused reports whether the post-hit stall is in effect.
func (s *State) Paused() bool {
	return s.Pause > 0
}

// Spawn queues an effect to be added after the current update cycle.
// Implements object.Spawner interface.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued effects and clears the queue.
func (s *State) FlushSpawned() {
	s.Effects = append(s.Effects, s.toSpawn...)
	clear(s.toSpawn)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:    s.Delta,
		Settings: s.Settings,
		Screen:   s.Screen(),
		Spawner:  s,
	}
}
