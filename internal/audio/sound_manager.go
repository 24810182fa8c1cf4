// Package audio plays the game's synthesized sound effects.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound effects for game events.
type Player interface {
	PlayFire()
	PlayExplosion()
	PlayShipHit()
	PlayLevelUp()
}

// Nop is a Player that plays nothing.
type Nop struct{}

func (Nop) PlayFire()      {}
func (Nop) PlayExplosion() {}
func (Nop) PlayShipHit()   {}
func (Nop) PlayLevelUp()   {}

// SoundManager mixes effects onto the speaker. Calls made before Initialize
// succeeds are ignored.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

var _ Player = (*SoundManager)(nil)

// NewSoundManager creates a sound manager. volume is in halvings: 0 is full
// volume, -1 half, -2 a quarter.
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Volume: volume},
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Close stops all sounds and releases the audio device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayFire plays a short descending blip.
func (sm *SoundManager) PlayFire() {
	sm.play(NewSweep(sampleRate, 1200, 500, 80*time.Millisecond))
}

// PlayExplosion plays a burst of decaying noise.
func (sm *SoundManager) PlayExplosion() {
	sm.play(NewNoiseBurst(sampleRate, 180*time.Millisecond))
}

// PlayShipHit plays a low buzz.
func (sm *SoundManager) PlayShipHit() {
	sm.play(NewBuzz(sampleRate, 110, 400*time.Millisecond))
}

// PlayLevelUp plays a rising three-note arpeggio.
func (sm *SoundManager) PlayLevelUp() {
	sm.play(Arpeggio(sampleRate, []float64{523.25, 659.25, 783.99}, 90*time.Millisecond))
}

// Arpeggio plays each frequency as a sine tone of the given length, in order.
func Arpeggio(sr beep.SampleRate, freqs []float64, note time.Duration) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			continue
		}
		notes = append(notes, &effects.Volume{
			Streamer: beep.Take(sr.N(note), tone),
			Base:     2,
			Volume:   -2,
		})
	}
	if len(notes) == 0 {
		return nil
	}
	return beep.Seq(notes...)
}
