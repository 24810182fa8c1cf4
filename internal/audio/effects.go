package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Sweep is a square-ish tone gliding linearly from one frequency to another,
// with a linear fade out.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	samples  int
	phase    float64
}

// NewSweep creates a sweep lasting d.
func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)

		// Soft square: sine with a third harmonic
		s := math.Sin(2*math.Pi*g.phase) + math.Sin(6*math.Pi*g.phase)/3
		s *= 0.25 * (1 - progress)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error {
	return nil
}

// NoiseBurst is white noise with an exponential decay.
type NoiseBurst struct {
	sr      beep.SampleRate
	pos     int
	samples int
	rng     *rand.Rand
}

// NewNoiseBurst creates a noise burst lasting d.
func NewNoiseBurst(sr beep.SampleRate, d time.Duration) *NoiseBurst {
	return &NoiseBurst{
		sr:      sr,
		samples: sr.N(d),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *NoiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		envelope := math.Exp(-5 * progress)
		s := (g.rng.Float64()*2 - 1) * 0.3 * envelope

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseBurst) Err() error {
	return nil
}

// Buzz is a low tone with harmonics, faded in and out.
type Buzz struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewBuzz creates a buzz at freq lasting d.
func NewBuzz(sr beep.SampleRate, freq float64, d time.Duration) *Buzz {
	return &Buzz{sr: sr, freq: freq, samples: sr.N(d)}
}

func (g *Buzz) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		s := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		s += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		s += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in, linear fade out
		attack := math.Min(t/0.02, 1.0)
		release := 1 - float64(g.pos)/float64(g.samples)
		s *= attack * release

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Buzz) Err() error {
	return nil
}
