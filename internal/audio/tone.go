// Package audio synthesises the game's sound cues and music with beep and
// plays them through a shared mixer.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// sample returns the wave value for a phase in [0, 1).
func (w Wave) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Ramp is an exponential glide from From to To over Over, holding To
// afterwards. A zero Over holds From.
type Ramp struct {
	From float64
	To   float64
	Over time.Duration
}

// Hold returns a ramp that stays at v.
func Hold(v float64) Ramp {
	return Ramp{From: v, To: v}
}

// At returns the ramp value t after the start.
func (r Ramp) At(t time.Duration) float64 {
	if r.Over <= 0 || r.From <= 0 || r.To <= 0 {
		return r.From
	}
	if t >= r.Over {
		return r.To
	}
	frac := float64(t) / float64(r.Over)
	return r.From * math.Pow(r.To/r.From, frac)
}

// Tone describes one oscillator note with frequency and gain automation.
type Tone struct {
	Wave     Wave
	Freq     Ramp
	Gain     Ramp
	Duration time.Duration
}

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewTone creates a finite streamer for t.
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		tone:  t,
		rate:  rate,
		total: rate.N(t.Duration),
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		at := s.rate.D(s.position)
		val := s.tone.Wave.sample(s.phase) * s.tone.Gain.At(at)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.tone.Freq.At(at) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// newVolume scales a stream linearly. A non-positive vol is silent, since
// effects.Volume works in log2 steps.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
