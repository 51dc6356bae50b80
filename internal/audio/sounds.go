package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(48000)

// EatTone is the short rising chirp played when food is eaten.
var EatTone = Tone{
	Wave:     WaveSine,
	Freq:     Ramp{From: 600, To: 900, Over: 100 * time.Millisecond},
	Gain:     Ramp{From: 0.3, To: 0.01, Over: 150 * time.Millisecond},
	Duration: 150 * time.Millisecond,
}

// GameOverTone is the falling buzz played when the snake dies.
var GameOverTone = Tone{
	Wave:     WaveSaw,
	Freq:     Ramp{From: 400, To: 100, Over: 500 * time.Millisecond},
	Gain:     Ramp{From: 0.3, To: 0.01, Over: 500 * time.Millisecond},
	Duration: 500 * time.Millisecond,
}

// Music timing: each note sounds for MusicNoteLength and a new note starts
// every MusicStep.
const (
	MusicNoteLength = 200 * time.Millisecond
	MusicStep       = 250 * time.Millisecond
	musicGain       = 0.1
)

// MusicNotes is the looped synthwave bass line: C3 E3 G3 C4 G3 E3 D3 F3.
var MusicNotes = []float64{130.81, 164.81, 196.00, 261.63, 196.00, 164.81, 146.83, 174.61}

// musicNote returns the tone for one step of the bass line.
func musicNote(freq float64) Tone {
	return Tone{
		Wave:     WaveTriangle,
		Freq:     Hold(freq),
		Gain:     Ramp{From: musicGain, To: 0.01, Over: MusicNoteLength},
		Duration: MusicNoteLength,
	}
}

// musicStreamer loops MusicNotes forever, one note per MusicStep.
type musicStreamer struct {
	rate  beep.SampleRate
	index int
	cur   beep.Streamer
}

// NewMusic creates an endless music streamer starting at the first note.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	m := &musicStreamer{rate: rate}
	m.cur = m.step()
	return m
}

// step builds the current note followed by the gap before the next one.
func (m *musicStreamer) step() beep.Streamer {
	note := NewTone(musicNote(MusicNotes[m.index]), m.rate)
	gap := m.rate.N(MusicStep) - m.rate.N(MusicNoteLength)
	return beep.Seq(note, beep.Silence(gap))
}

func (m *musicStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		got, more := m.cur.Stream(samples[n:])
		n += got
		if !more || got == 0 {
			m.index = (m.index + 1) % len(MusicNotes)
			m.cur = m.step()
		}
	}
	return n, true
}

func (m *musicStreamer) Err() error { return nil }
