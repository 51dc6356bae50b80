package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer, max int) (samples [][2]float64, ended bool) {
	buf := make([][2]float64, 512)
	for len(samples) < max {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok {
			return samples, true
		}
	}
	return samples, false
}

func TestRampAt(t *testing.T) {
	r := Ramp{From: 600, To: 900, Over: 100 * time.Millisecond}

	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 600},
		{50 * time.Millisecond, 600 * math.Sqrt(1.5)},
		{100 * time.Millisecond, 900},
		{150 * time.Millisecond, 900},
	}
	for _, tt := range tests {
		if got := r.At(tt.at); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("At(%v) = %f, expected %f", tt.at, got, tt.want)
		}
	}

	if got := Hold(130.81).At(time.Second); got != 130.81 {
		t.Errorf("Hold.At() = %f", got)
	}
}

func TestWaveRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		for i := range 100 {
			v := w.sample(float64(i) / 100)
			if v < -1 || v > 1 {
				t.Fatalf("wave %d at phase %d = %f out of range", w, i, v)
			}
		}
	}
}

func TestToneLengthAndGain(t *testing.T) {
	tests := []struct {
		name string
		tone Tone
	}{
		{"eat", EatTone},
		{"game over", GameOverTone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, ended := drain(NewTone(tt.tone, sampleRate), sampleRate.N(time.Second))
			if !ended {
				t.Fatal("tone should end")
			}
			if want := sampleRate.N(tt.tone.Duration); len(samples) != want {
				t.Errorf("samples = %d, expected %d", len(samples), want)
			}

			peak := tt.tone.Gain.From
			for i, s := range samples {
				if math.Abs(s[0]) > peak+1e-9 || s[0] != s[1] {
					t.Fatalf("sample %d = %v exceeds gain %f or is not mono", i, s, peak)
				}
			}

			// The tail is close to the final gain.
			last := samples[len(samples)-1]
			if math.Abs(last[0]) > 0.02 {
				t.Errorf("last sample %f, expected a faded tone", last[0])
			}
		})
	}
}

func TestMusicLoopsForever(t *testing.T) {
	step := sampleRate.N(MusicStep)
	note := sampleRate.N(MusicNoteLength)

	samples, ended := drain(NewMusic(sampleRate), step*(len(MusicNotes)+2))
	if ended {
		t.Fatal("music should never end")
	}

	for n := range len(MusicNotes) + 1 {
		start := n * step
		for i := start + note; i < start+step; i++ {
			if samples[i][0] != 0 {
				t.Fatalf("step %d: sample %d in the gap is %f", n, i, samples[i][0])
			}
		}

		loud := false
		for i := start; i < start+note; i++ {
			if samples[i][0] != 0 {
				loud = true
				break
			}
		}
		if !loud {
			t.Errorf("step %d: note is silent", n)
		}
	}
}
