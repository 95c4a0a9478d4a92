// Package audio turns simulation cues into procedurally generated sound.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/tomz197/valdebt/internal/loop"
)

// SampleRate is the output rate used by every generator.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency glides exponentially from f0 to f1
// and whose gain decays exponentially from g0 to g1 over its duration.
// A zero duration streams forever at f0 and g0.
type sweep struct {
	wave     WaveType
	f0, f1   float64
	g0, g1   float64
	duration int
	position int
	phase    float64
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewSweep creates a gliding oscillator. rng is only used by WaveNoise.
func NewSweep(wave WaveType, f0, f1, g0, g1 float64, d time.Duration, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &sweep{
		wave:     wave,
		f0:       f0,
		f1:       f1,
		g0:       g0,
		g1:       g1,
		duration: rate.N(d),
		rate:     rate,
		rng:      rng,
	}
}

// glide interpolates exponentially between a and b; both must be positive.
func glide(a, b, t float64) float64 {
	if a <= 0 || b <= 0 {
		return a + (b-a)*t
	}
	return a * math.Pow(b/a, t)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.duration > 0 && s.position >= s.duration {
			return i, i > 0
		}
		t := 0.0
		if s.duration > 0 {
			t = float64(s.position) / float64(s.duration)
		}
		freq := glide(s.f0, s.f1, t)
		gain := glide(s.g0, s.g1, t)

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveTriangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}

		samples[i][0] = val * gain
		samples[i][1] = val * gain

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// filter is a one-pole low or high pass whose cutoff glides from c0 to c1.
type filter struct {
	streamer beep.Streamer
	highPass bool
	c0, c1   float64
	duration int
	position int
	rate     beep.SampleRate
	state    [2]float64
}

// NewLowPass filters s with a cutoff gliding from c0 to c1 Hz over d.
func NewLowPass(s beep.Streamer, c0, c1 float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &filter{streamer: s, c0: c0, c1: c1, duration: rate.N(d), rate: rate}
}

// NewHighPass filters s with a cutoff gliding from c0 to c1 Hz over d.
func NewHighPass(s beep.Streamer, c0, c1 float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &filter{streamer: s, highPass: true, c0: c0, c1: c1, duration: rate.N(d), rate: rate}
}

func (f *filter) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := 1.0
		if f.duration > 0 {
			t = math.Min(1, float64(f.position)/float64(f.duration))
		}
		cutoff := glide(f.c0, f.c1, t)
		a := 1 - math.Exp(-2*math.Pi*cutoff/float64(f.rate))
		for ch := range 2 {
			x := samples[i][ch]
			f.state[ch] += a * (x - f.state[ch])
			if f.highPass {
				samples[i][ch] = x - f.state[ch]
			} else {
				samples[i][ch] = f.state[ch]
			}
		}
		f.position++
	}
	return n, ok
}

func (f *filter) Err() error { return f.streamer.Err() }

// NewVolume scales s linearly; zero or less is silent.
func NewVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Coin is the rising chirp for a caught asset.
func Coin(rate beep.SampleRate) beep.Streamer {
	return NewSweep(WaveTriangle, 800, 1200, 0.1, 0.01, 200*time.Millisecond, rate, nil)
}

// Thud is the muffled burst for an ordinary liability.
func Thud(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	d := 500 * time.Millisecond
	noise := NewSweep(WaveNoise, 1, 1, 0.3, 0.01, d, rate, rng)
	return NewLowPass(noise, 400, 40, d, rate)
}

// Glass is the brittle shatter for a market crash.
func Glass(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	d := time.Second
	noise := NewSweep(WaveNoise, 1, 1, 0.4, 0.001, d, rate, rng)
	return NewHighPass(noise, 2000, 100, d, rate)
}

// Arpeggio is the rising major chord announcing a bull market.
func Arpeggio(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = NewSweep(WaveSquare, f, f, 0.06, 0.02, 80*time.Millisecond, rate, nil)
	}
	return beep.Seq(parts...)
}

// Fall is the descending sweep played when a run ends.
func Fall(rate beep.SampleRate) beep.Streamer {
	return NewSweep(WaveSine, 440, 110, 0.15, 0.005, 800*time.Millisecond, rate, nil)
}

// Hum is the endless engine drone that plays during a run.
func Hum(rate beep.SampleRate) beep.Streamer {
	body := beep.Mix(
		NewSweep(WaveTriangle, 80, 80, 1, 1, 0, rate, nil),
		NewSweep(WaveSquare, 82.4, 82.4, 1, 1, 0, rate, nil),
	)
	return NewVolume(NewLowPass(body, 350, 350, 0, rate), 0.02)
}

// CueStreamer returns the sound for a cue, or nil for an unknown cue.
func CueStreamer(c loop.Cue, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch c {
	case loop.CueAsset:
		return Coin(rate)
	case loop.CueLiability:
		return Thud(rate, rng)
	case loop.CueCrash:
		return Glass(rate, rng)
	case loop.CueBullMarket:
		return Arpeggio(rate)
	case loop.CueGameOver:
		return Fall(rate)
	default:
		return nil
	}
}
