// Package speaker plays cues on the local audio device.
package speaker

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/valdebt/internal/audio"
	"github.com/tomz197/valdebt/internal/loop"
)

// Speaker plays cues on the default audio device through a single mixer.
// The device is process-wide, so a process should create at most one Speaker.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	hum    *beep.Ctrl
	rng    *rand.Rand
	volume float64
	muted  bool
	humOn  bool
}

var (
	_ loop.CueSink = (*Speaker)(nil)
	_ loop.Muter   = (*Speaker)(nil)
)

// New opens the audio device. volume scales every cue, 0..1.
func New(volume float64, muted bool, seed uint64) (*Speaker, error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	sp := &Speaker{
		mixer:  &beep.Mixer{},
		rng:    rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d)),
		volume: min(max(volume, 0), 1),
		muted:  muted,
	}
	speaker.Play(sp.mixer)
	return sp, nil
}

// Cue implements loop.CueSink.
func (sp *Speaker) Cue(c loop.Cue) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.muted {
		return
	}
	s := audio.CueStreamer(c, audio.SampleRate, sp.rng)
	if s == nil {
		return
	}
	speaker.Lock()
	sp.mixer.Add(audio.NewVolume(s, sp.volume))
	speaker.Unlock()
}

// Ambient implements loop.CueSink.
func (sp *Speaker) Ambient(on bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	sp.humOn = on
	sp.applyHum()
}

// ToggleMute implements loop.Muter.
func (sp *Speaker) ToggleMute() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	sp.muted = !sp.muted
	if sp.muted {
		speaker.Lock()
		sp.mixer.Clear()
		speaker.Unlock()
		sp.hum = nil
	}
	sp.applyHum()
	return sp.muted
}

// Muted implements loop.Muter.
func (sp *Speaker) Muted() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.muted
}

// applyHum starts or pauses the drone to match humOn and muted. Caller holds mu.
func (sp *Speaker) applyHum() {
	want := sp.humOn && !sp.muted
	speaker.Lock()
	defer speaker.Unlock()

	if sp.hum == nil {
		if !want {
			return
		}
		sp.hum = &beep.Ctrl{Streamer: audio.NewVolume(audio.Hum(audio.SampleRate), sp.volume)}
		sp.mixer.Add(sp.hum)
		return
	}
	sp.hum.Paused = !want
}

// Close silences everything still playing.
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	speaker.Clear()
	sp.hum = nil
}
