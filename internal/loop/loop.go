// Package loop provides the game simulation and the frame driver around it.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tomz197/valdebt/internal/input"
)

const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Frontend is one way of showing the game and reading the player.
type Frontend interface {
	// Poll returns everything the player asked for since the previous frame.
	Poll() input.Intent
	// Present shows s. An error stops the loop.
	Present(s State) error
}

// Driver owns one game: its state, its simulation and its audio.
type Driver struct {
	Sim    *Sim
	State  State
	Audio  CueSink
	Width  float64 // Logical playfield size passed to Update
	Height float64
	Log    *log.Logger

	runID    uuid.UUID
	runStart time.Time
}

// NewDriver creates a driver on the title screen.
func NewDriver(sim *Sim, audio CueSink, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Driver{
		Sim:    sim,
		State:  NewState(sim.Scores),
		Audio:  audio,
		Width:  FieldWidth,
		Height: FieldHeight,
		Log:    logger,
	}
	if m, ok := audio.(Muter); ok {
		d.State.Muted = m.Muted()
	}
	return d
}

// RunID identifies the current or most recent run; zero before the first.
func (d *Driver) RunID() uuid.UUID {
	return d.runID
}

// Tick applies one frame of player intent and advances the simulation.
// It reports whether the player asked to quit.
func (d *Driver) Tick(in input.Intent) (quit bool) {
	if in.Quit {
		return true
	}

	if in.Mute {
		d.toggleMute()
	}

	switch {
	case in.HasX:
		d.State = ApplyIntent(d.State, in.X)
	case in.Steer != 0:
		d.State = ApplyIntent(d.State, d.State.PlayerX+float64(in.Steer)*SteerStep)
	}

	if in.Start && d.State.Status != StatusPlaying {
		d.startRun()
	}

	prev := d.State.Status
	d.State = d.Sim.Update(d.State, d.Width, d.Height)

	for _, c := range d.State.Cues {
		if d.Audio != nil {
			d.Audio.Cue(c)
		}
		if c == CueBullMarket {
			d.Log.Debug("bull market", "run", d.runID, "score", d.State.Score)
		}
	}

	if prev == StatusPlaying && d.State.Status == StatusGameOver {
		d.endRun()
	}
	return false
}

func (d *Driver) toggleMute() {
	if m, ok := d.Audio.(Muter); ok {
		d.State.Muted = m.ToggleMute()
	} else {
		d.State.Muted = !d.State.Muted
	}
	d.Log.Debug("mute toggled", "muted", d.State.Muted)
}

func (d *Driver) startRun() {
	// Another session may have raised the stored best since this one loaded it.
	if d.Sim.Scores != nil {
		d.State.HighScore = max(d.State.HighScore, d.Sim.Scores.Load())
	}
	d.State = StartRun(d.State, d.Sim.Spawner)
	d.runID = uuid.New()
	d.runStart = time.Now()
	if d.Audio != nil {
		d.Audio.Ambient(true)
	}
	d.Log.Info("run started", "run", d.runID, "high_score", d.State.HighScore)
}

func (d *Driver) endRun() {
	if d.Audio != nil {
		d.Audio.Ambient(false)
	}
	d.Log.Info("run ended",
		"run", d.runID,
		"score", d.State.Score,
		"high_score", d.State.HighScore,
		"new_high", d.State.NewHighScore,
		"frames", d.State.Frame,
		"duration", time.Since(d.runStart).Round(time.Second),
	)
}

// Run drives d with the standard Input → Update → Draw cycle at TargetFPS
// until the player quits, ctx is cancelled or the frontend fails.
func Run(ctx context.Context, d *Driver, fe Frontend) error {
	defer func() {
		if d.Audio != nil {
			d.Audio.Ambient(false)
		}
	}()

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// ===== INPUT + UPDATE PHASE =====
		if d.Tick(fe.Poll()) {
			return nil
		}

		// ===== DRAW PHASE =====
		if err := fe.Present(d.State); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}
}
