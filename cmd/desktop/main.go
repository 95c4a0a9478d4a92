package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/valdebt/internal/audio"
	"github.com/tomz197/valdebt/internal/audio/speaker"
	"github.com/tomz197/valdebt/internal/config"
	"github.com/tomz197/valdebt/internal/input"
	"github.com/tomz197/valdebt/internal/locale"
	"github.com/tomz197/valdebt/internal/loop"
	"github.com/tomz197/valdebt/internal/render"
	"github.com/tomz197/valdebt/internal/score"
)

var langFlag = flag.String("lang", "", "Label language, overrides VALDEBT_LOCALE")

// game adapts the frame driver to ebiten's Update/Draw cycle.
type game struct {
	driver  *loop.Driver
	labels  locale.Resolver
	surface surface
	lastX   int
}

func (g *game) Update() error {
	if g.driver.Tick(g.poll()) {
		return ebiten.Termination
	}
	return nil
}

// poll reads the keyboard and pointer. The cursor only moves the player
// when it actually moved, so keyboard steering is not overridden.
func (g *game) poll() input.Intent {
	var in input.Intent

	if x, _ := ebiten.CursorPosition(); x != g.lastX {
		g.lastX = x
		in.X = float64(x) / loop.FieldWidth
		in.HasX = true
	}

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	switch {
	case left && !right:
		in.Steer = -1
	case right && !left:
		in.Steer = 1
	}

	in.Start = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Mute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Sky)
	g.surface.dst = screen
	render.Frame(&g.surface, g.driver.State, loop.FieldWidth, loop.FieldHeight, g.labels)
}

func (g *game) Layout(_, _ int) (int, int) {
	return loop.FieldWidth, loop.FieldHeight
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "desktop error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if *langFlag != "" {
		settings.Locale = *langFlag
	}
	logger := config.NewLogger(os.Stderr, "desktop", settings.LogLevel)

	labels, err := locale.For(settings.Locale)
	if err != nil {
		return err
	}

	seed := settings.GameSeed()
	scores := score.For(score.NewFileStore(settings.Scores, logger), config.GetEnv("USER", score.DefaultPlayer))
	sim := loop.NewSim(seed, scores, logger)

	var sink loop.CueSink
	sp, err := speaker.New(settings.Audio.Volume, settings.Audio.Mute, seed)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		sink = audio.NewNull(settings.Audio.Mute)
	} else {
		defer sp.Close()
		sink = sp
	}

	g := &game{
		driver: loop.NewDriver(sim, sink, logger),
		labels: labels,
		lastX:  -1,
	}

	ebiten.SetWindowSize(loop.FieldWidth, loop.FieldHeight)
	ebiten.SetWindowTitle(labels.Label("title"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(loop.TargetFPS)

	logger.Info("starting", "player", scores.Player(), "seed", seed, "locale", settings.Locale)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
