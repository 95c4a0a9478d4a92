package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/valdebt/internal/audio"
	"github.com/tomz197/valdebt/internal/audio/speaker"
	"github.com/tomz197/valdebt/internal/config"
	"github.com/tomz197/valdebt/internal/locale"
	"github.com/tomz197/valdebt/internal/loop"
	"github.com/tomz197/valdebt/internal/loop/client"
	"github.com/tomz197/valdebt/internal/score"
	"golang.org/x/term"
)

var (
	ansiFlag = flag.Bool("ansi", false, "Draw with raw ANSI escapes instead of tcell")
	logFlag  = flag.String("log", "", "Write logs to this file (logs are discarded otherwise)")
	langFlag = flag.String("lang", "", "Label language, overrides VALDEBT_LOCALE")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
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

	// The terminal belongs to the game, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game", settings.LogLevel)

	labels, err := locale.For(settings.Locale)
	if err != nil {
		return err
	}

	seed := settings.GameSeed()
	player := config.GetEnv("USER", score.DefaultPlayer)
	scores := score.For(score.NewFileStore(settings.Scores, logger), player)
	sim := loop.NewSim(seed, scores, logger)
	driver := loop.NewDriver(sim, openAudio(settings, seed, logger), logger)
	logger.Info("starting", "player", scores.Player(), "seed", seed, "ansi", *ansiFlag, "locale", settings.Locale)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *ansiFlag {
		return runANSI(ctx, driver, labels, logger)
	}
	return runTcell(ctx, driver, labels)
}

// openAudio opens the speaker, falling back to silence when no device is available.
func openAudio(settings config.Settings, seed uint64, logger *log.Logger) loop.CueSink {
	sp, err := speaker.New(settings.Audio.Volume, settings.Audio.Mute, seed)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return audio.NewNull(settings.Audio.Mute)
	}
	return sp
}

// runANSI plays on the raw terminal through the same client the SSH host uses.
func runANSI(ctx context.Context, driver *loop.Driver, labels locale.Resolver, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c := client.New(driver, bufio.NewReader(os.Stdin), os.Stdout, client.Options{
		Labels: labels,
		Logger: logger,
	})
	return c.Run(ctx)
}
