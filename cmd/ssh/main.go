package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/tomz197/valdebt/internal/audio"
	"github.com/tomz197/valdebt/internal/config"
	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/locale"
	"github.com/tomz197/valdebt/internal/loop"
	"github.com/tomz197/valdebt/internal/loop/client"
	"github.com/tomz197/valdebt/internal/score"
)

// shutdownGrace is how long connected players get to finish before the server stops.
const shutdownGrace = 15 * time.Second

func main() {
	settings, err := config.Load()
	logger := config.NewLogger(os.Stderr, "ssh", settings.LogLevel)
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}

	host, port, hostKeyPath := settings.SSH.Host, settings.SSH.Port, settings.SSH.HostKey
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "workingDir", workingDir, "scores", settings.Scores)

	h := &handler{
		settings: settings,
		store:    score.NewFileStore(settings.Scores, logger.With("component", "scores")),
		log:      logger,
		sessions: newSessions(),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.DebugLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Notify players and wait for them to disconnect
	logger.Info("Notifying connected players about shutdown...", "players", h.sessions.len())
	if !h.sessions.shutdown(shutdownGrace) {
		logger.Warn("players still connected after grace period", "players", h.sessions.len())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// handler runs one independent game per SSH session.
type handler struct {
	settings config.Settings
	store    score.Store
	log      *log.Logger
	sessions *sessions
}

// middleware handles SSH sessions and runs the game client.
func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id := uuid.New()
		logger := h.log.With("session", id.String(), "user", sess.User())
		logger.Info("New game session", "terminal", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		scores := score.For(h.store, sess.User())
		sim := loop.NewSim(h.settings.GameSeed()^uint64(id.ID()), scores, logger)
		// The speaker is server-side, so remote players get silence.
		driver := loop.NewDriver(sim, audio.NewNull(h.settings.Audio.Mute), logger)

		c := client.New(driver, bufio.NewReader(sess), sess, client.Options{
			TermSizeFunc: sizeTracker.getSize,
			Labels:       sessionLabels(sess.Environ(), h.settings.Locale),
			Logger:       logger,
		})

		if !h.sessions.add(id, c) {
			c.Close()
			logger.Info("Refusing session during shutdown")
			fmt.Fprintln(sess, "The server is shutting down. Please reconnect in a moment.")
			return
		}
		defer h.sessions.remove(id)

		if err := c.Run(sess.Context()); err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("Session ended", "high_score", scores.Load())
		next(sess)
	}
}

// sessionLabels picks the player's language from LANG or LC_ALL when their
// client forwards it, falling back to the server locale.
func sessionLabels(environ []string, fallback string) locale.Resolver {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || (key != "LC_ALL" && key != "LANG") {
			continue
		}
		if t, err := locale.For(value); err == nil {
			return t
		}
	}
	if t, err := locale.For(fallback); err == nil {
		return t
	}
	t, _ := locale.For(locale.Default)
	return t
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
