package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/tomz197/valdebt/internal/config"
	"github.com/tomz197/valdebt/internal/score"
)

// Leaderboard sizes
const (
	pageEntries = 10
	maxEntries  = 100
)

//go:embed index.html
var htmlPage string

var pageTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(htmlPage))

func main() {
	settings, err := config.Load()
	logger := config.NewLogger(os.Stderr, "web", settings.LogLevel)
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}

	s := &server{
		sshHost: settings.SSH.DisplayHost,
		sshPort: settings.SSH.Port,
		store:   score.NewFileStore(settings.Scores, logger),
		log:     logger,
	}

	addr := net.JoinHostPort(settings.Web.Host, settings.Web.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting web server", "url", "http://"+addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// server serves the landing page and the leaderboard API.
type server struct {
	sshHost string
	sshPort string
	store   score.Store
	log     *log.Logger
}

func (s *server) routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.index).Methods(http.MethodGet)
	r.HandleFunc("/api/scores", s.scores).Methods(http.MethodGet)
	r.HandleFunc("/api/scores/{player}", s.playerScore).Methods(http.MethodGet)
	return r
}

// pageData feeds index.html.
type pageData struct {
	SSHHost     string
	SSHPort     string
	Leaderboard []score.Entry
}

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{
		SSHHost:     s.sshHost,
		SSHPort:     s.sshPort,
		Leaderboard: s.store.Top(pageEntries),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.Error("failed to render page", "err", err)
	}
}

// scores returns the top entries; ?n= picks how many.
func (s *server) scores(w http.ResponseWriter, r *http.Request) {
	n := pageEntries
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 1 {
			http.Error(w, "n must be a positive integer", http.StatusBadRequest)
			return
		}
		n = min(v, maxEntries)
	}
	entries := s.store.Top(n)
	if entries == nil {
		entries = []score.Entry{}
	}
	s.writeJSON(w, entries)
}

func (s *server) playerScore(w http.ResponseWriter, r *http.Request) {
	player := mux.Vars(r)["player"]
	s.writeJSON(w, score.Entry{Player: player, Score: s.store.Load(player)})
}

func (s *server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", "err", err)
	}
}
