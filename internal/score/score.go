// Package score persists per-player high scores.
package score

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/tomz197/valdebt/internal/loop"
)

// ErrEmptyPlayer is returned when saving without a player name.
var ErrEmptyPlayer = errors.New("empty player name")

// DefaultPlayer keys scores for hosts without user identities.
const DefaultPlayer = "local"

// Store reads and writes high scores keyed by player.
type Store interface {
	// Load returns the stored score, 0 when absent or unreadable.
	Load(player string) int
	// Save records score unless the player already holds a better one.
	Save(player string, score int) error
	// Top returns up to n entries, best first.
	Top(n int) []Entry
}

// Entry is one leaderboard row.
type Entry struct {
	Player string `yaml:"player" json:"player"`
	Score  int    `yaml:"score" json:"score"`
}

// Bound is a Store tied to a single player.
type Bound struct {
	store  Store
	player string
}

var _ loop.HighScores = Bound{}

// For binds store to player. Names are trimmed; an empty name maps to DefaultPlayer.
func For(store Store, player string) Bound {
	player = strings.TrimSpace(player)
	if player == "" {
		player = DefaultPlayer
	}
	return Bound{store: store, player: player}
}

// Player returns the bound player name.
func (b Bound) Player() string {
	return b.player
}

// Load implements loop.HighScores.
func (b Bound) Load() int {
	return b.store.Load(b.player)
}

// Save implements loop.HighScores.
func (b Bound) Save(score int) error {
	return b.store.Save(b.player, score)
}

// MemoryStore keeps scores in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

func (m *MemoryStore) Load(player string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return max(0, m.scores[player])
}

func (m *MemoryStore) Save(player string, score int) error {
	if player == "" {
		return ErrEmptyPlayer
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.scores[player]; ok && prev >= score {
		return nil
	}
	m.scores[player] = score
	return nil
}

func (m *MemoryStore) Top(n int) []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return top(m.scores, n)
}

// top sorts scores best first, ties by name, and keeps at most n.
func top(scores map[string]int, n int) []Entry {
	entries := make([]Entry, 0, len(scores))
	for player, s := range scores {
		entries = append(entries, Entry{Player: player, Score: s})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Player < entries[j].Player
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
