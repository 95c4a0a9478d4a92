package score

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "scores.yaml"), nil),
	}
}

func TestSaveThenLoad(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if got := store.Load("alice"); got != 0 {
				t.Errorf("empty Load = %d, want 0", got)
			}
			if err := store.Save("alice", 4200); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if got := store.Load("alice"); got != 4200 {
				t.Errorf("Load = %d, want 4200", got)
			}
			if got := store.Load("bob"); got != 0 {
				t.Errorf("other player Load = %d, want 0", got)
			}
		})
	}
}

func TestSaveKeepsBestAcrossBindings(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Save("alice", 100); err != nil {
				t.Fatal(err)
			}
			first, second := For(store, "alice"), For(store, "alice")

			if err := second.Save(500); err != nil {
				t.Fatal(err)
			}
			if err := first.Save(200); err != nil {
				t.Fatal(err)
			}
			if got := store.Load("alice"); got != 500 {
				t.Errorf("stored = %d, want 500", got)
			}
			if got := store.Top(1); len(got) != 1 || got[0].Score != 500 {
				t.Errorf("Top(1) = %v, want alice at 500", got)
			}
		})
	}
}

func TestSaveRejectsEmptyPlayer(t *testing.T) {
	for name, store := range stores(t) {
		if err := store.Save("", 10); !errors.Is(err, ErrEmptyPlayer) {
			t.Errorf("%s: Save(\"\") error = %v, want ErrEmptyPlayer", name, err)
		}
	}
}

func TestTopOrdering(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for player, s := range map[string]int{"carol": 300, "alice": 900, "bob": 300, "dave": 50} {
				if err := store.Save(player, s); err != nil {
					t.Fatal(err)
				}
			}
			want := []Entry{{"alice", 900}, {"bob", 300}, {"carol", 300}}
			if got := store.Top(3); !reflect.DeepEqual(got, want) {
				t.Errorf("Top(3) = %v, want %v", got, want)
			}
			if got := store.Top(-1); len(got) != 4 {
				t.Errorf("Top(-1) returned %d entries, want all 4", len(got))
			}
		})
	}
}

func TestFileStoreSharedBetweenInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := NewFileStore(path, nil).Save("alice", 700); err != nil {
		t.Fatal(err)
	}
	if got := NewFileStore(path, nil).Load("alice"); got != 700 {
		t.Errorf("second instance Load = %d, want 700", got)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := os.WriteFile(path, []byte("scores: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path, nil)
	if got := store.Load("alice"); got != 0 {
		t.Errorf("corrupt Load = %d, want 0", got)
	}
	if err := store.Save("alice", 10); err != nil {
		t.Fatalf("Save over corrupt file: %v", err)
	}
	if got := store.Load("alice"); got != 10 {
		t.Errorf("Load after repair = %d, want 10", got)
	}
}

func TestNegativeStoredScoreLoadsAsZero(t *testing.T) {
	m := NewMemoryStore()
	m.Save("alice", -5)
	if got := m.Load("alice"); got != 0 {
		t.Errorf("Load = %d, want 0", got)
	}
}

func TestBound(t *testing.T) {
	m := NewMemoryStore()
	b := For(m, "  ")
	if b.Player() != DefaultPlayer {
		t.Errorf("Player() = %q, want %q", b.Player(), DefaultPlayer)
	}
	if err := b.Save(1500); err != nil {
		t.Fatal(err)
	}
	if got := b.Load(); got != 1500 {
		t.Errorf("Load = %d, want 1500", got)
	}
	if got := m.Load(DefaultPlayer); got != 1500 {
		t.Errorf("store Load = %d, want 1500", got)
	}
}
