package score

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// document is the on-disk layout.
type document struct {
	Scores map[string]int `yaml:"scores"`
}

// FileStore keeps scores in a YAML file. The file is re-read on every access
// so several processes (the SSH host and the web page) can share it.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  *log.Logger
}

// NewFileStore creates a store at path. The file need not exist yet.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, log: logger}
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load(player string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		f.log.Warn("failed to read scores", "path", f.path, "err", err)
		return 0
	}
	return max(0, scores[player])
}

func (f *FileStore) Save(player string, score int) error {
	if player == "" {
		return ErrEmptyPlayer
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		// A corrupt file is overwritten.
		f.log.Warn("discarding unreadable scores", "path", f.path, "err", err)
		scores = make(map[string]int)
	}
	if prev, ok := scores[player]; ok && prev >= score {
		return nil
	}
	scores[player] = score
	return f.write(scores)
}

func (f *FileStore) Top(n int) []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		f.log.Warn("failed to read scores", "path", f.path, "err", err)
		return nil
	}
	return top(scores, n)
}

// read returns the stored map; a missing file is an empty map.
func (f *FileStore) read() (map[string]int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]int), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	if doc.Scores == nil {
		doc.Scores = make(map[string]int)
	}
	return doc.Scores, nil
}

// write replaces the file atomically via a sibling temp file.
func (f *FileStore) write(scores map[string]int) error {
	data, err := yaml.Marshal(document{Scores: scores})
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".scores-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
