package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// shutdowner is the part of client.Client the registry needs.
type shutdowner interface {
	Shutdown()
}

// sessions tracks live games so a server shutdown can warn every player.
type sessions struct {
	mu      sync.Mutex
	active  map[uuid.UUID]shutdowner
	wg      sync.WaitGroup
	closing bool
}

func newSessions() *sessions {
	return &sessions{active: make(map[uuid.UUID]shutdowner)}
}

// add registers c. It refuses once shutdown has started.
func (s *sessions) add(id uuid.UUID, c shutdowner) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.active[id] = c
	s.wg.Add(1)
	return true
}

func (s *sessions) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.active[id]; ok {
		delete(s.active, id)
		s.wg.Done()
	}
}

func (s *sessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// shutdown tells every session to wind down and waits up to grace for them
// to leave. It reports whether all of them did.
func (s *sessions) shutdown(grace time.Duration) bool {
	s.mu.Lock()
	s.closing = true
	for _, c := range s.active {
		c.Shutdown()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(grace):
		return false
	}
}
