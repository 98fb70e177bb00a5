package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rotisserie/eris"
)

type memEntry struct {
	state     []byte
	expiresAt time.Time
}

// MemoryStore implements Store in process memory. Sessions do not survive a
// restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memEntry
	nowFunc  func() time.Time
}

// NewMemory creates an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memEntry), nowFunc: time.Now}
}

func (s *MemoryStore) Migrate(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) SaveSession(_ context.Context, id string, state []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = memEntry{state: slices.Clone(state), expiresAt: s.nowFunc().Add(ttl)}
	return nil
}

func (s *MemoryStore) LoadSession(_ context.Context, id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok || !e.expiresAt.After(s.nowFunc()) {
		return nil, nil
	}
	return slices.Clone(e.state), nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return eris.Wrapf(ErrNotFound, "session %s", id)
	}
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) DeleteExpiredSessions(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowFunc()
	n := 0
	for id, e := range s.sessions {
		if !e.expiresAt.After(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}
