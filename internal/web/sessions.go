package web

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/store"
	"github.com/sells-group/quote-wizard/internal/wizard"
	"github.com/sells-group/quote-wizard/pkg/isa"
)

const saveTimeout = 5 * time.Second

type session struct {
	store    *wizard.Store
	lastSeen time.Time
}

// Sessions owns one wizard.Store per browser session. When a persistence
// store is set, every transition is saved and cold sessions are restored.
type Sessions struct {
	client  isa.PolicyClient
	persist store.Store
	loc     *i18n.Localizer
	ttl     time.Duration

	mu      sync.Mutex
	live    map[string]*session
	nowFunc func() time.Time
}

// NewSessions creates a registry. persist may be nil.
func NewSessions(client isa.PolicyClient, persist store.Store, loc *i18n.Localizer, ttl time.Duration) *Sessions {
	if loc == nil {
		loc = i18n.New("en")
	}
	return &Sessions{
		client:  client,
		persist: persist,
		loc:     loc,
		ttl:     ttl,
		live:    make(map[string]*session),
		nowFunc: time.Now,
	}
}

// Get returns the store of session id, restoring or creating it.
func (s *Sessions) Get(ctx context.Context, id string) *wizard.Store {
	if st := s.touch(id); st != nil {
		return st
	}

	st := wizard.NewStore(s.client,
		wizard.WithLocalizer(s.loc),
		wizard.WithOnChange(func(state wizard.State) {
			s.save(id, state)
		}),
	)
	s.restore(ctx, id, st)

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.live[id]; ok {
		existing.lastSeen = s.nowFunc()
		return existing.store
	}
	s.live[id] = &session{store: st, lastSeen: s.nowFunc()}
	return st
}

// Len returns the number of sessions held in memory.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

func (s *Sessions) touch(id string) *wizard.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.live[id]
	if !ok {
		return nil
	}
	sess.lastSeen = s.nowFunc()
	return sess.store
}

func (s *Sessions) restore(ctx context.Context, id string, st *wizard.Store) {
	if s.persist == nil {
		return
	}
	data, err := s.persist.LoadSession(ctx, id)
	if err != nil {
		zap.L().Warn("web: load session", zap.String("session", id), zap.Error(err))
		return
	}
	if data == nil {
		return
	}
	var state wizard.State
	if err := json.Unmarshal(data, &state); err != nil {
		zap.L().Warn("web: decode session", zap.String("session", id), zap.Error(err))
		return
	}
	st.Restore(state)
}

func (s *Sessions) save(id string, state wizard.State) {
	if s.persist == nil {
		return
	}
	data, err := json.Marshal(state)
	if err != nil {
		zap.L().Error("web: encode session", zap.String("session", id), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.persist.SaveSession(ctx, id, data, s.ttl); err != nil {
		zap.L().Error("web: save session", zap.String("session", id), zap.Error(err))
	}
}

// Discard deletes the persisted snapshot of session id. The in-memory store
// is left to the caller.
func (s *Sessions) Discard(ctx context.Context, id string) error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.DeleteSession(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return eris.Wrap(err, "web: discard session")
	}
	return nil
}

// Purge evicts sessions idle longer than the ttl and deletes expired
// snapshots. It returns the number of snapshots deleted.
func (s *Sessions) Purge(ctx context.Context) (int, error) {
	cutoff := s.nowFunc().Add(-s.ttl)

	s.mu.Lock()
	evicted := 0
	for id, sess := range s.live {
		if sess.lastSeen.Before(cutoff) {
			delete(s.live, id)
			evicted++
		}
	}
	s.mu.Unlock()

	if evicted > 0 {
		zap.L().Info("evicted idle sessions", zap.Int("count", evicted))
	}
	if s.persist == nil {
		return 0, nil
	}
	n, err := s.persist.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, eris.Wrap(err, "web: purge sessions")
	}
	return n, nil
}

// PurgeEvery runs Purge on a ticker until ctx is done.
func (s *Sessions) PurgeEvery(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Purge(ctx)
			if err != nil {
				zap.L().Warn("session purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				zap.L().Info("purged expired sessions", zap.Int("count", n))
			}
		}
	}
}
