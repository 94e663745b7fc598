// Package pkce keeps PKCE verifiers between the login redirect and the OAuth callback.
package pkce

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pinmap/config"
	"pinmap/internal/domain/service"

	"go.uber.org/fx"
)

type entry struct {
	verifier  string
	expiresAt time.Time
}

// Store is an in-memory, mutex-guarded verifier store. Entries expire after ttl and
// are removed on first read. At most capacity attempts are pending; a full store
// drops expired attempts first and then the one closest to expiry.
type Store struct {
	mu       sync.Mutex
	entries  map[string]entry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the verifier store and runs its janitor for the lifetime of the app.
func New(params Params) service.VerifierStore {
	store := NewStore(params.Config.Session.VerifierTTL, params.Config.Session.MaxPendingLogins, time.Now)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.runJanitor(janitorCtx, params.Logger)

			return nil
		},
		OnStop: func(context.Context) error {
			stopJanitor()

			return nil
		},
	})

	return store
}

// NewStore creates an empty store. A capacity of zero or less means unbounded.
func NewStore(ttl time.Duration, capacity int, now func() time.Time) *Store {
	return &Store{
		entries:  make(map[string]entry),
		ttl:      ttl,
		capacity: capacity,
		now:      now,
	}
}

// Put stores verifier under attemptID, replacing any previous value.
func (s *Store) Put(attemptID, verifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[attemptID]; !exists && s.capacity > 0 && len(s.entries) >= s.capacity {
		s.makeRoom()
	}

	s.entries[attemptID] = entry{
		verifier:  verifier,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Consume returns and removes the verifier stored under attemptID.
func (s *Store) Consume(attemptID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[attemptID]
	if !ok {
		return "", false
	}
	delete(s.entries, attemptID)

	if !s.now().Before(e.expiresAt) {
		return "", false
	}

	return e.verifier, true
}

// Len reports how many attempts are pending, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Sweep drops expired attempts and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked()
}

// makeRoom frees one slot. Callers hold mu.
func (s *Store) makeRoom() {
	if s.sweepLocked() > 0 {
		return
	}

	var (
		oldestID string
		oldestAt time.Time
	)
	for attemptID, e := range s.entries {
		if oldestID == "" || e.expiresAt.Before(oldestAt) {
			oldestID, oldestAt = attemptID, e.expiresAt
		}
	}
	delete(s.entries, oldestID)
}

func (s *Store) sweepLocked() int {
	now := s.now()
	removed := 0
	for attemptID, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, attemptID)
			removed++
		}
	}

	return removed
}

func (s *Store) runJanitor(ctx context.Context, logger *slog.Logger) {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				logger.Debug("Expired PKCE attempts removed", slog.Int("count", removed))
			}
		}
	}
}
