package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"petal-pink/models"
)

// CartSnapshotRepository persists the entries of one session cart.
type CartSnapshotRepository interface {
	Load(ctx context.Context, sessionID string) ([]models.CartEntry, error)
	Save(ctx context.Context, sessionID string, entries []models.CartEntry) error
	Delete(ctx context.Context, sessionID string) error
}

const (
	defaultIdleTTL     = 24 * time.Hour
	maxSweepInterval   = time.Minute
	defaultSaveTimeout = 3 * time.Second
)

type sessionCart struct {
	store       *CartStore
	unsubscribe func()
	lastUsed    time.Time
}

// CartSessions owns one CartStore per guest session. With a snapshot
// repository configured, a store is hydrated on first use and saved after
// every mutation.
//
// Carts not used for the idle TTL are dropped from memory. A persisted cart
// is loaded again from its snapshot on the next request; a memory-only cart
// is gone, so its idle TTL should not be shorter than the session token
// lifetime.
type CartSessions struct {
	catalog     ProductResolver
	repo        CartSnapshotRepository
	logger      *zap.Logger
	saveTimeout time.Duration
	idleTTL     time.Duration
	now         func() time.Time

	mu        sync.Mutex
	stores    map[string]*sessionCart
	lastSweep time.Time
}

type SessionOption func(*CartSessions)

// WithIdleTTL sets how long an unused cart stays in memory.
func WithIdleTTL(d time.Duration) SessionOption {
	return func(s *CartSessions) {
		if d > 0 {
			s.idleTTL = d
		}
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *CartSessions) { s.now = now }
}

func NewCartSessions(catalog ProductResolver, repo CartSnapshotRepository, logger *zap.Logger, opts ...SessionOption) *CartSessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CartSessions{
		catalog:     catalog,
		repo:        repo,
		logger:      logger,
		saveTimeout: defaultSaveTimeout,
		idleTTL:     defaultIdleTTL,
		now:         time.Now,
		stores:      make(map[string]*sessionCart),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CartSessions) Get(ctx context.Context, sessionID string) (*CartStore, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	s.mu.Lock()
	now := s.now()
	s.maybeSweepLocked(now)
	if sc, ok := s.stores[sessionID]; ok {
		sc.lastUsed = now
		s.mu.Unlock()
		return sc.store, nil
	}
	s.mu.Unlock()

	var restored []models.CartEntry
	if s.repo != nil {
		entries, err := s.repo.Load(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("load cart %s: %w", sessionID, err)
		}
		restored = entries
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another request may have created it while we were loading
	if sc, ok := s.stores[sessionID]; ok {
		sc.lastUsed = s.now()
		return sc.store, nil
	}

	store := NewCartStore(s.catalog)
	store.Restore(restored)

	sc := &sessionCart{store: store, unsubscribe: func() {}, lastUsed: s.now()}
	if s.repo != nil {
		sc.unsubscribe = PersistOnChange(sessionID, store, s.repo, s.logger, s.saveTimeout)
	}
	s.stores[sessionID] = sc

	s.logger.Debug("cart session opened",
		zap.String("session_id", sessionID),
		zap.Int("restored_entries", store.Len()))
	return store, nil
}

// End resets the session cart and forgets it, including any stored snapshot.
func (s *CartSessions) End(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sc, ok := s.stores[sessionID]
	delete(s.stores, sessionID)
	s.mu.Unlock()

	if ok {
		sc.unsubscribe()
		sc.store.Clear()
	}

	if s.repo != nil {
		if err := s.repo.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("delete cart %s: %w", sessionID, err)
		}
	}
	return nil
}

// Sweep drops every cart idle for at least the idle TTL and returns how many
// were dropped. Stored snapshots are kept.
func (s *CartSessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

// maybeSweepLocked runs a sweep at most once per interval so Get stays cheap.
func (s *CartSessions) maybeSweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < min(s.idleTTL, maxSweepInterval) {
		return
	}
	s.sweepLocked(now)
}

func (s *CartSessions) sweepLocked(now time.Time) int {
	s.lastSweep = now
	evicted := 0
	for id, sc := range s.stores {
		if now.Sub(sc.lastUsed) < s.idleTTL {
			continue
		}
		sc.unsubscribe()
		delete(s.stores, id)
		evicted++
	}
	if evicted > 0 {
		s.logger.Debug("idle cart sessions evicted",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(s.stores)))
	}
	return evicted
}

func (s *CartSessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores)
}

// PersistOnChange saves the cart after every published mutation. A failed
// save is logged; in-memory state is kept as is.
func PersistOnChange(sessionID string, store *CartStore, repo CartSnapshotRepository, logger *zap.Logger, timeout time.Duration) func() {
	return store.Subscribe(func(ev CartEvent) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := repo.Save(ctx, sessionID, ev.Entries); err != nil {
			logger.Warn("cart snapshot save failed",
				zap.String("session_id", sessionID),
				zap.String("event", string(ev.Kind)),
				zap.Error(err))
		}
	})
}
