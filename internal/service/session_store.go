package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/food-order-service/internal/metrics"
	"github.com/guttosm/food-order-service/internal/service/cache"
)

// SessionStoreConfig sizes the live session table.
type SessionStoreConfig struct {
	// Capacity is the maximum number of live sessions; the least recently used is evicted.
	Capacity int
	// IdleTTL ends sessions that were not used for this long.
	IdleTTL time.Duration
	// Shards is the number of independently locked shards.
	Shards int
	// CleanupInterval is how often idle sessions are swept.
	CleanupInterval time.Duration
}

// DefaultSessionStoreConfig returns the defaults used when config leaves a value unset.
func DefaultSessionStoreConfig() SessionStoreConfig {
	return SessionStoreConfig{
		Capacity:        10000,
		IdleTTL:         2 * time.Hour,
		Shards:          16,
		CleanupInterval: time.Minute,
	}
}

// SessionStore keeps live sessions keyed by id.
type SessionStore interface {
	// Create starts and stores a new session.
	Create() *Session
	// Get returns a live session and refreshes its idle timer.
	Get(id string) (*Session, error)
	// End removes the session. Ending an unknown session returns ErrSessionNotFound.
	End(id string) error
	// Len is the number of live sessions.
	Len() int
	// Stop releases background resources.
	Stop()
}

// SessionStoreImpl implements SessionStore on a sharded LRU cache with sliding TTL.
type SessionStoreImpl struct {
	sessions *cache.Sharded[*Session]
	defaults SpicyDefaultFunc
}

// NewSessionStore creates a session store. defaults seeds each session's tracker and may
// be nil.
func NewSessionStore(cfg SessionStoreConfig, defaults SpicyDefaultFunc) *SessionStoreImpl {
	def := DefaultSessionStoreConfig()
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = def.IdleTTL
	}
	if cfg.Shards <= 0 {
		cfg.Shards = def.Shards
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}

	s := &SessionStoreImpl{defaults: defaults}
	s.sessions = cache.NewSharded(cache.Options[*Session]{
		Capacity:        cfg.Capacity,
		TTL:             cfg.IdleTTL,
		Shards:          cfg.Shards,
		Sliding:         true,
		CleanupInterval: cfg.CleanupInterval,
		Record:          metrics.RecordSessionStoreOperation,
		OnEvict:         s.onEvict,
	})
	return s
}

func (s *SessionStoreImpl) onEvict(id string, session *Session, reason cache.EvictReason) {
	metrics.UpdateActiveSessions(s.sessions.Len())
	if reason == cache.EvictInvalidated || reason == cache.EvictCleared {
		return
	}
	log.Info().
		Str("session_id", id).
		Str("reason", string(reason)).
		Int("cart_lines", session.CartLen()).
		Msg("Session ended")
}

func (s *SessionStoreImpl) Create() *Session {
	session := NewSession(s.defaults)
	s.sessions.Set(session.ID(), session)
	metrics.UpdateActiveSessions(s.sessions.Len())
	return session
}

func (s *SessionStoreImpl) Get(id string) (*Session, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionStoreImpl) End(id string) error {
	if _, ok := s.sessions.Get(id); !ok {
		return ErrSessionNotFound
	}
	s.sessions.Invalidate(id)
	return nil
}

func (s *SessionStoreImpl) Len() int {
	return s.sessions.Len()
}

func (s *SessionStoreImpl) Stop() {
	s.sessions.Stop()
}

// Metrics exposes the underlying cache counters.
func (s *SessionStoreImpl) Metrics() cache.Metrics {
	return s.sessions.Metrics()
}
