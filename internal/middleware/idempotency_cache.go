package middleware

import (
	"sync"
	"time"

	"github.com/guttosm/food-order-service/internal/service/cache"
)

const defaultIdempotencyCapacity = 10000

// cachedResponse is a replayable response.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        []byte
	// BodyHash fingerprints the request that produced the response.
	BodyHash string
}

// IdempotencyStore keeps recent responses by idempotency key and tracks the keys whose
// first request is still running.
type IdempotencyStore struct {
	responses *cache.Sharded[*cachedResponse]

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewIdempotencyStore creates a store that replays responses for ttl.
func NewIdempotencyStore(ttl time.Duration, capacity int) *IdempotencyStore {
	if capacity <= 0 {
		capacity = defaultIdempotencyCapacity
	}
	return &IdempotencyStore{
		responses: cache.NewSharded(cache.Options[*cachedResponse]{
			Capacity: capacity,
			TTL:      ttl,
			Shards:   8,
		}),
		inFlight: make(map[string]struct{}),
	}
}

// Get returns the stored response for key.
func (s *IdempotencyStore) Get(key string) (*cachedResponse, bool) {
	return s.responses.Get(key)
}

// Set stores resp under key.
func (s *IdempotencyStore) Set(key string, resp *cachedResponse) {
	s.responses.Set(key, resp)
}

// Begin marks key as in flight. It returns false when another request holds it.
func (s *IdempotencyStore) Begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

// Done releases key.
func (s *IdempotencyStore) Done(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

// Len is the number of stored responses.
func (s *IdempotencyStore) Len() int {
	return s.responses.Len()
}

// Stop ends the store's cleanup goroutines.
func (s *IdempotencyStore) Stop() {
	s.responses.Stop()
}
