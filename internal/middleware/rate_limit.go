package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/messages"
)

const defaultRateLimitShards = 16

// window is the fixed-window counter of one client.
type window struct {
	remaining int
	resetAt   time.Time
}

type rateLimitShard struct {
	mu      sync.Mutex
	clients map[string]*window
}

// RateLimiter is a fixed-window limiter keyed by session id, or client IP for requests
// without a session. Clients are spread across shards to reduce lock contention.
type RateLimiter struct {
	shards []*rateLimitShard
	rate   int
	window time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter allows rate requests per window for each client.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultRateLimitShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(rate int, windowLen time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultRateLimitShards
	}
	shards := make([]*rateLimitShard, numShards)
	for i := range shards {
		shards[i] = &rateLimitShard{clients: make(map[string]*window)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: windowLen,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(key string) *rateLimitShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow takes one request from key's window.
func (rl *RateLimiter) allow(key string) (ok bool, remaining int, resetAt time.Time) {
	s := rl.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	w, exists := s.clients[key]
	if !exists || !now.Before(w.resetAt) {
		w = &window{remaining: rl.rate, resetAt: now.Add(rl.window)}
		s.clients[key] = w
	}
	if w.remaining <= 0 {
		return false, 0, w.resetAt
	}
	w.remaining--
	return true, w.remaining, w.resetAt
}

// RateLimit returns the limiting middleware. It must run after SessionAuth for the
// session to be used as key.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, remaining, resetAt := rl.allow(clientKey(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !ok {
			retry := int(resetAt.Sub(rl.now()).Seconds() + 0.5)
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			abortWithError(c, http.StatusTooManyRequests, messages.ErrKeyRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	if sessionID := GetSessionID(c); sessionID != "" {
		return "session:" + sessionID
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

// sweep drops windows that have expired.
func (rl *RateLimiter) sweep() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for key, w := range s.clients {
			if !now.Before(w.resetAt) {
				delete(s.clients, key)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Clients returns the number of tracked clients.
func (rl *RateLimiter) Clients() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.clients)
		s.mu.Unlock()
	}
	return total
}
