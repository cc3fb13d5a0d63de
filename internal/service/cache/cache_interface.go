// Package cache provides the sharded LRU cache with TTL expiration that backs the session
// store.
package cache

// Cache defines the interface for cache operations.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Invalidate(key string)
	Len() int
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[V any] interface {
	Cache[V]
	Metrics() Metrics
}

// EvictReason says why an entry left the cache.
type EvictReason string

const (
	EvictExpired     EvictReason = "expired"
	EvictCapacity    EvictReason = "capacity"
	EvictInvalidated EvictReason = "invalidated"
	EvictCleared     EvictReason = "cleared"
)

// EvictFunc is called after an entry is removed, outside the cache lock.
type EvictFunc[V any] func(key string, value V, reason EvictReason)

// RecordFunc receives one (operation, result) pair per cache operation.
type RecordFunc func(operation, result string)
