package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"
)

// Options configures a Sharded cache.
type Options[V any] struct {
	// Capacity is the total capacity, split evenly across shards.
	Capacity int
	// TTL is how long an entry lives after its last write (or read, when Sliding).
	TTL time.Duration
	// Shards is rounded up to a power of two; 0 means 16.
	Shards int
	// Sliding extends an entry's TTL on every successful Get.
	Sliding bool
	// CleanupInterval is how often expired entries are swept; 0 means one minute.
	CleanupInterval time.Duration
	// OnEvict is optional.
	OnEvict EvictFunc[V]
	// Record is optional.
	Record RecordFunc
}

// Sharded distributes entries across independently locked LRU shards by FNV hash of the
// key.
type Sharded[V any] struct {
	shards    []*ttlCache[V]
	shardMask uint32
}

// NewSharded creates a sharded cache and starts one cleanup goroutine per shard.
func NewSharded[V any](opts Options[V]) *Sharded[V] {
	numShards := opts.Shards
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShard := opts.Capacity / numShards
	if perShard < 1 {
		perShard = 1
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = time.Minute
	}

	shards := make([]*ttlCache[V], numShards)
	for i := range shards {
		shards[i] = newTTLCache(perShard, opts)
	}

	return &Sharded[V]{
		shards:    shards,
		shardMask: uint32(numShards - 1),
	}
}

func (s *Sharded[V]) shard(key string) *ttlCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()&s.shardMask]
}

// Get retrieves a value from the appropriate shard.
func (s *Sharded[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Set stores a value in the appropriate shard.
func (s *Sharded[V]) Set(key string, value V) {
	s.shard(key).Set(key, value)
}

// Invalidate removes a key from the appropriate shard.
func (s *Sharded[V]) Invalidate(key string) {
	s.shard(key).Invalidate(key)
}

// Len is the number of entries across shards, expired ones included until swept.
func (s *Sharded[V]) Len() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Len()
	}
	return total
}

// Clear removes all entries from all shards.
func (s *Sharded[V]) Clear() {
	for _, shard := range s.shards {
		shard.Clear()
	}
}

// Stop shuts down the cleanup goroutines.
func (s *Sharded[V]) Stop() {
	for _, shard := range s.shards {
		shard.Stop()
	}
}

// Sweep removes expired entries from every shard immediately.
func (s *Sharded[V]) Sweep() {
	for _, shard := range s.shards {
		shard.cleanup()
	}
}

// Metrics returns aggregated metrics from all shards.
func (s *Sharded[V]) Metrics() Metrics {
	var total Metrics
	for _, shard := range s.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is one thread-safe LRU shard with TTL expiration.
type ttlCache[V any] struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	sliding   bool
	items     map[string]*entry[V]
	head      *entry[V]
	tail      *entry[V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	onEvict   EvictFunc[V]
	record    RecordFunc
	hits      int64
	misses    int64
	evictions int64
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *entry[V]
	next      *entry[V]
}

type evicted[V any] struct {
	key    string
	value  V
	reason EvictReason
}

func newTTLCache[V any](capacity int, opts Options[V]) *ttlCache[V] {
	c := &ttlCache[V]{
		capacity: capacity,
		ttl:      opts.TTL,
		sliding:  opts.Sliding,
		items:    make(map[string]*entry[V], capacity),
		stopCh:   make(chan struct{}),
		onEvict:  opts.OnEvict,
		record:   opts.Record,
	}
	go c.startCleanup(opts.CleanupInterval)
	return c
}

// Stop gracefully shuts down the cache cleanup goroutine. It is safe to call twice.
func (c *ttlCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *ttlCache[V]) Metrics() Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      size,
		Capacity:  c.capacity,
	}
}

// Len is the number of stored entries.
func (c *ttlCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get returns the value if present and not expired, and marks it most recently used.
func (c *ttlCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	e, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		c.observe("get", "miss")
		return zero, false
	}

	if time.Now().After(e.expiresAt) {
		c.removeEntry(e)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		atomic.AddInt64(&c.evictions, 1)
		c.observe("get", "expired")
		c.notify([]evicted[V]{{key: e.key, value: e.value, reason: EvictExpired}})
		return zero, false
	}

	if c.sliding {
		e.expiresAt = time.Now().Add(c.ttl)
	}
	c.moveToFront(e)
	value := e.value
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	c.observe("get", "hit")
	return value, true
}

// Set adds or replaces a value. At capacity the least recently used entry is evicted.
func (c *ttlCache[V]) Set(key string, value V) {
	c.mu.Lock()

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(e)
		c.mu.Unlock()
		c.observe("set", "update")
		return
	}

	e := &entry[V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = e
	c.addToFront(e)

	var out []evicted[V]
	if len(c.items) > c.capacity && c.tail != nil {
		victim := c.tail
		c.removeEntry(victim)
		atomic.AddInt64(&c.evictions, 1)
		out = append(out, evicted[V]{key: victim.key, value: victim.value, reason: EvictCapacity})
	}
	c.mu.Unlock()

	c.observe("set", "success")
	if len(out) > 0 {
		c.observe("evict", string(EvictCapacity))
		c.notify(out)
	}
}

// Invalidate removes a specific key from the cache.
func (c *ttlCache[V]) Invalidate(key string) {
	c.mu.Lock()
	e, ok := c.items[key]
	if ok {
		c.removeEntry(e)
	}
	c.mu.Unlock()

	if ok {
		c.observe("invalidate", "success")
		c.notify([]evicted[V]{{key: e.key, value: e.value, reason: EvictInvalidated}})
	}
}

// Clear removes all entries and resets the counters.
func (c *ttlCache[V]) Clear() {
	c.mu.Lock()
	out := make([]evicted[V], 0, len(c.items))
	for _, e := range c.items {
		out = append(out, evicted[V]{key: e.key, value: e.value, reason: EvictCleared})
	}
	c.items = make(map[string]*entry[V], c.capacity)
	c.head = nil
	c.tail = nil
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
	c.mu.Unlock()

	c.observe("clear", "success")
	c.notify(out)
}

func (c *ttlCache[V]) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries from the cache.
func (c *ttlCache[V]) cleanup() {
	c.mu.Lock()
	current := time.Now()
	var out []evicted[V]
	for _, e := range c.items {
		if current.After(e.expiresAt) {
			c.removeEntry(e)
			out = append(out, evicted[V]{key: e.key, value: e.value, reason: EvictExpired})
		}
	}
	atomic.AddInt64(&c.evictions, int64(len(out)))
	c.mu.Unlock()

	if len(out) > 0 {
		c.observe("evict", string(EvictExpired))
		c.notify(out)
	}
}

func (c *ttlCache[V]) observe(operation, result string) {
	if c.record != nil {
		c.record(operation, result)
	}
}

func (c *ttlCache[V]) notify(out []evicted[V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range out {
		c.onEvict(e.key, e.value, e.reason)
	}
}

// removeEntry removes an entry from both the map and the linked list.
func (c *ttlCache[V]) removeEntry(e *entry[V]) {
	delete(c.items, e.key)
	c.unlink(e)
}

func (c *ttlCache[V]) moveToFront(e *entry[V]) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *ttlCache[V]) addToFront(e *entry[V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

// unlink removes an entry from the linked list without touching the map.
func (c *ttlCache[V]) unlink(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

var _ CacheWithMetrics[int] = (*Sharded[int])(nil)
