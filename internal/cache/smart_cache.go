// Package cache provides SmartCache, a bounded TTL+LRU cache used to
// memoize expensive lookups (mob template resolution, area queries).
package cache

import (
	"container/list"
	"regexp"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Stats are cumulative cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Options configure a SmartCache.
type Options[V any] struct {
	// MaxSize bounds the number of entries; 0 means 1000.
	MaxSize int
	// TTL is the entry lifetime measured from insertion; 0 means 5 minutes.
	TTL time.Duration
	// OnEvict, when set, is called with (key, value) for every entry
	// leaving the cache: LRU eviction, TTL expiry, Delete, and
	// InvalidatePattern.
	OnEvict func(key string, value V)
	// Clone, when set, is applied on both write and read so callers can
	// never mutate a cached value in place.
	Clone func(V) V
	// TestMode makes Cleanup a no-op so timing-sensitive tests stay
	// deterministic.
	TestMode bool
}

type entry[V any] struct {
	key          string
	value        V
	createdAt    time.Time
	lastAccessed time.Time
	accessCount  int64
	elem         *list.Element
}

// SmartCache is a string-keyed cache combining TTL expiry with LRU
// eviction. An entry is logically absent once its age exceeds the TTL
// even if the next reader hasn't purged it yet.
type SmartCache[V any] struct {
	opts  Options[V]
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]*entry[V]
	lru     *list.List // front = most recently accessed
	stats   Stats
	now     func() time.Time // swappable clock for tests
}

// New creates a SmartCache with the given options.
func New[V any](opts Options[V]) *SmartCache[V] {
	if opts.MaxSize <= 0 {
		opts.MaxSize = 1000
	}
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	return &SmartCache[V]{
		opts:    opts,
		entries: make(map[string]*entry[V]),
		lru:     list.New(),
		now:     time.Now,
	}
}

// Get returns the cached value for key. An expired entry counts as a
// miss and is purged on the spot.
func (c *SmartCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()

	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		c.mu.Unlock()
		var zero V
		return zero, false
	}

	if c.expired(e) {
		c.removeLocked(e)
		c.stats.Misses++
		c.stats.Evictions++
		cb, val := c.opts.OnEvict, e.value
		c.mu.Unlock()
		if cb != nil {
			cb(key, val)
		}
		var zero V
		return zero, false
	}

	e.lastAccessed = c.now()
	e.accessCount++
	c.lru.MoveToFront(e.elem)
	c.stats.Hits++
	val := e.value
	c.mu.Unlock()

	if c.opts.Clone != nil {
		val = c.opts.Clone(val)
	}
	return val, true
}

// Has reports whether key is present and unexpired, without touching
// access order or stats.
func (c *SmartCache[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && !c.expired(e)
}

// Set stores value under key. If the cache is full and the key is new,
// the least-recently-accessed entry is evicted first.
func (c *SmartCache[V]) Set(key string, value V) {
	if c.opts.Clone != nil {
		value = c.opts.Clone(value)
	}

	c.mu.Lock()

	if e, ok := c.entries[key]; ok {
		now := c.now()
		e.value = value
		e.createdAt = now
		e.lastAccessed = now
		c.lru.MoveToFront(e.elem)
		c.mu.Unlock()
		return
	}

	var evictedKey string
	var evictedVal V
	evicted := false
	if len(c.entries) >= c.opts.MaxSize {
		if back := c.lru.Back(); back != nil {
			old := back.Value.(*entry[V])
			c.removeLocked(old)
			c.stats.Evictions++
			evictedKey, evictedVal, evicted = old.key, old.value, true
		}
	}

	now := c.now()
	e := &entry[V]{key: key, value: value, createdAt: now, lastAccessed: now}
	e.elem = c.lru.PushFront(e)
	c.entries[key] = e

	cb := c.opts.OnEvict
	c.mu.Unlock()

	if evicted && cb != nil {
		cb(evictedKey, evictedVal)
	}
}

// GetOrSet returns the cached value for key, or computes it with
// factory. Concurrent callers for the same key share one in-flight
// factory invocation; a factory error is returned to every waiter and
// nothing is cached, so the next call retries.
func (c *SmartCache[V]) GetOrSet(key string, factory func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err, _ := c.group.Do(key, func() (any, error) {
		// Another caller may have populated the key while we queued.
		if cached, ok := c.Get(key); ok {
			return cached, nil
		}
		computed, err := factory()
		if err != nil {
			return nil, err
		}
		c.Set(key, computed)
		return computed, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	// Do hands the same value to every waiter; clone per waiter so the
	// raw factory value is never shared with the cached copy.
	v := val.(V)
	if c.opts.Clone != nil {
		v = c.opts.Clone(v)
	}
	return v, nil
}

// Delete removes key, invoking the eviction callback if it was present.
// Returns true if an entry was removed.
func (c *SmartCache[V]) Delete(key string) bool {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return false
	}
	c.removeLocked(e)
	cb, val := c.opts.OnEvict, e.value
	c.mu.Unlock()

	if cb != nil {
		cb(key, val)
	}
	return true
}

// InvalidatePattern removes every key matching pattern and returns the
// number of entries removed.
func (c *SmartCache[V]) InvalidatePattern(pattern *regexp.Regexp) int {
	c.mu.Lock()
	var removed []*entry[V]
	for key, e := range c.entries {
		if pattern.MatchString(key) {
			removed = append(removed, e)
		}
	}
	for _, e := range removed {
		c.removeLocked(e)
	}
	cb := c.opts.OnEvict
	c.mu.Unlock()

	if cb != nil {
		for _, e := range removed {
			cb(e.key, e.value)
		}
	}
	return len(removed)
}

// Cleanup sweeps all currently-expired entries and returns how many it
// removed. In test mode the sweep is skipped entirely.
func (c *SmartCache[V]) Cleanup() int {
	if c.opts.TestMode {
		return 0
	}

	c.mu.Lock()
	var removed []*entry[V]
	for _, e := range c.entries {
		if c.expired(e) {
			removed = append(removed, e)
		}
	}
	for _, e := range removed {
		c.removeLocked(e)
		c.stats.Evictions++
	}
	cb := c.opts.OnEvict
	c.mu.Unlock()

	if cb != nil {
		for _, e := range removed {
			cb(e.key, e.value)
		}
	}
	return len(removed)
}

// Len returns the number of physically present entries, expired or not.
func (c *SmartCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cumulative counters.
func (c *SmartCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *SmartCache[V]) expired(e *entry[V]) bool {
	return c.now().Sub(e.createdAt) > c.opts.TTL
}

func (c *SmartCache[V]) removeLocked(e *entry[V]) {
	delete(c.entries, e.key)
	c.lru.Remove(e.elem)
}
