package nfa

import (
	"sync"
	"sync/atomic"
)

// DefaultCacheCapacity is the number of memoized transitions an NFA keeps
// before its cache is cleared and rebuilt.
const DefaultCacheCapacity = 4096

// cacheKey is the pre-expansion active set (in Key form) and the input byte.
type cacheKey struct {
	states string
	symbol byte
}

// Cache memoizes transitions of the acceptance simulation.
//
// The cache maps (active StateSet, input byte) → the fully epsilon-expanded
// StateSet reached after consuming the byte. The mapping is a pure function
// of the automaton's structure, so entries stay valid until the next
// structural mutation, which must call Clear.
//
// Thread safety: all methods are safe for concurrent access via RWMutex.
// Stored sets are never mutated after insertion.
//
// Memory management:
//   - Entries are never evicted individually
//   - When the cache reaches its capacity it is cleared entirely and
//     filling starts over, keeping the allocated map memory
//   - A capacity of zero disables memoization
type Cache struct {
	mu sync.RWMutex

	entries  map[cacheKey]StateSet
	capacity int

	// clearCount counts clears caused by reaching capacity.
	clearCount int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a cache holding at most capacity transitions.
// A negative capacity is treated as zero.
func NewCache(capacity int) *Cache {
	capacity = max(capacity, 0)
	return &Cache{
		entries:  make(map[cacheKey]StateSet, min(capacity, 256)),
		capacity: capacity,
	}
}

// Enabled reports whether the cache memoizes anything at all.
func (c *Cache) Enabled() bool {
	return c.capacity > 0
}

// Get returns the memoized result for the active set whose StateSet.Key is
// states and the input byte symbol.
func (c *Cache) Get(states string, symbol byte) (StateSet, bool) {
	if c.capacity == 0 {
		c.misses.Add(1)
		return StateSet{}, false
	}
	key := cacheKey{states: states, symbol: symbol}

	c.mu.RLock()
	next, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return next, ok
}

// Insert memoizes next as the result for (states, symbol), with states in
// StateSet.Key form. If the cache is full it is cleared first.
func (c *Cache) Insert(states string, symbol byte, next StateSet) {
	if c.capacity == 0 {
		return
	}
	key := cacheKey{states: states, symbol: symbol}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.capacity {
		clear(c.entries)
		c.clearCount++
	}
	c.entries[key] = next
}

// Len returns the number of memoized transitions
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Capacity returns the configured bound
func (c *Cache) Capacity() int {
	return c.capacity
}

// ClearCount returns how many times the cache was cleared for being full.
func (c *Cache) ClearCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clearCount
}

// Clear removes every memoized transition. Hit and miss counters and
// ClearCount are kept; only clears forced by capacity are counted.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Stats returns cache hit/miss statistics.
// Returns (hits, misses, hitRate).
//
// Hit rate = hits / (hits + misses)
func (c *Cache) Stats() (hits, misses uint64, hitRate float64) {
	hits = c.hits.Load()
	misses = c.misses.Load()
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return hits, misses, hitRate
}

// ResetStats resets hit/miss counters
func (c *Cache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
}
