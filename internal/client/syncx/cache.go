package syncx

import (
	"sync"
	"time"
)

// CacheEntry is a point-in-time view of the cached collection.
type CacheEntry struct {
	Items     []Resource
	FetchedAt time.Time
	Version   int64
}

// Cache holds the latest known snapshot of one owner key's collection plus
// a monotonic version counter. The version, not the wall clock, decides
// whether an update has been applied. All methods are safe for concurrent
// use and never fail.
type Cache struct {
	mu        sync.Mutex
	items     []Resource
	hasItems  bool
	fetchedAt time.Time
	version   int64
	now       func() time.Time
}

func NewCache() *Cache {
	return &Cache{now: time.Now}
}

// Read returns a copy of the current snapshot. An empty entry has a nil
// Items slice and version 0.
func (c *Cache) Read() CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheEntry{
		Items:     cloneResources(c.items),
		FetchedAt: c.fetchedAt,
		Version:   c.version,
	}
}

// IsValid reports whether a snapshot is present and younger than ttl.
func (c *Cache) IsValid(ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasItems {
		return false
	}
	return c.now().Sub(c.fetchedAt) < ttl
}

// Write replaces the snapshot wholesale, stamps the fetch time and bumps
// the version. Every accepted write bumps, whether it came from a fetch or
// a push.
func (c *Cache) Write(items []Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = cloneResources(items)
	if c.items == nil {
		c.items = []Resource{}
	}
	c.hasItems = true
	c.fetchedAt = c.now()
	c.version++
}

// Invalidate clears the items and fetch timestamp but preserves the version
// counter, so writes after an invalidation remain distinguishable from
// pre-invalidation state.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.hasItems = false
	c.fetchedAt = time.Time{}
}

// Version returns the current version counter.
func (c *Cache) Version() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}
