package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory TTL caching. go-cache evicts expired items in the
// background on the wall clock; freshness on read is judged by the injected clock.
type MemoryCache struct {
	cache *gocache.Cache
	ttl   time.Duration
	now   Clock
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return NewMemoryCacheWithClock(defaultTTL, cleanupInterval, SystemClock)
}

// NewMemoryCacheWithClock creates a memory cache that reads time from now
func NewMemoryCacheWithClock(defaultTTL, cleanupInterval time.Duration, now Clock) *MemoryCache {
	if now == nil {
		now = SystemClock
	}
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
		ttl:   defaultTTL,
		now:   now,
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	entry := val.(memoryEntry)
	if !c.now().Before(entry.expiresAt) {
		c.cache.Delete(key)
		return nil, false
	}
	return entry.data, true
}

// Set stores a value in the cache with the given TTL (0 means the default TTL)
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}
	c.cache.Set(key, memoryEntry{data: value, expiresAt: c.now().Add(ttl)}, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
