package cache

import "time"

// LayeredCache implements a multi-layer cache (memory + disk)
type LayeredCache struct {
	memory Cache
	disk   Cache
	now    Clock
}

// expiryReader is implemented by layers that can report when an entry expires
type expiryReader interface {
	getWithExpiry(key string) ([]byte, time.Time, bool)
}

// NewLayeredCache creates a new layered cache
func NewLayeredCache(ttl time.Duration, diskDir string, now Clock) *LayeredCache {
	c := NewLayered(
		NewMemoryCacheWithClock(ttl, 10*time.Minute, now),
		NewDiskCacheWithClock(diskDir, ttl, now),
	)
	if now != nil {
		c.now = now
	}
	return c
}

// NewLayered stacks memory over disk
func NewLayered(memory, disk Cache) *LayeredCache {
	return &LayeredCache{memory: memory, disk: disk, now: SystemClock}
}

// Get retrieves a value from the cache (checks memory first, then disk)
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	// Check memory cache first
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	r, ok := c.disk.(expiryReader)
	if !ok {
		// Without an expiry the entry is served from disk only
		return c.disk.Get(key)
	}

	val, expiresAt, found := r.getWithExpiry(key)
	if !found {
		return nil, false
	}
	// Promote with the time left on disk, never a fresh TTL
	if left := expiresAt.Sub(c.now()); left > 0 {
		_ = c.memory.Set(key, val, left)
	}
	return val, true
}

// Set stores a value in both caches
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	// Store in memory
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}

	// Store in disk
	if err := c.disk.Set(key, value, ttl); err != nil {
		return err
	}

	return nil
}

// Delete removes a value from both caches
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear removes all values from both caches
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
