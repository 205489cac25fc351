package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching fetched source bodies.
// Implementations must be safe for concurrent use; concurrent Sets of the
// same key resolve last-writer-wins.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// SystemClock is the wall clock
func SystemClock() time.Time { return time.Now() }

// CacheKey generates a cache key from a source name and URL
func CacheKey(source, url string) string {
	hash := sha256.Sum256([]byte(url))
	return "capsule:v1:" + source + ":" + hex.EncodeToString(hash[:])
}

// Noop is a cache that stores nothing, used when caching is disabled
type Noop struct{}

func (Noop) Get(string) ([]byte, bool)               { return nil, false }
func (Noop) Set(string, []byte, time.Duration) error { return nil }
func (Noop) Delete(string) error                     { return nil }
func (Noop) Clear() error                            { return nil }
