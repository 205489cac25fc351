package cache

import (
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestMemoryCache_TTL(t *testing.T) {
	clock := newFakeClock()
	c := NewMemoryCacheWithClock(2*time.Hour, time.Hour, clock.Now)

	if err := c.Set("metals", []byte("2386.20"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	clock.Advance(119 * time.Minute)
	if val, ok := c.Get("metals"); !ok || string(val) != "2386.20" {
		t.Fatalf("expected hit before TTL, got %q %v", val, ok)
	}

	clock.Advance(time.Minute)
	if _, ok := c.Get("metals"); ok {
		t.Error("expected miss once the 2h TTL elapsed")
	}
}

func TestMemoryCache_ExplicitTTL(t *testing.T) {
	clock := newFakeClock()
	c := NewMemoryCacheWithClock(2*time.Hour, time.Hour, clock.Now)

	_ = c.Set("short", []byte("x"), 10*time.Minute)
	clock.Advance(11 * time.Minute)
	if _, ok := c.Get("short"); ok {
		t.Error("expected explicit TTL to override default")
	}
}

func TestMemoryCache_LastWriterWins(t *testing.T) {
	c := NewMemoryCache(time.Hour, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Set("k", []byte(strings.Repeat("v", i%5+1)), 0)
			_, _ = c.Get("k")
		}(i)
	}
	wg.Wait()

	val, ok := c.Get("k")
	if !ok {
		t.Fatal("expected value after concurrent writes")
	}
	if strings.Trim(string(val), "v") != "" {
		t.Errorf("corrupted value %q", val)
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Hour, time.Hour)
	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)

	_ = c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to be deleted")
	}
	_ = c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be cleared")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewDiskCacheWithClock(t.TempDir(), 6*time.Hour, clock.Now)
	key := CacheKey("governors", "https://docs.google.com/spreadsheets/d/x/pub?output=csv")

	if err := c.Set(key, []byte("state,name\nMO,Jay Nixon\n"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, ok := c.Get(key)
	if !ok || !strings.Contains(string(val), "Jay Nixon") {
		t.Fatalf("expected hit, got %q %v", val, ok)
	}

	clock.Advance(6 * time.Hour)
	if _, ok := c.Get(key); ok {
		t.Error("expected expired entry to miss")
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("Delete of removed entry should succeed, got %v", err)
	}
}

func TestLayeredCache_PromotesFromDisk(t *testing.T) {
	clock := newFakeClock()
	dir := t.TempDir()

	first := NewLayeredCache(time.Hour, dir, clock.Now)
	if err := first.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A new process shares only the disk layer
	second := NewLayeredCache(time.Hour, dir, clock.Now)
	val, ok := second.Get("k")
	if !ok || string(val) != "v" {
		t.Fatalf("expected disk hit, got %q %v", val, ok)
	}
	if val, ok := second.memory.Get("k"); !ok || string(val) != "v" {
		t.Error("expected value promoted to memory")
	}
}

func TestLayeredCache_PromotionKeepsDiskExpiry(t *testing.T) {
	clock := newFakeClock()
	dir := t.TempDir()

	first := NewLayeredCache(2*time.Hour, dir, clock.Now)
	if err := first.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	clock.Advance(119 * time.Minute)
	second := NewLayeredCache(2*time.Hour, dir, clock.Now)
	if _, ok := second.Get("k"); !ok {
		t.Fatal("expected disk hit one minute before expiry")
	}

	// The promoted copy expires with the disk entry, not two hours later
	clock.Advance(time.Minute)
	if val, ok := second.Get("k"); ok {
		t.Errorf("entry served past its ttl: %q", val)
	}
	if _, ok := second.memory.Get("k"); ok {
		t.Error("expected promoted copy to have expired")
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("census", "https://api.census.gov/data/2019/pep/population")
	b := CacheKey("census", "https://api.census.gov/data/2018/pep/population")
	if a == b {
		t.Error("expected different keys for different URLs")
	}
	if !strings.HasPrefix(a, "capsule:v1:census:") {
		t.Errorf("unexpected key prefix: %s", a)
	}
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	_ = c.Set("k", []byte("v"), time.Hour)
	if _, ok := c.Get("k"); ok {
		t.Error("Noop cache should never hit")
	}
}
