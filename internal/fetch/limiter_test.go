package fetch

import (
	"context"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestNewLimiter_Defaults(t *testing.T) {
	if l := NewLimiter(10, -1); l.burst != 5 {
		t.Errorf("expected default burst 5, got %d", l.burst)
	}
	if l := NewLimiter(0, 1); l.limit != rate.Inf {
		t.Errorf("expected unlimited rate, got %v", l.limit)
	}
}

func TestLimiter_HostsAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "api.census.gov", 0); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}
	if limiter.forHost("api.census.gov", 0).Allow() {
		t.Error("expected census bucket to be exhausted")
	}

	start := time.Now()
	if err := limiter.Wait(ctx, "docs.google.com", 0); err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("other host waited %v", elapsed)
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	limiter := NewLimiter(0, 1)
	for i := 0; i < 20; i++ {
		if !limiter.forHost("api.census.gov", 0).Allow() {
			t.Fatalf("request %d should pass with limiting disabled", i)
		}
	}
}

func TestLimiter_CrawlDelaySlowsHost(t *testing.T) {
	limiter := NewLimiter(100, 5)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "metals-api.com", 60*time.Millisecond); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	start := time.Now()
	if err := limiter.Wait(ctx, "metals-api.com", 60*time.Millisecond); err != nil {
		t.Fatalf("second wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("expected crawl delay spacing, waited only %v", elapsed)
	}

	// A shorter delay never speeds the host back up
	if got := limiter.forHost("metals-api.com", time.Millisecond).Limit(); got != rate.Every(60*time.Millisecond) {
		t.Errorf("expected rate to stay at one per 60ms, got %v", got)
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewLimiter(0.01, 1)
	ctx, cancel := context.WithCancel(context.Background())

	if err := limiter.Wait(ctx, "metals-api.com", 0); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}
	cancel()
	if err := limiter.Wait(ctx, "metals-api.com", 0); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestHostOf(t *testing.T) {
	host, err := hostOf("https://api.census.gov/data/2019")
	if err != nil {
		t.Fatalf("hostOf failed: %v", err)
	}
	if host != "api.census.gov" {
		t.Errorf("expected api.census.gov, got %s", host)
	}

	for _, bad := range []string{"::invalid", "/relative/path"} {
		if _, err := hostOf(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
