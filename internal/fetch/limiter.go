package fetch

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter bounds the request rate per remote host, so sheet and API providers
// see the same pace however many resolutions run at once. A robots.txt
// Crawl-delay slows a host's bucket further; it never speeds it up.
type Limiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	limit rate.Limit
	burst int
}

// NewLimiter creates a per-host limiter. A non-positive rate disables limiting.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{
		hosts: make(map[string]*rate.Limiter),
		limit: limit,
		burst: burst,
	}
}

// Wait blocks until host may be called. A positive crawlDelay caps the host's
// rate at one request per crawlDelay from now on.
func (l *Limiter) Wait(ctx context.Context, host string, crawlDelay time.Duration) error {
	return l.forHost(host, crawlDelay).Wait(ctx)
}

// forHost returns the bucket for host, creating or slowing it as needed
func (l *Limiter) forHost(host string, crawlDelay time.Duration) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.hosts[host]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.hosts[host] = lim
	}

	if crawlDelay > 0 {
		if slower := rate.Every(crawlDelay); slower < lim.Limit() {
			lim.SetLimit(slower)
			lim.SetBurst(1)
		}
	}
	return lim
}

// hostOf extracts the host from a URL
func hostOf(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("no host in %q", rawURL)
	}
	return parsed.Host, nil
}
