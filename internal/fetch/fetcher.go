package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ppiankov/capsule/internal/logging"
	"github.com/ppiankov/capsule/internal/model"
)

// Options configures a Fetcher
type Options struct {
	Timeout           time.Duration
	UserAgent         string
	MaxBytes          int64
	HTTPProxy         string
	HTTPSProxy        string
	RequestsPerSecond float64
	Burst             int
	RespectRobots     bool
	Breaker           BreakerConfig
	Logger            logging.Logger
}

// OptionsFromConfig maps the application config onto fetcher options
func OptionsFromConfig(cfg *model.Config, logger logging.Logger) Options {
	return Options{
		Timeout:           cfg.HTTP.Timeout,
		UserAgent:         cfg.HTTP.UserAgent,
		MaxBytes:          cfg.HTTP.MaxBodyBytes,
		HTTPProxy:         cfg.HTTP.HTTPProxy,
		HTTPSProxy:        cfg.HTTP.HTTPSProxy,
		RequestsPerSecond: cfg.RateLimiting.RequestsPerSecond,
		Burst:             cfg.RateLimiting.BurstSize,
		RespectRobots:     cfg.HTTP.RespectRobots,
		Breaker: BreakerConfig{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			Window:           cfg.Breaker.Window,
			OpenFor:          cfg.Breaker.OpenFor,
			Logger:           logger,
		},
		Logger: logger,
	}
}

// Fetcher performs single best-effort GETs against remote data sources.
// It never retries: a failed fetch is reported once and the caller degrades.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	limiter    *Limiter
	breakers   *Breakers
	robots     *robotsPolicy
	group      singleflight.Group
	logger     logging.Logger
}

// NewFetcher creates a new Fetcher with the given configuration
func NewFetcher(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 5_000_000
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				Proxy: proxyFunc(opts.HTTPProxy, opts.HTTPSProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Published sheets redirect once to googleusercontent.com
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: opts.UserAgent,
		maxBytes:  opts.MaxBytes,
		limiter:   NewLimiter(opts.RequestsPerSecond, opts.Burst),
		breakers:  NewBreakers(opts.Breaker),
		logger:    opts.Logger,
	}
	if opts.RespectRobots {
		f.robots = newRobotsPolicy(f.httpClient, opts.UserAgent)
	}
	return f
}

// Result contains the fetched body and metadata
type Result struct {
	Body        []byte
	StatusCode  int
	ContentType string
	FinalURL    string
}

// Fetch retrieves rawURL. Concurrent fetches of the same URL share one request.
// Every failure wraps model.ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	v, err, shared := f.group.Do(rawURL, func() (any, error) {
		return f.fetch(ctx, rawURL)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		f.logger.WithField("url", rawURL).Debug("coalesced concurrent fetch")
	}
	return v.(*Result), nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (*Result, error) {
	host, err := hostOf(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url: %w", model.ErrFetchFailed, err)
	}

	var crawlDelay time.Duration
	if f.robots != nil {
		allowed, delay := f.robots.allowed(ctx, rawURL)
		if !allowed {
			return nil, fmt.Errorf("%w: disallowed by robots.txt: %s", model.ErrFetchFailed, rawURL)
		}
		crawlDelay = delay
	}

	if err := f.limiter.Wait(ctx, host, crawlDelay); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %w", model.ErrFetchFailed, err)
	}

	start := time.Now()
	v, err := f.breakers.Execute(host, func() (any, error) {
		return f.do(ctx, rawURL)
	})

	entry := f.logger.WithFields(logging.Fields{
		"host":     host,
		"url":      rawURL,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	})
	if err != nil {
		entry.WithError(err).Debug("fetch failed")
		if errors.Is(err, model.ErrFetchFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", model.ErrFetchFailed, err)
	}

	res := v.(*Result)
	entry.WithField("bytes", len(res.Body)).Debug("fetched")
	return res, nil
}

func (f *Fetcher) do(ctx context.Context, rawURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/csv,application/json,text/html;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	// Read one byte past the limit so a truncated table is an error, not data
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", f.maxBytes)
	}

	return &Result{
		Body:        body,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
	}, nil
}

// BreakerState exposes the circuit state for host
func (f *Fetcher) BreakerState(host string) BreakerState {
	return f.breakers.State(host)
}
