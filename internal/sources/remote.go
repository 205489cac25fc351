package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/capsule/internal/cache"
	"github.com/ppiankov/capsule/internal/metrics"
	"github.com/ppiankov/capsule/internal/model"
	"github.com/ppiankov/capsule/internal/table"
)

// remote is the fetch-and-cache core shared by remote adapters. Each adapter
// owns its cache; the resolver never sees freshness.
type remote struct {
	name    string
	fetcher Fetcher
	cache   cache.Cache
	ttl     time.Duration
}

func newRemote(name string, fetcher Fetcher, c cache.Cache, ttl time.Duration) remote {
	if c == nil {
		c = cache.Noop{}
	}
	return remote{name: name, fetcher: fetcher, cache: c, ttl: ttl}
}

// body returns the cached body for url or fetches it once. check validates a
// fresh body before it is cached, so bad responses are never served from cache.
func (r *remote) body(ctx context.Context, url string, check func([]byte) error) ([]byte, error) {
	key := cache.CacheKey(r.name, url)
	if data, ok := r.cache.Get(key); ok {
		metrics.RecordCache(r.name, true)
		return data, nil
	}
	metrics.RecordCache(r.name, false)

	res, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.name, err)
	}
	if check != nil {
		if err := check(res.Body); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", model.ErrFetchFailed, r.name, err)
		}
	}

	// A failed cache write only costs a refetch
	_ = r.cache.Set(key, res.Body, r.ttl)
	return res.Body, nil
}

// table fetches url and parses it as a CSV or published HTML sheet
func (r *remote) table(ctx context.Context, url string) (*table.Table, error) {
	data, err := r.body(ctx, url, func(b []byte) error {
		_, err := table.Parse(b)
		return err
	})
	if err != nil {
		return nil, err
	}
	t, err := table.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrFetchFailed, r.name, err)
	}
	return t, nil
}
