package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/temoto/robotstxt"
)

const (
	robotsTTL      = 24 * time.Hour
	robotsMaxBytes = 512 << 10
)

// robotsPolicy answers robots.txt questions for sheet and API hosts. Parsed
// files are kept for robotsTTL per scheme and host.
type robotsPolicy struct {
	client *http.Client
	agent  string // Product token matched against User-agent groups
	ua     string
	files  *gocache.Cache
}

func newRobotsPolicy(client *http.Client, userAgent string) *robotsPolicy {
	return &robotsPolicy{
		client: client,
		agent:  productToken(userAgent),
		ua:     userAgent,
		files:  gocache.New(robotsTTL, time.Hour),
	}
}

// allowed reports whether rawURL may be fetched and the host's crawl delay.
// A robots.txt that cannot be fetched allows everything.
func (p *robotsPolicy) allowed(ctx context.Context, rawURL string) (bool, time.Duration) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, 0
	}

	data := p.load(ctx, u.Scheme+"://"+u.Host)
	if data == nil {
		return true, 0
	}

	path := u.EscapedPath()
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	var delay time.Duration
	if group := data.FindGroup(p.agent); group != nil {
		delay = group.CrawlDelay
	}
	return data.TestAgent(path, p.agent), delay
}

func (p *robotsPolicy) load(ctx context.Context, origin string) *robotstxt.RobotsData {
	if v, ok := p.files.Get(origin); ok {
		return v.(*robotstxt.RobotsData)
	}

	data, err := p.fetch(ctx, origin+"/robots.txt")
	if err != nil {
		return nil
	}
	p.files.SetDefault(origin, data)
	return data
}

func (p *robotsPolicy) fetch(ctx context.Context, robotsURL string) (*robotstxt.RobotsData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.ua)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, robotsMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}

	// 4xx allows everything, 5xx disallows everything
	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}
	return data, nil
}

// productToken reduces "Capsule/0.3 (+https://...)" to "Capsule"
func productToken(ua string) string {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return ua
	}
	product, _, _ := strings.Cut(fields[0], "/")
	return product
}
