package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsPolicy_CrawlDelayAndCaching(t *testing.T) {
	var robotsHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			robotsHits.Add(1)
			_, _ = fmt.Fprint(w, "User-agent: Capsule\nDisallow: /private\nCrawl-delay: 2\n")
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := newRobotsPolicy(server.Client(), "Capsule/0.3 (+https://github.com/ppiankov/capsule)")
	ctx := context.Background()

	allowed, delay := p.allowed(ctx, server.URL+"/private/data.csv")
	if allowed {
		t.Error("expected /private to be disallowed")
	}
	if delay != 2*time.Second {
		t.Errorf("expected 2s crawl delay, got %v", delay)
	}

	if allowed, _ := p.allowed(ctx, server.URL+"/pub/data.csv?output=csv"); !allowed {
		t.Error("expected /pub to be allowed")
	}
	if robotsHits.Load() != 1 {
		t.Errorf("expected robots.txt to be fetched once, got %d", robotsHits.Load())
	}
}

func TestRobotsPolicy_StatusCodes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		allowed bool
	}{
		{"missing robots allows", http.StatusNotFound, true},
		{"server error disallows", http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/robots.txt" {
					w.WriteHeader(tt.status)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			p := newRobotsPolicy(server.Client(), "Capsule/0.3")
			if allowed, _ := p.allowed(context.Background(), server.URL+"/sheet.csv"); allowed != tt.allowed {
				t.Errorf("expected allowed=%v, got %v", tt.allowed, allowed)
			}
		})
	}
}

func TestRobotsPolicy_UnreachableAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p := newRobotsPolicy(&http.Client{Timeout: time.Second}, "Capsule/0.3")
	if allowed, _ := p.allowed(context.Background(), url+"/sheet.csv"); !allowed {
		t.Error("expected unreachable robots.txt to allow")
	}
}

func TestProductToken(t *testing.T) {
	tests := map[string]string{
		"Capsule/0.3 (+https://github.com/ppiankov/capsule)": "Capsule",
		"curl/8.0":  "curl",
		"plain":     "plain",
		"":          "",
	}
	for in, want := range tests {
		if got := productToken(in); got != want {
			t.Errorf("productToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProxyFunc(t *testing.T) {
	fn := proxyFunc("http://proxy.local:3128", "http://secure.local:3129")

	req, _ := http.NewRequest(http.MethodGet, "https://api.census.gov/data", nil)
	u, err := fn(req)
	if err != nil || u.Host != "secure.local:3129" {
		t.Errorf("https request: got %v, %v", u, err)
	}

	req, _ = http.NewRequest(http.MethodGet, "http://example.com/sheet.csv", nil)
	u, err = fn(req)
	if err != nil || u.Host != "proxy.local:3128" {
		t.Errorf("http request: got %v, %v", u, err)
	}

	bad := proxyFunc("http://bad host:80", "")
	if _, err := bad(req); err == nil {
		t.Error("expected error for malformed proxy URL")
	}
}
