package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete capsule configuration
type Config struct {
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig    `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Breaker      BreakerConfig      `yaml:"breaker" mapstructure:"breaker"`
	Sources      SourcesConfig      `yaml:"sources" mapstructure:"sources"`
	Authority    AuthorityConfig    `yaml:"authority" mapstructure:"authority"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	Server       ServerConfig       `yaml:"server" mapstructure:"server"`
	Log          LogConfig          `yaml:"log" mapstructure:"log"`
}

// HTTPConfig controls the remote fetcher
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls adapter body caches
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	SheetTTL  time.Duration `yaml:"sheet_ttl" mapstructure:"sheet_ttl"`
	CensusTTL time.Duration `yaml:"census_ttl" mapstructure:"census_ttl"`
	MetalsTTL time.Duration `yaml:"metals_ttl" mapstructure:"metals_ttl"`
}

// RateLimitConfig bounds requests per remote host
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// BreakerConfig controls per-host circuit breakers
type BreakerConfig struct {
	FailureThreshold uint          `yaml:"failure_threshold" mapstructure:"failure_threshold"`
	Window           uint          `yaml:"window" mapstructure:"window"`
	OpenFor          time.Duration `yaml:"open_for" mapstructure:"open_for"`
}

// SourcesConfig locates remote data. An empty URL or key disables that tier.
type SourcesConfig struct {
	GovernorsCSV  string `yaml:"governors_csv" mapstructure:"governors_csv"`
	BillboardCSV  string `yaml:"billboard_csv" mapstructure:"billboard_csv"`
	GasPricesCSV  string `yaml:"gas_prices_csv" mapstructure:"gas_prices_csv"`
	CensusBaseURL string `yaml:"census_base_url" mapstructure:"census_base_url"`
	CensusAPIKey  string `yaml:"census_api_key,omitempty" mapstructure:"census_api_key"`
	MetalsBaseURL string `yaml:"metals_base_url" mapstructure:"metals_base_url"`
	MetalsAPIKey  string `yaml:"metals_api_key,omitempty" mapstructure:"metals_api_key"`
}

// AuthorityConfig configures source authority classification
type AuthorityConfig struct {
	PrimaryDomains   []string          `yaml:"primary_domains" mapstructure:"primary_domains"`
	SecondaryDomains []string          `yaml:"secondary_domains" mapstructure:"secondary_domains"`
	DomainMap        map[string]string `yaml:"domain_map,omitempty" mapstructure:"domain_map"`
}

// ConcurrencyConfig bounds the capsule/batch worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ServerConfig controls the HTTP surface
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// LogConfig controls structured logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "text" or "json"
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	cacheDir := filepath.Join(os.TempDir(), "capsule-cache")
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".capsule", "cache")
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:      20 * time.Second,
			UserAgent:    "Capsule/0.3 (+https://github.com/ppiankov/capsule)",
			MaxBodyBytes: 5_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			SheetTTL:  6 * time.Hour,
			CensusTTL: 24 * time.Hour,
			MetalsTTL: 2 * time.Hour,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Breaker: BreakerConfig{
			FailureThreshold: 3,
			Window:           5,
			OpenFor:          30 * time.Second,
		},
		Sources: SourcesConfig{
			CensusBaseURL: "https://api.census.gov/data",
			MetalsBaseURL: "https://metals-api.com/api",
		},
		Authority: AuthorityConfig{
			PrimaryDomains: []string{
				"census.gov",
				"bls.gov",
				"dol.gov",
				"eia.gov",
				"archives.gov",
				"nga.org",
			},
			SecondaryDomains: []string{
				"billboard.com",
				"nfl.com",
				"wikipedia.org",
				"metals-api.com",
				"britannica.com",
				"lbma.org.uk",
			},
			DomainMap: map[string]string{
				"docs.google.com": "tertiary",
			},
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
