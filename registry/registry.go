// Package registry scrapes the public well registry for data the filed
// completion reports do not carry: current status, closest city, cumulative
// production.
//
// The registry's search form is JavaScript-rendered, so finding a well's
// detail page takes a real browser (rod + stealth). The detail page itself
// is static HTML and is fetched with a plain HTTP GET, sanitized, and
// parsed with the same tolerant regexes used for report text.
package registry

import (
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://www.drillingedge.com"

// Config configures the registry client.
type Config struct {
	// BaseURL of the registry. Default: the public site.
	BaseURL string

	// UserAgent sent on detail-page fetches and set on the browser.
	UserAgent string

	// Timeout for detail-page HTTP fetches. Default: 30s.
	Timeout time.Duration

	// MaxBytes caps detail-page response bodies. Default: 10MB.
	MaxBytes int64

	// SearchTimeout bounds one search-form round trip. Default: 25s.
	SearchTimeout time.Duration

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0 Safari/537.36"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 10 * 1024 * 1024
	}
	if c.SearchTimeout <= 0 {
		c.SearchTimeout = 25 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Client looks up wells on the registry.
type Client struct {
	cfg     Config
	http    *http.Client
	browser *browserHandle
}

// New creates a Client. Call Connect before FindDetailURL; detail fetches
// work without a browser.
func New(cfg Config) *Client {
	cfg.defaults()
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}
