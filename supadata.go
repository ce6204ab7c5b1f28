// Package supadata is a Go client for the Supadata API: transcripts and
// metadata for video platforms, plus web scraping, site mapping and
// crawling.
//
// A Client is safe to reuse across sequential calls; it holds no per-call
// state beyond the session configuration set at construction. Every
// operation performs a single synchronous HTTP round trip and maps the
// response into typed values. API-level failures surface as *Error;
// transport failures (connection refused, timeout, DNS) are returned as
// ordinary wrapped errors so callers can apply their own retry policy.
package supadata

import (
	"net/http"
	"strings"
	"time"
)

// Version of the SDK, reported in the User-Agent header.
const Version = "1.0.0"

const (
	defaultBaseURL = "https://api.supadata.ai/v1"
	userAgent      = "supadata-go/" + Version
)

// Client talks to the Supadata API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client

	// YouTube groups the YouTube-specific operations.
	YouTube *YouTubeService
	// Web groups scrape, map and crawl operations.
	Web *WebService
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient supplies the underlying transport. Timeouts, proxies and
// connection pooling are configured there; the SDK itself never retries.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client authenticated with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.YouTube = &YouTubeService{client: c}
	c.Web = &WebService{client: c}
	return c
}

// Int returns a pointer to v, for optional integer parameters.
func Int(v int) *int { return &v }

// validateLimit checks an optional result limit before any request is made.
func validateLimit(limit *int) error {
	if limit == nil {
		return nil
	}
	if *limit < 1 || *limit > 5000 {
		return invalidRequest("Invalid limit provided",
			"You provided a limit in an invalid format or amount.")
	}
	return nil
}
