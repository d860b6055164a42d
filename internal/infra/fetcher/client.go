// Package fetcher provides the polite HTTP client shared by every source
// adapter. It performs a single identified GET with a bounded timeout and
// converts every failure into an absent response, classified and logged,
// so callers can substitute empty field values and continue.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sony/gobreaker"

	"github.com/sufideen/uk-news-scraper/internal/observability/metrics"
	"github.com/sufideen/uk-news-scraper/internal/resilience/circuitbreaker"
)

// Failure classifications for outbound fetches.
var (
	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("fetch timeout")

	// ErrHTTPStatus indicates a terminal non-success HTTP status.
	ErrHTTPStatus = errors.New("fetch http status")

	// ErrNetwork indicates any other transport or network failure.
	ErrNetwork = errors.New("fetch network error")
)

// Config holds the configuration for the polite fetch client.
type Config struct {
	// UserAgent is the fixed client identity sent with every request.
	UserAgent string

	// Timeout bounds each request end to end.
	Timeout time.Duration

	// MaxBodySize caps the response body read, in bytes.
	MaxBodySize int64
}

// DefaultConfig returns the client defaults: a 15 second timeout and a
// 10MB body cap.
func DefaultConfig(userAgent string) Config {
	return Config{
		UserAgent:   userAgent,
		Timeout:     15 * time.Second,
		MaxBodySize: 10 * 1024 * 1024,
	}
}

// Client is a polite HTTP GET client. It never retries: a failed fetch
// yields an absent result and the caller proceeds gracefully.
//
// Client is safe for concurrent use.
type Client struct {
	http    *http.Client
	cfg     Config
	breaker *circuitbreaker.CircuitBreaker
	logger  *slog.Logger
}

// New creates a fetch client with the given configuration and event sink.
// The optional breaker short-circuits requests once an origin is clearly
// down; pass nil to disable it.
func New(cfg Config, breaker *circuitbreaker.CircuitBreaker, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		breaker: breaker,
		logger:  logger,
	}
}

// Get issues a single HTTP GET to the given URL and returns the response
// body. The second return value reports whether a response was obtained:
// on any failure (timeout, terminal HTTP status, transport error, open
// circuit) it is false and the failure has already been classified,
// logged, and counted. An empty URL short-circuits without a network call.
func (c *Client) Get(ctx context.Context, url string) ([]byte, bool) {
	if url == "" {
		return nil, false
	}

	var body []byte
	var err error
	if c.breaker != nil {
		var result interface{}
		result, err = c.breaker.Execute(func() (interface{}, error) {
			return c.doGet(ctx, url)
		})
		if err == nil {
			body = result.([]byte)
		}
	} else {
		body, err = c.doGet(ctx, url)
	}

	if err != nil {
		c.logFailure(url, err)
		return nil, false
	}
	return body, true
}

// doGet performs the actual request and classifies failures.
func (c *Client) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Redirects are followed by the client, so anything outside 2xx/3xx
	// here is a terminal status.
	if resp.StatusCode < 200 || resp.StatusCode > 399 {
		return nil, fmt.Errorf("%w: HTTP %d for %s", ErrHTTPStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBodySize))
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return body, nil
}

// logFailure emits one structured warning per failed fetch and records
// the matching metric. Failures are non-fatal to the caller.
func (c *Client) logFailure(url string, err error) {
	kind := "network"
	switch {
	case errors.Is(err, ErrTimeout):
		kind = "timeout"
	case errors.Is(err, ErrHTTPStatus):
		kind = "http_status"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		kind = "circuit_open"
	}

	metrics.RecordFetchFailure(kind)
	c.logger.Warn("fetch failed",
		slog.String("url", url),
		slog.String("kind", kind),
		slog.Any("error", err))
}

// isTimeout reports whether err (or the context) represents a deadline hit.
func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return os.IsTimeout(err)
}
