// Package httpds implements an HTTP(S) input source with retry and backoff,
// so a dictionary or data file can be read straight from a URL.
package httpds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Config configures a Remote. Zero values get defaults: Timeout 30s,
// InitialBackoff 200ms, MaxBackoff 5s. MaxRetries 0 means a single attempt.
type Config struct {
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// Header is added to every request.
	Header http.Header

	// Transport overrides http.DefaultTransport.
	Transport http.RoundTripper
}

// Remote is an input source backed by an HTTP GET.
type Remote struct {
	url            string
	client         *http.Client
	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	header         http.Header

	// wait is injectable so tests do not sleep.
	wait func(ctx context.Context, d time.Duration) error
}

// NewRemote returns a Remote that downloads url.
func NewRemote(url string, cfg Config) *Remote {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 200 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 5 * time.Second
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Remote{
		url:            url,
		client:         &http.Client{Timeout: cfg.Timeout, Transport: transport},
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		header:         cfg.Header.Clone(),
		wait:           waitContext,
	}
}

// Name returns the URL.
func (r *Remote) Name() string { return r.url }

// Open issues the GET and returns the response body. Transport errors, 429
// and 5xx are retried with exponential backoff. 404 and 410 wrap
// os.ErrNotExist so callers treat a missing remote file like a missing local
// one. Any other non-2xx status is an error.
func (r *Remote) Open(ctx context.Context) (io.ReadCloser, error) {
	attempts := r.maxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 0 {
			if err := r.wait(ctx, backoff(r.initialBackoff, attempt-1, r.maxBackoff)); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
		if err != nil {
			return nil, fmt.Errorf("httpds: build request: %w", err)
		}
		for k, vs := range r.header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}

		resp, err := r.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("httpds: get %s: %w", r.url, err)
			continue
		}
		switch code := resp.StatusCode; {
		case code >= 200 && code <= 299:
			return resp.Body, nil
		case code == http.StatusNotFound || code == http.StatusGone:
			resp.Body.Close()
			return nil, fmt.Errorf("httpds: get %s: status %d: %w", r.url, code, os.ErrNotExist)
		case retryable(code):
			resp.Body.Close()
			lastErr = fmt.Errorf("httpds: get %s: retryable status %d", r.url, code)
		default:
			resp.Body.Close()
			return nil, fmt.Errorf("httpds: get %s: status %d", r.url, code)
		}
	}
	return nil, lastErr
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || (code >= 500 && code <= 599)
}

// backoff returns initial*2^retry clamped to max.
func backoff(initial time.Duration, retry int, max time.Duration) time.Duration {
	d := initial
	for i := 0; i < retry && d < max; i++ {
		d *= 2
	}
	if d > max {
		return max
	}
	return d
}

func waitContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
