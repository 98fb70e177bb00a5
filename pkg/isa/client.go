// Package isa provides clients for the insurance service API: reference-data
// lookups and the quotation/policy/payment lifecycle.
package isa

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/quote-wizard/internal/resilience"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "https://api.example.com"

// Option configures a client.
type Option func(*transport)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(t *transport) {
		t.http = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(t *transport) {
		if d > 0 {
			t.http.Timeout = d
		}
	}
}

// WithRateLimiter bounds the outgoing request rate.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(t *transport) {
		t.limiter = l
	}
}

// WithReadRetry overrides the retry policy for GET requests.
func WithReadRetry(cfg resilience.RetryConfig) Option {
	return func(t *transport) {
		t.readRetry = cfg
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(t *transport) {
		t.userAgent = ua
	}
}

type transport struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	readRetry resilience.RetryConfig
	userAgent string
}

func newTransport(baseURL string, opts ...Option) *transport {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	t := &transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		readRetry: resilience.QueryRetryConfig(),
		userAgent: "quote-wizard/1.0",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// get issues a GET and decodes the JSON response into out. Transient failures
// are retried according to the read policy.
func (t *transport) get(ctx context.Context, path string, out any) error {
	cfg := t.readRetry
	cfg.ShouldRetry = isRetryable
	if cfg.OnRetry == nil {
		cfg.OnRetry = resilience.RetryLogger(http.MethodGet, path)
	}
	return resilience.Do(ctx, cfg, func(ctx context.Context) error {
		return t.do(ctx, http.MethodGet, path, nil, out)
	})
}

// post issues a single POST with a JSON body. Writes are never retried.
func (t *transport) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return eris.Wrap(err, "isa: marshal request")
	}
	return t.do(ctx, http.MethodPost, path, body, out)
}

func (t *transport) do(ctx context.Context, method, path string, body []byte, out any) error {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return eris.Wrap(err, "isa: rate limit wait")
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return eris.Wrap(err, "isa: create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if !statusOK(resp.StatusCode) {
		return responseError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrapf(err, "isa: unmarshal %s %s response", method, path)
	}
	return nil
}
