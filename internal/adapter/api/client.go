// Package api is the REST client for the remote flight booking API. It
// injects the bearer token, paces requests, maps failed responses to
// user-facing notifications and decodes the shared response envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/notify"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Config holds the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// RequestsPerSecond paces outgoing requests. Zero disables pacing.
	RequestsPerSecond float64
	Burst             int

	UserAgent string
}

// DefaultConfig returns the settings used by the browser client.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8080/api",
		Timeout:   10 * time.Second,
		Burst:     5,
		UserAgent: "travelctl",
	}
}

// Client talks to the remote API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	tokens    domain.TokenSource
	notifier  notify.Sink
	log       *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource sets where the bearer token comes from.
func WithTokenSource(ts domain.TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithNotifier sets the sink receiving transport and status failures.
func WithNotifier(n notify.Sink) Option {
	return func(c *Client) { c.notifier = n }
}

// WithLogger sets the request logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is
// overwritten by Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{},
	}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.Timeout = cfg.Timeout
	c.notifier = notify.OrNop(c.notifier)
	c.log = logger.OrNop(c.log).WithComponent("api")
	return c, nil
}

type request struct {
	method string
	path   string
	query  url.Values
	body   interface{}

	// fallback is the message used when a success=false envelope has no error.
	fallback string
}

// do performs one round trip and decodes the envelope into T.
func do[T any](ctx context.Context, c *Client, r request) (domain.Envelope[T], error) {
	var env domain.Envelope[T]

	requestID := uuid.New().String()
	log := c.log.WithRequestID(requestID)
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return env, c.transportFailure(log, r, err)
		}
	}

	req, err := c.newRequest(ctx, r, requestID)
	if err != nil {
		return env, &domain.APIError{Kind: domain.KindUnexpected, Message: msgUnexpected, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return env, c.transportFailure(log, r, err)
	}
	defer resp.Body.Close()

	event := log.Debug()
	if resp.StatusCode >= 400 {
		event = log.Warn()
	}
	event.
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := c.statusFailure(resp.StatusCode, body)
		c.notifier.Error(apiErr.Message)
		return env, apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		log.Error().Err(err).Str("path", r.path).Msg("decode response")
		return domain.Envelope[T]{}, &domain.APIError{
			Kind:    domain.KindDecode,
			Status:  resp.StatusCode,
			Message: msgUnexpected,
			Err:     err,
		}
	}
	if !env.Success {
		return env, domain.NewApplicationError(resp.StatusCode, env.Error, r.fallback)
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, r request, requestID string) (*http.Request, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) transportFailure(log *logger.Logger, r request, err error) *domain.APIError {
	log.Warn().Err(err).Str("method", r.method).Str("path", r.path).Msg("api request failed")
	apiErr := &domain.APIError{Kind: domain.KindNetwork, Message: msgNetwork, Err: err}
	c.notifier.Error(apiErr.Message)
	return apiErr
}

// statusFailure maps a non-2xx response. A 401 also drops the stored token.
func (c *Client) statusFailure(status int, body []byte) *domain.APIError {
	kind, msg := classify(status, bodyMessage(body))
	if kind == domain.KindUnauthorized && c.tokens != nil {
		c.tokens.ClearToken()
	}

	apiErr := domain.NewAPIError(kind, status, msg)
	var env domain.Envelope[json.RawMessage]
	if json.Unmarshal(body, &env) == nil {
		apiErr.Detail = env.Error
	}
	return apiErr
}
