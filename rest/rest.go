// SPDX-FileCopyrightText: The tweetkit/places Authors
//
// SPDX-License-Identifier: MIT

// Package rest issues authenticated GET requests against the platform API and
// decodes their JSON responses. It is the transport layer underneath the
// places package; callers normally only touch it to construct a custom Client.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/tweetkit/places/auth"
)

const (
	// DefaultTimeout is the default per-request timeout of a Client
	DefaultTimeout = time.Second * 10
	// DefaultRetryMax is the default number of retries for transient failures
	DefaultRetryMax = 3
)

var (
	// version is the version of the module (will be set at build time)
	version = "dev"
	// UserAgent is the User-Agent sent with every API request
	UserAgent = fmt.Sprintf("tweetkit-places/%s (%s; %s; +https://github.com/tweetkit/places)",
		version,
		runtime.GOOS,
		runtime.GOARCH,
	)

	// DefaultClient is used by request executions that do not specify a Client
	DefaultClient = New()
)

// Client performs authenticated HTTP requests with retry and request pacing
type Client struct {
	http    *retryablehttp.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = timeout
	}
}

// WithRetryMax sets how often a transient failure is retried
func WithRetryMax(retries int) Option {
	return func(c *Client) {
		c.http.RetryMax = retries
	}
}

// WithLimiter sets a client-side rate limiter that every request waits on
// before it is sent
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithLogger sets the logger for request diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRoundTripper replaces the underlying HTTP transport
func WithRoundTripper(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.http.HTTPClient.Transport = transport
	}
}

// New returns a new Client
func New(opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = DefaultRetryMax
	rc.HTTPClient.Timeout = DefaultTimeout
	rc.Logger = nil
	// Hand the final response back instead of discarding it, so that a
	// persistent server error still surfaces its status and body.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		http:   rc,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Request is a prepared, unsent API request
type Request struct {
	method   string
	endpoint string
	token    auth.Token
	params   url.Values
}

// Get builds an authenticated GET request for the given endpoint and query
// parameters. A nil token leaves the request unauthenticated.
func Get(endpoint string, token auth.Token, params url.Values) *Request {
	return &Request{
		method:   http.MethodGet,
		endpoint: endpoint,
		token:    token,
		params:   params,
	}
}

// URL returns the full request URL including the encoded query string
func (r *Request) URL() string {
	if len(r.params) == 0 {
		return r.endpoint
	}
	return r.endpoint + "?" + r.params.Encode()
}

// RateLimit reports the quota headers the platform attaches to its responses
type RateLimit struct {
	// Limit is the total request allowance of the current window
	Limit int
	// Remaining is the number of requests left in the current window
	Remaining int
	// Reset is when the current window ends
	Reset time.Time
}

// Response wraps a decoded API payload together with its rate-limit bookkeeping
type Response[T any] struct {
	StatusCode int
	RateLimit  RateLimit
	Data       T
}

// JSON executes req on client and decodes the JSON response body into T.
// A nil client uses DefaultClient. Non-success responses are returned as an
// *APIError; transport errors and context cancellation pass through.
func JSON[T any](ctx context.Context, client *Client, req *Request) (*Response[T], error) {
	if client == nil {
		client = DefaultClient
	}
	if client.limiter != nil {
		if err := client.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	request, err := retryablehttp.NewRequestWithContext(ctx, req.method, req.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", UserAgent)
	if req.token != nil {
		if err = req.token.Authorize(request.Request); err != nil {
			return nil, fmt.Errorf("failed to authorize request: %w", err)
		}
	}

	client.logger.Debug("issuing API request",
		slog.String("method", req.method), slog.String("endpoint", req.endpoint))
	response, err := client.http.Do(request)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	if response == nil {
		return nil, errors.New("nil response received")
	}
	defer func() {
		if cerr := response.Body.Close(); cerr != nil {
			client.logger.Error("failed to close HTTP response body", slog.Any("error", cerr))
		}
	}()

	result := &Response[T]{
		StatusCode: response.StatusCode,
		RateLimit:  rateLimitFromHeader(response.Header),
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return result, apiError(response)
	}
	if err = json.NewDecoder(response.Body).Decode(&result.Data); err != nil {
		return result, fmt.Errorf("failed to decode JSON response: %w", err)
	}
	return result, nil
}

// rateLimitFromHeader parses the x-rate-limit-* headers. Missing or malformed
// headers leave the corresponding field at its zero value.
func rateLimitFromHeader(header http.Header) RateLimit {
	limit, _ := strconv.Atoi(header.Get("x-rate-limit-limit"))
	remaining, _ := strconv.Atoi(header.Get("x-rate-limit-remaining"))
	rl := RateLimit{Limit: limit, Remaining: remaining}
	if reset, err := strconv.ParseInt(header.Get("x-rate-limit-reset"), 10, 64); err == nil && reset > 0 {
		rl.Reset = time.Unix(reset, 0)
	}
	return rl
}
