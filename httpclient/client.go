package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/validvar/dev-tooling/resilience"
)

// Client is a session-oriented HTTP client with base-URL resolution,
// default headers, authentication, and transparent retry for idempotent
// requests. A Client owns its connection pool; it is safe for sequential
// reuse but is not synchronized for concurrent callers.
type Client struct {
	httpClient *http.Client
	config     Config
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
	}, nil
}

// SetHeaders merges the given headers into the client's persistent default
// headers. Later calls overwrite matching keys; keys are never removed.
func (c *Client) SetHeaders(headers map[string]string) {
	if c.config.Headers == nil {
		c.config.Headers = make(map[string]string, len(headers))
	}
	for k, v := range headers {
		c.config.Headers[k] = v
	}
}

// SetAuth replaces the client's default authentication. Misconfigured
// variants (missing credentials) are rejected.
func (c *Client) SetAuth(auth *AuthConfig) error {
	if err := auth.Validate(); err != nil {
		return err
	}
	c.config.Auth = auth
	return nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Close releases idle pooled connections. The client must not be used for
// further requests afterward.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.request(ctx, http.MethodGet, path, nil, opts)
}

// Post performs a POST request with the given body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, body, opts)
}

// Put performs a PUT request with the given body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.request(ctx, http.MethodPut, path, body, opts)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.request(ctx, http.MethodDelete, path, nil, opts)
}

// Head performs a HEAD request.
func (c *Client) Head(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.request(ctx, http.MethodHead, path, nil, opts)
}

// request assembles a Request from the verb helpers and executes it.
func (c *Client) request(ctx context.Context, method, path string, body any, opts []RequestOption) (*Response, error) {
	req := Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}
	return c.Do(ctx, req)
}

// Do executes an HTTP request. Completed exchanges return the response
// without error regardless of status; the error path is reserved for
// transport failures, invalid requests, and retry-policy exhaustion.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	policy := c.config.Retry
	if !policy.appliesTo(req.Method) {
		return c.doOnce(ctx, req)
	}

	return resilience.Retry(ctx, policy.retryConfig(), func() (*Response, error) {
		resp, err := c.doOnce(ctx, req)
		if err != nil {
			return nil, err
		}
		if policy.retriesStatus(resp.StatusCode) {
			return nil, ClassifyStatusCode(resp.StatusCode, resp.Body)
		}
		return resp, nil
	})
}

// doOnce builds and sends a single HTTP request.
func (c *Client) doOnce(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// buildURL resolves a request path against the base URL. Absolute URLs
// pass through untouched; otherwise the two sides are joined with exactly
// one separating slash.
func (c *Client) buildURL(path string) string {
	if c.config.BaseURL == "" || isAbsoluteURL(path) {
		return path
	}
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.buildURL(req.Path), body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	// Default headers first, request headers override.
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if c.config.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	if c.config.RequestIDHeader != "" {
		httpReq.Header.Set(c.config.RequestIDHeader, uuid.NewString())
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Request-level auth overrides client-level.
	auth := c.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(httpReq)

	return httpReq, nil
}

// retryConfig translates the policy into the generic retry machinery:
// delay before retry n (zero-indexed) is BackoffFactor * 2^n seconds.
func (p *RetryPolicy) retryConfig() resilience.RetryConfig {
	initial := time.Duration(p.BackoffFactor * float64(time.Second))
	return resilience.RetryConfig{
		MaxAttempts:    p.MaxRetries + 1,
		InitialBackoff: initial,
		MaxBackoff:     initial << uint(p.MaxRetries),
		BackoffFactor:  2.0,
		RetryIf:        IsRetryable,
	}
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case *MultipartBody:
		return v.encode()
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
