package httpclient

import (
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultChunkSize = 8192
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is prepended to relative request paths. Optional; absolute
	// paths always pass through untouched.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests. SetHeaders
	// merges into this set after construction.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// UserAgent is sent as the User-Agent header when set.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// RequestIDHeader, when set, names a header that receives a fresh
	// UUID on every outgoing request (e.g. "X-Request-ID").
	RequestIDHeader string `yaml:"request_id_header" mapstructure:"request_id_header"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// Retry is the transparent retry policy for idempotent requests.
	// Nil selects DefaultRetryPolicy; use &RetryPolicy{} to disable.
	Retry *RetryPolicy `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Retry == nil {
		c.Retry = DefaultRetryPolicy()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return NewValidationError("timeout must be positive")
	}
	if c.Auth != nil {
		if err := c.Auth.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RetryPolicy governs the transparent retry applied by the client to
// idempotent requests. It never applies to other methods; use DoWithRetry
// for those.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// Statuses are the response status codes that trigger a retry.
	Statuses []int
	// Methods are the HTTP methods the policy applies to.
	Methods []string
	// BackoffFactor scales the exponential delay: the wait before retry
	// n (zero-indexed) is BackoffFactor * 2^n seconds.
	BackoffFactor float64
}

// DefaultRetryPolicy returns the policy installed when Config.Retry is nil:
// 3 retries on 429/500/502/503/504 for HEAD, GET and OPTIONS, doubling
// delays starting at one second.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxRetries:    3,
		Statuses:      []int{429, 500, 502, 503, 504},
		Methods:       []string{http.MethodHead, http.MethodGet, http.MethodOptions},
		BackoffFactor: 1,
	}
}

// appliesTo reports whether the policy covers the given method.
func (p *RetryPolicy) appliesTo(method string) bool {
	if p == nil || p.MaxRetries <= 0 {
		return false
	}
	for _, m := range p.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// retriesStatus reports whether a response status triggers a retry.
func (p *RetryPolicy) retriesStatus(status int) bool {
	for _, s := range p.Statuses {
		if s == status {
			return true
		}
	}
	return false
}
