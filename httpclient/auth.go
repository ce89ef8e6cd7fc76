package httpclient

import "net/http"

// DefaultAPIKeyHeader is the header used for API key auth when no custom
// header name is configured.
const DefaultAPIKeyHeader = "X-API-Key"

// AuthType identifies the authentication method. The set is closed: every
// variant is handled explicitly and misconfigured variants are rejected by
// Validate rather than silently ignored.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthBearer sends an Authorization: Bearer header.
	AuthBearer
	// AuthAPIKey sends the key in a configurable header.
	AuthAPIKey
)

// String returns the auth type name.
func (t AuthType) String() string {
	switch t {
	case AuthNone:
		return "none"
	case AuthBasic:
		return "basic"
	case AuthBearer:
		return "bearer"
	case AuthAPIKey:
		return "api_key"
	default:
		return "unknown"
	}
}

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Token is the bearer token (AuthBearer).
	Token string
	// Key is the API key value (AuthAPIKey).
	Key string
	// HeaderName is the API key header name (AuthAPIKey).
	// Defaults to DefaultAPIKeyHeader.
	HeaderName string
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// APIKeyAuth creates an API key auth config using the default header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, HeaderName: DefaultAPIKeyHeader}
}

// APIKeyAuthHeader creates an API key auth config with a custom header name.
func APIKeyAuthHeader(key, headerName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, HeaderName: headerName}
}

// Validate checks that the variant carries the credentials it needs.
func (a *AuthConfig) Validate() error {
	if a == nil {
		return nil
	}
	switch a.Type {
	case AuthNone:
		return nil
	case AuthBasic:
		if a.Username == "" || a.Password == "" {
			return NewValidationError("basic auth requires username and password")
		}
	case AuthBearer:
		if a.Token == "" {
			return NewValidationError("bearer auth requires a token")
		}
	case AuthAPIKey:
		if a.Key == "" {
			return NewValidationError("api key auth requires a key")
		}
	default:
		return NewValidationError("unknown auth type")
	}
	return nil
}

// apply attaches the configured credentials to an outgoing request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthAPIKey:
		name := a.HeaderName
		if name == "" {
			name = DefaultAPIKeyHeader
		}
		req.Header.Set(name, a.Key)
	}
}
