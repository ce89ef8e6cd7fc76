package httpclient

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Response parse formats accepted by ParseResponse.
const (
	FormatJSON  = "json"
	FormatText  = "text"
	FormatBytes = "bytes"
)

// IsValidURL reports whether the URL parses with both a scheme and a host.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// ParseResponse interprets a response body according to the expected
// format. For FormatJSON a decode failure never propagates: the result is
// the fallback map {"error": "Invalid JSON response", "content": <text>}.
// FormatBytes returns the raw bytes; FormatText and unrecognized formats
// return the body as a string.
func ParseResponse(resp *Response, format string) any {
	switch format {
	case FormatJSON:
		var v any
		if err := json.Unmarshal(resp.Body, &v); err != nil {
			return map[string]any{
				"error":   "Invalid JSON response",
				"content": resp.Text(),
			}
		}
		return v
	case FormatBytes:
		return resp.Body
	default:
		return resp.Text()
	}
}

// BuildQueryString URL-encodes the given parameters, dropping any key
// whose value is nil.
func BuildQueryString(params map[string]any) string {
	values := url.Values{}
	for k, v := range params {
		if v == nil {
			continue
		}
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode()
}
