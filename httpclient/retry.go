package httpclient

import (
	"context"
	"math"
	"time"
)

// DoWithRetry executes a request with an explicit bounded-retry loop,
// independent of the client's idempotent retry policy and applicable to
// any method. A non-2xx response counts as a failed attempt. The request
// is attempted up to maxRetries+1 times; between attempts the call sleeps
// backoffFactor * 2^attempt seconds (attempt zero-indexed). The final
// failure always propagates as an error; exhaustion never yields a nil
// error with a nil response.
func (c *Client) DoWithRetry(ctx context.Context, method, path string, maxRetries int, backoffFactor float64, opts ...RequestOption) (*Response, error) {
	req := Request{Method: method, Path: path}
	for _, opt := range opts {
		opt(&req)
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err := c.doOnce(ctx, req)
		if err == nil {
			statusErr := resp.Error()
			if statusErr == nil {
				return resp, nil
			}
			err = statusErr
		}
		lastErr = err

		if attempt == maxRetries {
			break
		}

		delay := time.Duration(backoffFactor * math.Pow(2, float64(attempt)) * float64(time.Second))
		if delay <= 0 {
			continue
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, NewTimeoutError(ctx.Err())
		case <-timer.C:
		}
	}

	return nil, lastErr
}
