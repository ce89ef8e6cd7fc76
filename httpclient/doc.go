// Package httpclient provides a session-oriented HTTP client facade with
// base-URL resolution, default headers, authentication, bounded retries,
// and file transfer helpers.
//
// A Client owns its connection pool: one instance equals one pool, opened
// at construction and released by Close. Idempotent requests (HEAD, GET,
// OPTIONS) are retried transparently on 429/5xx responses according to the
// client's RetryPolicy; DoWithRetry layers an explicit retry loop over any
// method.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	resp, err := client.Get(ctx, "/users/123")
//
// Verb helpers return the response without error on non-2xx status; use
// Response.Error or ParseResponse to inspect the outcome. DoWithRetry is
// the exception: it treats non-2xx as a failed attempt and propagates an
// error once its attempts are exhausted.
package httpclient
