package httpclient

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestDoWithRetry_AllAttemptsFail(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(500)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.DoWithRetry(testContext(t), http.MethodPost, "/", 3, 0)
	if err == nil {
		t.Fatal("exhaustion must propagate an error")
	}
	if resp != nil {
		t.Error("exhaustion must not return a response")
	}
	if !IsServerError(err) {
		t.Errorf("expected server error, got %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 4 {
		t.Errorf("maxRetries=3 means 4 attempts, got %d", got)
	}
}

func TestDoWithRetry_SucceedsMidway(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 2 {
			w.WriteHeader(502)
			return
		}
		w.WriteHeader(200)
		w.Write([]byte(`done`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.DoWithRetry(testContext(t), http.MethodGet, "/", 3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "done" {
		t.Errorf("body = %q, want done", resp.Text())
	}
	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", got)
	}
}

func TestDoWithRetry_FirstAttemptSucceeds(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.DoWithRetry(testContext(t), http.MethodGet, "/", 5, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", got)
	}
}

func TestDoWithRetry_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable from here on

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.DoWithRetry(testContext(t), http.MethodGet, "/", 1, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsConnection(err) {
		t.Errorf("expected connection error, got %v", err)
	}
}

func TestDoWithRetry_PassesOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Try"); got != "yes" {
			t.Errorf("X-Try = %q, want yes", got)
		}
		if got := r.URL.Query().Get("q"); got != "1" {
			t.Errorf("q = %q, want 1", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.DoWithRetry(testContext(t), http.MethodGet, "/", 0, 0,
		WithHeader("X-Try", "yes"), WithQueryParam("q", "1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
