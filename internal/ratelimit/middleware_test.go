package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMiddlewareEnforcesLimit(t *testing.T) {
	limiter, _ := newLimiter(t)
	handler := Handler{
		Limiter: limiter,
		Config: Config{
			Key:    ByClientIP,
			Window: time.Minute,
			Max:    1,
		},
	}

	wrapped := handler.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil)
	req.RemoteAddr = "203.0.113.7:52001"

	first := httptest.NewRecorder()
	wrapped.ServeHTTP(first, req.Clone(req.Context()))
	if first.Code != http.StatusCreated {
		t.Fatalf("first submission should pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	wrapped.ServeHTTP(second, req.Clone(req.Context()))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second submission should be throttled, got %d", second.Code)
	}
	if second.Header().Get("X-RateLimit-Limit") != "1" {
		t.Fatalf("unexpected limit header %q", second.Header().Get("X-RateLimit-Limit"))
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatal("throttled response should carry Retry-After")
	}
}

func TestMiddlewareFailsOpenOnRedisError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer func() { _ = client.Close() }()

	var reported error
	handler := Handler{
		Limiter: Limiter{Client: client, Prefix: "storefront:rl:"},
		Config: Config{
			Key:    ByClientIP,
			Window: time.Minute,
			Max:    1,
		},
		OnError: func(err error) { reported = err },
	}

	wrapped := handler.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("limiter outage must not block issuance, got %d", rec.Code)
	}
	if reported == nil {
		t.Fatal("expected the limiter error to be reported")
	}
}

func TestByClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil)
	req.RemoteAddr = "203.0.113.7:52001"
	if got := ByClientIP(req); got != "203.0.113.7" {
		t.Fatalf("got %q", got)
	}
	req.RemoteAddr = "noport"
	if got := ByClientIP(req); got != "noport" {
		t.Fatalf("got %q", got)
	}
}
