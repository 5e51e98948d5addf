package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterAllowWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("203.0.113.7") {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if rl.Allow("203.0.113.7") {
		t.Error("request beyond burst should be rejected")
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	if !rl.Allow("203.0.113.7") {
		t.Fatal("first ip should be allowed")
	}
	if rl.Allow("203.0.113.7") {
		t.Error("first ip should be exhausted")
	}
	if !rl.Allow("198.51.100.4") {
		t.Error("second ip has its own bucket")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.Header.Set("X-Real-Ip", "203.0.113.7")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", rec.Code)
	}
}

func TestRateLimitMiddlewareFallsBackToRemoteAddr(t *testing.T) {
	h := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	first.RemoteAddr = "192.0.2.1:1111"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("same remote addr: expected 429, got %d", rec.Code)
	}

	other := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	other.RemoteAddr = "192.0.2.2:2222"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	if rec.Code != http.StatusOK {
		t.Errorf("different remote addr: expected 200, got %d", rec.Code)
	}
}
