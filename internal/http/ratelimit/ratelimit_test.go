package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func serve(l *IPRateLimiter, remoteAddr, xff string) int {
	handler := l.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitPerIP(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 2, time.Minute, nil)

	if code := serve(l, "10.1.1.1:1234", ""); code != http.StatusOK {
		t.Fatalf("first request = %d", code)
	}
	if code := serve(l, "10.1.1.1:1234", ""); code != http.StatusOK {
		t.Fatalf("second request within burst = %d", code)
	}
	if code := serve(l, "10.1.1.1:1234", ""); code != http.StatusTooManyRequests {
		t.Errorf("over-budget request = %d, want 429", code)
	}

	// A different client keeps its own bucket.
	if code := serve(l, "10.1.1.2:1234", ""); code != http.StatusOK {
		t.Errorf("other client = %d", code)
	}
}

func TestForwardedHeaderOnlyFromTrustedProxy(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 1, time.Minute, []string{"192.168.0.1"})

	// From the trusted proxy the forwarded client is counted.
	if code := serve(l, "192.168.0.1:1234", "203.0.113.7"); code != http.StatusOK {
		t.Fatalf("forwarded request = %d", code)
	}
	if code := serve(l, "192.168.0.1:1234", "203.0.113.7"); code != http.StatusTooManyRequests {
		t.Errorf("same forwarded client = %d, want 429", code)
	}
	if code := serve(l, "192.168.0.1:1234", "203.0.113.8"); code != http.StatusOK {
		t.Errorf("different forwarded client = %d", code)
	}

	// From an untrusted peer the header is ignored, so both requests
	// drain the peer's own bucket.
	if code := serve(l, "198.51.100.9:1234", "203.0.113.9"); code != http.StatusOK {
		t.Fatalf("untrusted peer first request = %d", code)
	}
	if code := serve(l, "198.51.100.9:1234", "203.0.113.10"); code != http.StatusTooManyRequests {
		t.Errorf("untrusted peer spoofing new client = %d, want 429", code)
	}
}
