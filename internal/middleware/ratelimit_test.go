package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBoundsRequestsPerClient(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.allow("203.0.113.7") {
			t.Fatalf("request %d within the limit should pass", i+1)
		}
	}
	if rl.allow("203.0.113.7") {
		t.Error("request over the limit should be denied")
	}

	// Another client has its own budget.
	if !rl.allow("203.0.113.8") {
		t.Error("a different client must not share the exhausted budget")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	rl.allow("203.0.113.7")
	if rl.allow("203.0.113.7") {
		t.Error("limit should be exhausted")
	}

	time.Sleep(150 * time.Millisecond)
	if !rl.allow("203.0.113.7") {
		t.Error("budget should refill once the window has passed")
	}
}

func TestRateLimiterMiddlewareReturns429(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)
	defer rl.Stop()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	generate := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
		req.RemoteAddr = "203.0.113.7:50412"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		if rr := generate(); rr.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, rr.Code)
		}
	}
	if rr := generate(); rr.Code != http.StatusTooManyRequests {
		t.Errorf("over-limit request: got status %d, want 429", rr.Code)
	}
}

// TestClientIP pins the identity the limiter keys on: the first
// X-Forwarded-For hop when a proxy fronts the service, then X-Real-IP,
// then the bare remote address.
func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{name: "forwarded single hop", xff: "198.51.100.4", remoteAddr: "10.0.0.1:9000", want: "198.51.100.4"},
		{name: "forwarded chain uses origin", xff: "198.51.100.4, 10.0.0.2, 10.0.0.1", remoteAddr: "10.0.0.1:9000", want: "198.51.100.4"},
		{name: "real-ip header", xri: "198.51.100.9", remoteAddr: "10.0.0.1:9000", want: "198.51.100.9"},
		{name: "direct connection", remoteAddr: "198.51.100.12:44321", want: "198.51.100.12"},
		{name: "remote addr without port", remoteAddr: "198.51.100.12", want: "198.51.100.12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterCleanupDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(10, 100*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	rl.allow("203.0.113.8")

	// Let both expire, then refresh only one.
	time.Sleep(150 * time.Millisecond)
	rl.allow("203.0.113.8")

	rl.cleanup()

	rl.mu.RLock()
	_, idleKept := rl.clients["203.0.113.7"]
	_, activeKept := rl.clients["203.0.113.8"]
	rl.mu.RUnlock()

	if idleKept {
		t.Error("client with only expired requests should be dropped")
	}
	if !activeKept {
		t.Error("client with a fresh request must survive cleanup")
	}
}
