package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerWindow int           // Number of requests allowed per window
	Window            time.Duration // Time window for rate limiting
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a fixed-window request counter keyed by client address.
// Counters live in process memory: this deployment serves a single
// browser profile and has no shared infrastructure to count in.
type RateLimiter struct {
	config  RateLimitConfig
	logger  *zap.Logger
	mu      sync.Mutex
	windows map[string]*rateWindow
}

// NewRateLimiter creates a rate limiter with the given config
func NewRateLimiter(config RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		config:  config,
		logger:  logger,
		windows: make(map[string]*rateWindow),
	}
}

// take counts one request for clientID and reports whether it is still
// within the window's budget, along with the remaining budget and reset
// time.
func (l *RateLimiter) take(clientID string, now time.Time) (allowed bool, remaining int, resetAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[clientID]
	if !ok || now.After(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(l.config.Window)}
		l.windows[clientID] = w
	}

	w.count++
	remaining = l.config.RequestsPerWindow - w.count
	if remaining < 0 {
		remaining = 0
	}

	return w.count <= l.config.RequestsPerWindow, remaining, w.resetAt
}

// Handler wraps an http.Handler with rate limiting
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, resetAt := l.take(r.RemoteAddr, time.Now())

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.config.RequestsPerWindow))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(time.Until(resetAt).Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			l.logger.Warn("Rate limit exceeded",
				zap.String("client", r.RemoteAddr),
				zap.String("path", r.URL.Path),
			)

			RespondWithError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
