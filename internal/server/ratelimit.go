package server

import (
	"net/http"
	"sync"
	"time"
)

// rateLimitEntry tracks one identifier's hits inside the current window
type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter is a fixed-window in-memory rate limiter. State lives in
// the instance, not in package globals, so each server (and each test)
// gets its own counters. It is per-process, not distributed; good enough
// to absorb short spam bursts on a single instance.
type RateLimiter struct {
	mu     sync.Mutex
	hits   map[string]*rateLimitEntry
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window
// for each identifier
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		hits:   make(map[string]*rateLimitEntry),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow reports whether one more request from identifier fits in the
// current window
func (l *RateLimiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.hits[identifier]
	if !ok || now.After(entry.resetTime) {
		l.hits[identifier] = &rateLimitEntry{count: 1, resetTime: now.Add(l.window)}
		return true
	}

	entry.count++
	return entry.count <= l.limit
}

// Prune drops expired entries so the map does not grow without bound
func (l *RateLimiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, entry := range l.hits {
		if now.After(entry.resetTime) {
			delete(l.hits, id)
		}
	}
}

// Middleware enforces the limit per authenticated user, falling back to
// the remote address for anything upstream of auth
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identifier := UserID(r)
		if identifier == "" {
			identifier = r.RemoteAddr
		}

		if !l.Allow(identifier) {
			respondError(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
