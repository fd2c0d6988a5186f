// internal/app/system/ratelimit/ratelimit.go

// Package ratelimit throttles repeated requests from one source. It
// backs the sign-in surfaces: the admin password form and the JSON
// login endpoint are both static-credential targets worth protecting
// from guessing.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limiter counts requests per key in a sliding window.
// Safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	duration time.Duration
	cleanup  time.Duration
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a limiter allowing limit requests per duration per key.
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		cleanup:  duration * 2,
	}
	go l.cleanupLoop()
	return l
}

// Allow records a request for key and reports whether it is within the
// limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, exists := l.windows[key]

	if !exists || now.After(w.expiresAt) {
		l.windows[key] = &window{
			count:     1,
			expiresAt: now.Add(l.duration),
		}
		return true
	}

	if w.count >= l.limit {
		return false
	}

	w.count++
	return true
}

// Reset clears the window for a key. Called after a successful sign-in
// so a legitimate user who fumbled their password is not locked out.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// cleanupLoop drops expired windows so the map does not grow without
// bound.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, w := range l.windows {
			if now.After(w.expiresAt) {
				delete(l.windows, key)
			}
		}
		l.mu.Unlock()
	}
}

// ClientIP extracts the client IP from a request, honoring proxy
// headers before falling back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LoginLimiter throttles sign-in attempts on two axes: per source IP
// (distributed guessing) and per account key (targeting one account).
type LoginLimiter struct {
	ipLimiter  *Limiter
	keyLimiter *Limiter
}

// NewLoginLimiter returns a limiter with defaults suited to the login
// form: 10 attempts per IP per minute, 5 per account per 5 minutes.
func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		ipLimiter:  New(10, time.Minute),
		keyLimiter: New(5, 5*time.Minute),
	}
}

// Check reports whether a sign-in attempt should proceed. The returned
// reason is user-facing text for the blocked case.
func (ll *LoginLimiter) Check(r *http.Request, key string) (bool, string) {
	if !ll.ipLimiter.Allow(ClientIP(r)) {
		return false, "Too many sign-in attempts. Please wait a minute before trying again."
	}
	if key != "" {
		if !ll.keyLimiter.Allow(normalizeKey(key)) {
			return false, "Too many sign-in attempts for this account. Please wait a few minutes."
		}
	}
	return true, ""
}

// ResetKey clears the per-account window after a successful sign-in.
func (ll *LoginLimiter) ResetKey(key string) {
	if key != "" {
		ll.keyLimiter.Reset(normalizeKey(key))
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
