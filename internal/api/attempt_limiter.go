package api

import (
	"strings"
	"sync"
	"time"
)

// loginAttemptLimiter throttles repeated failed logins per email+IP key.
// Successful logins clear the key.
type loginAttemptLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	attempts map[string][]time.Time
}

func newLoginAttemptLimiter(limit int, window time.Duration) *loginAttemptLimiter {
	return &loginAttemptLimiter{
		limit:    limit,
		window:   window,
		attempts: make(map[string][]time.Time),
	}
}

func loginAttemptKey(email string, clientIP string) string {
	return strings.ToLower(strings.TrimSpace(email)) + "|" + strings.TrimSpace(clientIP)
}

func (limiter *loginAttemptLimiter) blocked(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	return len(limiter.pruneLocked(key, now)) >= limiter.limit
}

func (limiter *loginAttemptLimiter) recordFailure(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	recent := limiter.pruneLocked(key, now)
	limiter.attempts[key] = append(recent, now)
}

func (limiter *loginAttemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.attempts, key)
}

func (limiter *loginAttemptLimiter) pruneLocked(key string, now time.Time) []time.Time {
	values := limiter.attempts[key]
	if len(values) == 0 {
		return []time.Time{}
	}

	cutoff := now.Add(-limiter.window)
	recent := values[:0]
	for _, value := range values {
		if value.After(cutoff) {
			recent = append(recent, value)
		}
	}
	limiter.attempts[key] = recent
	return recent
}
