package accounts

import (
	"sync"
	"time"
)

// Throttle limits login attempts per identity over a fixed window. The
// original app had no brake at all on password guessing; this is the
// minimum viable one.
type Throttle struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	attempts map[string][]time.Time
	now      func() time.Time
}

// NewThrottle allows max attempts per identity within window.
func NewThrottle(max int, window time.Duration) *Throttle {
	return &Throttle{
		window:   window,
		max:      max,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow records one attempt for email and reports whether it is within
// the limit. Callers should check Allow before hashing the password.
func (t *Throttle) Allow(email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	cutoff := now.Add(-t.window)

	recent := t.attempts[email][:0]
	for _, at := range t.attempts[email] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}
	if len(recent) >= t.max {
		t.attempts[email] = recent
		return false
	}
	t.attempts[email] = append(recent, now)
	return true
}

// Reset clears the attempt history for email, typically after a
// successful login.
func (t *Throttle) Reset(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, email)
}
