// Package ratelimit implements the per-client sliding-window rate limiter.
package ratelimit

import (
	"time"
)

// Limiter is a sliding-window rate limiter owned by one client instance.
//
// It tracks request timestamps and enforces a maximum number of requests
// within a rolling window. The limiter never sleeps: Acquire returns the
// wait duration so the caller decides how to handle throttling. Timestamps
// come from time.Now, whose monotonic clock reading makes the window immune
// to wall-clock adjustments.
//
// The limiter is not safe for concurrent use; each client instance issues
// requests sequentially and owns its limiter exclusively.
type Limiter struct {
	capacity   int
	window     time.Duration
	timestamps []time.Time
	now        func() time.Time
}

// New creates a Limiter allowing capacity requests per window.
func New(capacity int, window time.Duration) *Limiter {
	return &Limiter{
		capacity: capacity,
		window:   window,
		now:      time.Now,
	}
}

// purge drops timestamps that have fallen outside the sliding window.
func (l *Limiter) purge(now time.Time) {
	cutoff := now.Add(-l.window)

	expired := 0
	for _, ts := range l.timestamps {
		if ts.After(cutoff) {
			break
		}

		expired++
	}

	l.timestamps = l.timestamps[expired:]
}

// Acquire records a request and returns the wait before it may proceed.
//
// It returns 0 when the request fits the window, recording the current
// instant as consumed. Otherwise it returns the duration until the oldest
// recorded timestamp leaves the window, recording nothing; the caller must
// wait and call Acquire again.
func (l *Limiter) Acquire() time.Duration {
	now := l.now()
	l.purge(now)

	if len(l.timestamps) < l.capacity {
		l.timestamps = append(l.timestamps, now)

		return 0
	}

	return l.timestamps[0].Add(l.window).Sub(now)
}

// Available returns the number of request slots open in the current window.
func (l *Limiter) Available() int {
	l.purge(l.now())

	return l.capacity - len(l.timestamps)
}

// Reset clears all recorded timestamps.
func (l *Limiter) Reset() {
	l.timestamps = l.timestamps[:0]
}
