// Package ratelimit implements a fixed-window request counter keyed by
// arbitrary strings. It throttles the orchestrator's external calls as well
// as the public onboarding endpoints.
//
// The store is process-local by design; in a multi-instance deployment the
// Limiter is the seam to swap in a shared store behind the same interface.
package ratelimit

import (
	"sort"
	"sync"
	"time"
)

const (
	// DefaultMaxEntries bounds memory under adversarial key fan-out
	// (e.g. spoofed client IPs). Exceeding entries are evicted
	// oldest-expiring-first, no background sweep needed.
	DefaultMaxEntries = 10000
)

// Result is the outcome of one Consume call.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
	Remaining  int
}

// RetryAfterSeconds reports the deny backoff in whole seconds, rounded up,
// at least 1 for a denied request.
func (r Result) RetryAfterSeconds() int {
	if r.Allowed {
		return 0
	}
	secs := int((r.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter is safe for concurrent use; check-and-increment is atomic per key.
type Limiter struct {
	mu         sync.Mutex
	entries    map[string]*entry
	maxEntries int
	now        func() time.Time
}

type Option func(*Limiter)

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// WithMaxEntries overrides the entry cap.
func WithMaxEntries(n int) Option {
	return func(l *Limiter) {
		if n > 0 {
			l.maxEntries = n
		}
	}
}

func NewLimiter(opts ...Option) *Limiter {
	l := &Limiter{
		entries:    make(map[string]*entry),
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Consume counts one request against key within the fixed window. The first
// request in a window (or after the previous window elapsed) starts a fresh
// window; requests at the limit are denied with the time until the window
// resets.
func (l *Limiter) Consume(key string, limit int, window time.Duration) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	e, ok := l.entries[key]
	if !ok || !e.resetAt.After(now) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(window)}
		l.evictOverCap()
		return Result{Allowed: true, Remaining: limit - 1}
	}

	if e.count < limit {
		e.count++
		return Result{Allowed: true, Remaining: limit - e.count}
	}

	return Result{Allowed: false, RetryAfter: e.resetAt.Sub(now)}
}

// Reset clears a key, e.g. to drop a login throttle after successful auth.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

// Len reports the current number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Limiter) prune(now time.Time) {
	for key, e := range l.entries {
		if !e.resetAt.After(now) {
			delete(l.entries, key)
		}
	}
}

func (l *Limiter) evictOverCap() {
	if len(l.entries) <= l.maxEntries {
		return
	}

	type keyed struct {
		key     string
		resetAt time.Time
	}
	all := make([]keyed, 0, len(l.entries))
	for key, e := range l.entries {
		all = append(all, keyed{key: key, resetAt: e.resetAt})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].resetAt.Before(all[j].resetAt)
	})

	for _, k := range all {
		if len(l.entries) <= l.maxEntries {
			break
		}
		delete(l.entries, k.key)
	}
}
