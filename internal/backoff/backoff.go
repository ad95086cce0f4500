// Package backoff computes jittered exponential retry delays. It is only a
// calculator: callers own their retry loops and context handling.
package backoff

import (
	"math/rand/v2"
	"time"
)

const (
	// DefaultBaseDelay is the nominal delay of the first retry.
	DefaultBaseDelay = 100 * time.Millisecond

	// DefaultMaxDelay caps the exponential growth.
	DefaultMaxDelay = 30 * time.Second

	// minDelay floors the jittered result so retries never spin hot.
	minDelay = 50 * time.Millisecond
)

// Delay returns the wait before retry number attempt (1-based). The nominal
// delay is base*2^(attempt-1) capped at max; the returned delay is uniformly
// jittered within [nominal/2, nominal] to spread out retrying callers.
func Delay(attempt int, base, max time.Duration) time.Duration {
	if base <= 0 {
		base = DefaultBaseDelay
	}
	if max <= 0 {
		max = DefaultMaxDelay
	}
	if attempt < 1 {
		attempt = 1
	}

	nominal := base
	for i := 1; i < attempt; i++ {
		nominal *= 2
		if nominal >= max {
			nominal = max
			break
		}
	}

	half := nominal / 2
	jittered := half + rand.N(half+1)
	if jittered < minDelay {
		jittered = minDelay
	}
	return jittered
}
