package backoff

import (
	"testing"
	"time"
)

func TestDelayBounds(t *testing.T) {
	tests := []struct {
		name    string
		attempt int
		base    time.Duration
		max     time.Duration
		lo      time.Duration
		hi      time.Duration
	}{
		{"attempt 1", 1, 100 * time.Millisecond, time.Minute, 50 * time.Millisecond, 100 * time.Millisecond},
		{"attempt 3 quadruples the base", 3, 100 * time.Millisecond, time.Minute, 50 * time.Millisecond, 400 * time.Millisecond},
		{"capped at max", 10, 100 * time.Millisecond, time.Second, 500 * time.Millisecond, time.Second},
		{"attempt below 1 is treated as 1", 0, 100 * time.Millisecond, time.Minute, 50 * time.Millisecond, 100 * time.Millisecond},
		{"zero base uses default", 1, 0, 0, minDelay, DefaultBaseDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				d := Delay(tt.attempt, tt.base, tt.max)
				if d < tt.lo || d > tt.hi {
					t.Fatalf("Delay(%d) = %v, want within [%v, %v]", tt.attempt, d, tt.lo, tt.hi)
				}
			}
		})
	}
}

func TestDelayFloor(t *testing.T) {
	for i := 0; i < 200; i++ {
		if d := Delay(1, 10*time.Millisecond, time.Minute); d < minDelay {
			t.Fatalf("Delay = %v, want >= %v", d, minDelay)
		}
	}
}

func TestDelayAverageGrows(t *testing.T) {
	const samples = 500

	average := func(attempt int) time.Duration {
		var total time.Duration
		for i := 0; i < samples; i++ {
			total += Delay(attempt, 100*time.Millisecond, time.Minute)
		}
		return total / samples
	}

	prev := average(1)
	for attempt := 2; attempt <= 5; attempt++ {
		cur := average(attempt)
		if cur <= prev {
			t.Fatalf("average delay should grow with attempts: attempt %d avg %v <= attempt %d avg %v",
				attempt, cur, attempt-1, prev)
		}
		prev = cur
	}
}
