package dispatch

import (
	"errors"

	"github.com/subplan/notification-dispatch/internal/domain"
)

var (
	// ErrOutsideWindow is returned when a non-forced run is attempted outside
	// the configured delivery window.
	ErrOutsideWindow = errors.New("outside delivery window")

	// ErrFeedRateLimited is returned when the cycle would exceed the upstream
	// feed cap. The whole cycle aborts; a later run picks the work up again.
	ErrFeedRateLimited = errors.New("feed fetch rate limited")
)

// Options control a single dispatch run.
type Options struct {
	// Force bypasses the delivery window check.
	Force bool
	// SendUnchanged also delivers when the fingerprint is unchanged, without
	// touching stored state. Used for manual re-sends.
	SendUnchanged bool
	// DeviceFilter restricts deliveries to one platform. Empty means all.
	DeviceFilter domain.DeviceFilter
	// UserIDs limits the run to specific users. Empty means all notifiable
	// users.
	UserIDs []string
	// DateKey pins the run to a single target date instead of each user's
	// lookahead horizon. Format 2006-01-02.
	DateKey string
}

// Summary reports what one dispatch run did.
type Summary struct {
	RunID            string `json:"run_id"`
	Users            int    `json:"users"`
	PairsProcessed   int    `json:"pairs_processed"`
	Sent             int    `json:"sent"`
	SkippedUnchanged int    `json:"skipped_unchanged"`
	SkippedNoMatches int    `json:"skipped_no_matches"`
	Cleared          int    `json:"cleared"`
	NoEligibleDevice int    `json:"no_eligible_device"`
	Deliveries       int    `json:"deliveries"`
	EndpointsRemoved int    `json:"endpoints_removed"`
	Failures         int    `json:"failures"`
}
