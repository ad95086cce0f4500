package domain

import "time"

// NotificationState is the persisted delta state for one (user, target date)
// pair. It exists only while the user has relevant matches for that date and
// is deleted once the match count returns to zero, so a later re-occurrence
// is reported again.
type NotificationState struct {
	UserID      string
	DateKey     string
	Fingerprint string
	MatchCount  int
	SentAt      time.Time
}

func NewNotificationState(userID, dateKey, fingerprint string, matchCount int) *NotificationState {
	return &NotificationState{
		UserID:      userID,
		DateKey:     dateKey,
		Fingerprint: fingerprint,
		MatchCount:  matchCount,
		SentAt:      time.Now().UTC(),
	}
}

// DateKey formats a target date as the canonical state key component.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func ParseDateKey(key string) (time.Time, error) {
	return time.Parse("2006-01-02", key)
}

// DeltaAction is the decision derived from comparing the stored fingerprint
// with the freshly computed one.
type DeltaAction string

const (
	// DeltaSend: first occurrence for this date, or the relevant set changed.
	DeltaSend DeltaAction = "send"
	// DeltaSkip: nothing relevant, or nothing changed since the last send.
	DeltaSkip DeltaAction = "skip"
	// DeltaClear: previously relevant matches all disappeared; stored state
	// must be removed so a genuine re-occurrence notifies again.
	DeltaClear DeltaAction = "clear"
)

func (a DeltaAction) String() string {
	return string(a)
}
