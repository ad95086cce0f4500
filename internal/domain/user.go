package domain

const (
	// MinLookaheadDays and MaxLookaheadDays clamp how many upcoming school
	// days a user may have considered for notifications.
	MinLookaheadDays = 1
	MaxLookaheadDays = 5
)

// User is the notification-relevant projection of an account. Account and
// session management live outside this service; only the fields the dispatch
// cycle needs are modeled here.
type User struct {
	ID            string
	LookaheadDays int
	NotifyEnabled bool
}

// Lookahead returns the user's lookahead clamped to the allowed range.
func (u *User) Lookahead() int {
	if u.LookaheadDays < MinLookaheadDays {
		return MinLookaheadDays
	}
	if u.LookaheadDays > MaxLookaheadDays {
		return MaxLookaheadDays
	}
	return u.LookaheadDays
}
