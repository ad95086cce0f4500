package feed

import "fmt"

// UnavailableError marks a fetch failure that should abort the whole dispatch
// cycle instead of being treated as "no substitutions today".
type UnavailableError struct {
	DateKey    string
	StatusCode int
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("feed unavailable for %s: status %d", e.DateKey, e.StatusCode)
	}
	return fmt.Sprintf("feed unavailable for %s: %v", e.DateKey, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
