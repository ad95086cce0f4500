// Package timetable normalizes and conflict-checks a user's weekly entry set
// before it is persisted.
package timetable

import (
	"fmt"
	"strings"

	"github.com/subplan/notification-dispatch/internal/domain"
)

// RawEntry is the unvalidated editor payload for one timetable slot.
type RawEntry struct {
	Weekday     string `json:"weekday"`
	StartPeriod int    `json:"start_period"`
	Duration    int    `json:"duration"`
	SubjectCode string `json:"subject_code"`
	TeacherCode string `json:"teacher_code"`
	Room        string `json:"room"`
	WeekMode    string `json:"week_mode"`
}

// ValidationError reports the first structural or conflict problem found in
// an entry set. Index is the zero-based position of the offending entry.
type ValidationError struct {
	Index   int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entry %d: %s", e.Index, e.Message)
}

// Validate normalizes the raw entries and checks structure and conflicts.
//
// allowOverlaps bypasses only the pairwise conflict check, not the structural
// checks. This is a deliberate escape hatch for lessons that legitimately
// double-book, such as elective splits where a user attends one of two
// parallel slots.
func Validate(raw []RawEntry, allowOverlaps bool) ([]domain.TimetableEntry, error) {
	entries := make([]domain.TimetableEntry, 0, len(raw))

	for i, r := range raw {
		entry, err := normalizeEntry(i, r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if !allowOverlaps {
		if err := checkConflicts(entries); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func normalizeEntry(index int, r RawEntry) (domain.TimetableEntry, error) {
	entry := domain.TimetableEntry{
		Weekday:     domain.Weekday(strings.ToUpper(strings.TrimSpace(r.Weekday))),
		StartPeriod: r.StartPeriod,
		Duration:    r.Duration,
		SubjectCode: strings.ToUpper(strings.TrimSpace(r.SubjectCode)),
		TeacherCode: strings.ToUpper(strings.TrimSpace(r.TeacherCode)),
		Room:        strings.TrimSpace(r.Room),
		WeekMode:    domain.WeekMode(strings.ToUpper(strings.TrimSpace(r.WeekMode))),
	}
	if entry.WeekMode == "" {
		entry.WeekMode = domain.WeekModeAll
	}

	if !entry.Weekday.Valid() {
		return domain.TimetableEntry{}, &ValidationError{
			Index: index, Field: "weekday",
			Message: fmt.Sprintf("unknown weekday %q, expected MON..FRI", r.Weekday),
		}
	}
	if entry.StartPeriod < domain.MinPeriod || entry.StartPeriod > domain.MaxPeriod {
		return domain.TimetableEntry{}, &ValidationError{
			Index: index, Field: "start_period",
			Message: fmt.Sprintf("start period %d out of range %d..%d", r.StartPeriod, domain.MinPeriod, domain.MaxPeriod),
		}
	}
	if entry.Duration < 1 || entry.Duration > domain.MaxEntryDuration {
		return domain.TimetableEntry{}, &ValidationError{
			Index: index, Field: "duration",
			Message: fmt.Sprintf("duration %d not in 1..%d", r.Duration, domain.MaxEntryDuration),
		}
	}
	if entry.StartPeriod+entry.Duration-1 > domain.MaxPeriod {
		return domain.TimetableEntry{}, &ValidationError{
			Index: index, Field: "duration",
			Message: fmt.Sprintf("entry extends past period %d", domain.MaxPeriod),
		}
	}
	if entry.SubjectCode == "" {
		return domain.TimetableEntry{}, &ValidationError{
			Index: index, Field: "subject_code", Message: "subject code is required",
		}
	}
	if entry.TeacherCode == "" {
		return domain.TimetableEntry{}, &ValidationError{
			Index: index, Field: "teacher_code", Message: "teacher code is required",
		}
	}
	if !entry.WeekMode.Valid() {
		return domain.TimetableEntry{}, &ValidationError{
			Index: index, Field: "week_mode",
			Message: fmt.Sprintf("unknown week mode %q, expected ALL, EVEN or ODD", r.WeekMode),
		}
	}

	return entry, nil
}

// checkConflicts flags the first pair of entries occupying an overlapping
// period range on the same weekday with overlapping week applicability.
// The entry sets are small (a school week), so the pairwise scan is fine.
func checkConflicts(entries []domain.TimetableEntry) error {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := &entries[i], &entries[j]
			if a.Weekday != b.Weekday {
				continue
			}
			if !a.WeekMode.Overlaps(b.WeekMode) {
				continue
			}

			shared, ok := firstSharedPeriod(a, b)
			if !ok {
				continue
			}
			return &ValidationError{
				Index: j, Field: "start_period",
				Message: fmt.Sprintf("conflicts with entry %d on %s at period %d", i, a.Weekday, shared),
			}
		}
	}
	return nil
}

func firstSharedPeriod(a, b *domain.TimetableEntry) (int, bool) {
	for _, p := range a.Periods() {
		if b.OccupiesPeriod(p) {
			return p, true
		}
	}
	return 0, false
}
