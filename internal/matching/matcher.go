// Package matching correlates loosely structured substitution feed rows with
// a user's structured timetable entries. The heuristics are intentionally
// simple string and period-overlap checks; absence of a match is represented
// by nil, never by an error.
package matching

import (
	"strings"
	"time"

	"github.com/subplan/notification-dispatch/internal/domain"
	"github.com/subplan/notification-dispatch/internal/schoolday"
)

// MatchRowToEntry decides whether a feed row affects a timetable entry on the
// target date. It returns nil when the row is irrelevant to the entry.
//
// A period overlap alone is not sufficient: at least one identifying field
// (subject or teacher) must line up, otherwise parallel classes in the same
// slot would produce false positives.
func MatchRowToEntry(row domain.SubstitutionRow, entry *domain.TimetableEntry, targetDate time.Time) *domain.MatchResult {
	weekday, ok := domain.WeekdayFromTime(targetDate)
	if !ok || weekday != entry.Weekday {
		return nil
	}
	if !schoolday.AppliesToWeekMode(entry.WeekMode, targetDate) {
		return nil
	}

	rowPeriods := schoolday.ParsePeriodsFromHours(row.Hours)
	if !periodsOverlap(rowPeriods, entry) {
		return nil
	}

	subjectMatch := textMatches(row.Subject, entry.SubjectCode)
	teacherMatch := textMatches(row.Teacher, entry.TeacherCode)
	if !subjectMatch && !teacherMatch {
		return nil
	}

	roomMatch := entry.Room != "" && textMatches(row.Room, entry.Room)

	confidence := domain.ConfidenceMedium
	if roomMatch || (subjectMatch && teacherMatch) {
		confidence = domain.ConfidenceHigh
	}

	return &domain.MatchResult{
		Entry:        entry,
		Row:          row,
		SubjectMatch: subjectMatch,
		TeacherMatch: teacherMatch,
		RoomMatch:    roomMatch,
		Confidence:   confidence,
	}
}

// FindRelevantSubstitutions crosses all rows with all entries and collects
// the matches, in row order then entry order. Callers sort or dedupe as
// needed.
func FindRelevantSubstitutions(rows []domain.SubstitutionRow, entries []domain.TimetableEntry, targetDate time.Time) []domain.MatchResult {
	matches := make([]domain.MatchResult, 0)
	for _, row := range rows {
		for i := range entries {
			if m := MatchRowToEntry(row, &entries[i], targetDate); m != nil {
				matches = append(matches, *m)
			}
		}
	}
	return matches
}

func periodsOverlap(rowPeriods []int, entry *domain.TimetableEntry) bool {
	for _, p := range rowPeriods {
		if entry.OccupiesPeriod(p) {
			return true
		}
	}
	return false
}

// textMatches normalizes both sides and accepts equality or substring
// containment in either direction. The bidirectional containment tolerates
// upstream codes embedding extra suffixes ("MATH2" vs "MATH"); keep it loose,
// a stricter equality would cost match recall.
func textMatches(a, b string) bool {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
