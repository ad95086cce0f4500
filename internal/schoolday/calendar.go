// Package schoolday provides the calendar arithmetic the dispatch pipeline
// is built on: school weekdays (Mon-Fri), ISO week parity and lookahead over
// school days. No holiday calendar is applied here.
package schoolday

import (
	"time"

	"github.com/subplan/notification-dispatch/internal/domain"
)

// IsSchoolDay reports whether the date falls on Monday through Friday.
func IsSchoolDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsISOWeekEven reports whether the date's ISO-8601 week number is even.
//
// The ISO rule is Thursday-anchored: a week belongs to the year containing
// its Thursday. time.Time.ISOWeek implements exactly that, so consecutive
// calendar weeks alternate parity across year boundaries as well.
func IsISOWeekEven(t time.Time) bool {
	_, week := t.ISOWeek()
	return week%2 == 0
}

// AppliesToWeekMode reports whether an entry with the given week mode is
// active on the given date.
func AppliesToWeekMode(mode domain.WeekMode, t time.Time) bool {
	switch mode {
	case domain.WeekModeEven:
		return IsISOWeekEven(t)
	case domain.WeekModeOdd:
		return !IsISOWeekEven(t)
	}
	return true
}

// AddSchoolDays steps day by day in the sign of offset, counting only
// Mon-Fri, until |offset| school days have been traversed. offset 0 returns
// the date unchanged.
func AddSchoolDays(t time.Time, offset int) time.Time {
	if offset == 0 {
		return t
	}

	step := 1
	remaining := offset
	if offset < 0 {
		step = -1
		remaining = -offset
	}

	current := t
	for remaining > 0 {
		current = current.AddDate(0, 0, step)
		if IsSchoolDay(current) {
			remaining--
		}
	}
	return current
}

// NextSchoolDays returns the next n school days strictly after t. With
// includeToday, t itself is the first result if it is a school day; if t
// falls on a weekend the series starts at the following Monday.
func NextSchoolDays(t time.Time, n int, includeToday bool) []time.Time {
	if n <= 0 {
		return nil
	}

	days := make([]time.Time, 0, n)
	current := t
	if includeToday {
		if !IsSchoolDay(current) {
			current = AddSchoolDays(current, 1)
		}
		days = append(days, current)
	}

	for len(days) < n {
		current = AddSchoolDays(current, 1)
		days = append(days, current)
	}
	return days
}
