package domain

import "time"

// Weekday is a school weekday. Saturday and Sunday have no timetable
// representation and therefore no Weekday value.
type Weekday string

const (
	WeekdayMonday    Weekday = "MON"
	WeekdayTuesday   Weekday = "TUE"
	WeekdayWednesday Weekday = "WED"
	WeekdayThursday  Weekday = "THU"
	WeekdayFriday    Weekday = "FRI"
)

func (w Weekday) String() string {
	return string(w)
}

func (w Weekday) Valid() bool {
	switch w {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday:
		return true
	}
	return false
}

// WeekdayFromTime maps a calendar date to its school weekday.
// The second return value is false on Saturday and Sunday.
func WeekdayFromTime(t time.Time) (Weekday, bool) {
	switch t.Weekday() {
	case time.Monday:
		return WeekdayMonday, true
	case time.Tuesday:
		return WeekdayTuesday, true
	case time.Wednesday:
		return WeekdayWednesday, true
	case time.Thursday:
		return WeekdayThursday, true
	case time.Friday:
		return WeekdayFriday, true
	}
	return "", false
}

// WeekMode restricts a timetable entry to every week, even ISO weeks or
// odd ISO weeks.
type WeekMode string

const (
	WeekModeAll  WeekMode = "ALL"
	WeekModeEven WeekMode = "EVEN"
	WeekModeOdd  WeekMode = "ODD"
)

func (m WeekMode) String() string {
	return string(m)
}

func (m WeekMode) Valid() bool {
	switch m {
	case WeekModeAll, WeekModeEven, WeekModeOdd:
		return true
	}
	return false
}

// Overlaps reports whether two week modes can apply to the same week.
// ALL overlaps everything; EVEN and ODD only overlap themselves and ALL.
func (m WeekMode) Overlaps(other WeekMode) bool {
	if m == WeekModeAll || other == WeekModeAll {
		return true
	}
	return m == other
}
