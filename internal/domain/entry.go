package domain

const (
	// MinPeriod and MaxPeriod bound the school day's period grid.
	MinPeriod = 1
	MaxPeriod = 16

	// MaxEntryDuration is the longest slot an entry may occupy (a double period).
	MaxEntryDuration = 2
)

// TimetableEntry is one weekly recurring lesson slot owned by a user.
type TimetableEntry struct {
	ID          string
	UserID      string
	Weekday     Weekday
	StartPeriod int
	Duration    int
	SubjectCode string
	TeacherCode string
	Room        string
	WeekMode    WeekMode
}

// Periods returns the inclusive period range the entry occupies,
// e.g. start=5 duration=2 -> [5, 6].
func (e *TimetableEntry) Periods() []int {
	periods := make([]int, 0, e.Duration)
	for p := e.StartPeriod; p < e.StartPeriod+e.Duration; p++ {
		periods = append(periods, p)
	}
	return periods
}

// OccupiesPeriod reports whether the entry covers the given period.
func (e *TimetableEntry) OccupiesPeriod(period int) bool {
	return period >= e.StartPeriod && period < e.StartPeriod+e.Duration
}
