package domain

// Confidence is the qualitative strength of a substitution match.
type Confidence string

const (
	// ConfidenceHigh: the room matched, or both subject and teacher matched.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium: only one identifying field matched.
	ConfidenceMedium Confidence = "medium"
)

func (c Confidence) String() string {
	return string(c)
}

// MatchResult links a feed row to a timetable entry it affects. Results are
// ephemeral: they are recomputed on every dispatch cycle and never persisted.
type MatchResult struct {
	Entry        *TimetableEntry
	Row          SubstitutionRow
	SubjectMatch bool
	TeacherMatch bool
	RoomMatch    bool
	Confidence   Confidence
}
