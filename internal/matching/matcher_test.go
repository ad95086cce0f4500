package matching

import (
	"testing"
	"time"

	"github.com/subplan/notification-dispatch/internal/domain"
)

// 2026-01-07 is a Wednesday in an even ISO week.
var wednesday = time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC)

func mathEntry() *domain.TimetableEntry {
	return &domain.TimetableEntry{
		UserID:      "user-1",
		Weekday:     domain.WeekdayWednesday,
		StartPeriod: 5,
		Duration:    2,
		SubjectCode: "MATH",
		TeacherCode: "TUMM",
		Room:        "B204",
		WeekMode:    domain.WeekModeAll,
	}
}

func TestMatchRowToEntry(t *testing.T) {
	tests := []struct {
		name           string
		row            domain.SubstitutionRow
		entry          *domain.TimetableEntry
		date           time.Time
		wantMatch      bool
		wantConfidence domain.Confidence
	}{
		{
			name:           "subject and teacher match is high confidence",
			row:            domain.SubstitutionRow{Hours: "5-6", Subject: "MATH", Teacher: "TUMM", Type: "cancelled"},
			entry:          mathEntry(),
			date:           wednesday,
			wantMatch:      true,
			wantConfidence: domain.ConfidenceHigh,
		},
		{
			name:           "subject only is medium confidence",
			row:            domain.SubstitutionRow{Hours: "5-6", Subject: "MATH", Teacher: "OTHER", Type: "substitution"},
			entry:          mathEntry(),
			date:           wednesday,
			wantMatch:      true,
			wantConfidence: domain.ConfidenceMedium,
		},
		{
			name:           "room match lifts a single-field match to high",
			row:            domain.SubstitutionRow{Hours: "5", Subject: "MATH", Teacher: "OTHER", Room: "B204"},
			entry:          mathEntry(),
			date:           wednesday,
			wantMatch:      true,
			wantConfidence: domain.ConfidenceHigh,
		},
		{
			name:      "period overlap alone is not enough",
			row:       domain.SubstitutionRow{Hours: "5-6", Subject: "BIO", Teacher: "XYZ"},
			entry:     mathEntry(),
			date:      wednesday,
			wantMatch: false,
		},
		{
			name:      "no period overlap rejects",
			row:       domain.SubstitutionRow{Hours: "1-2", Subject: "MATH", Teacher: "TUMM"},
			entry:     mathEntry(),
			date:      wednesday,
			wantMatch: false,
		},
		{
			name:      "wrong weekday rejects",
			row:       domain.SubstitutionRow{Hours: "5-6", Subject: "MATH", Teacher: "TUMM"},
			entry:     mathEntry(),
			date:      wednesday.AddDate(0, 0, 1), // Thursday
			wantMatch: false,
		},
		{
			name:      "weekend date rejects",
			row:       domain.SubstitutionRow{Hours: "5-6", Subject: "MATH", Teacher: "TUMM"},
			entry:     mathEntry(),
			date:      time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
			wantMatch: false,
		},
		{
			name: "odd-week entry does not apply in an even week",
			row:  domain.SubstitutionRow{Hours: "5-6", Subject: "MATH", Teacher: "TUMM"},
			entry: func() *domain.TimetableEntry {
				e := mathEntry()
				e.WeekMode = domain.WeekModeOdd
				return e
			}(),
			date:      wednesday,
			wantMatch: false,
		},
		{
			name: "even-week entry applies in an even week",
			row:  domain.SubstitutionRow{Hours: "5-6", Subject: "MATH", Teacher: "TUMM"},
			entry: func() *domain.TimetableEntry {
				e := mathEntry()
				e.WeekMode = domain.WeekModeEven
				return e
			}(),
			date:           wednesday,
			wantMatch:      true,
			wantConfidence: domain.ConfidenceHigh,
		},
		{
			name:           "substring containment tolerates upstream suffixes",
			row:            domain.SubstitutionRow{Hours: "5", Subject: "MATH2b", Teacher: "Frau TUMM"},
			entry:          mathEntry(),
			date:           wednesday,
			wantMatch:      true,
			wantConfidence: domain.ConfidenceHigh,
		},
		{
			name: "empty entry room never counts as room match",
			row:  domain.SubstitutionRow{Hours: "5", Subject: "MATH", Teacher: "OTHER", Room: ""},
			entry: func() *domain.TimetableEntry {
				e := mathEntry()
				e.Room = ""
				return e
			}(),
			date:           wednesday,
			wantMatch:      true,
			wantConfidence: domain.ConfidenceMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchRowToEntry(tt.row, tt.entry, tt.date)
			if !tt.wantMatch {
				if got != nil {
					t.Fatalf("expected no match, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a match, got nil")
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %q, want %q", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestFindRelevantSubstitutionsOrder(t *testing.T) {
	english := &domain.TimetableEntry{
		Weekday:     domain.WeekdayWednesday,
		StartPeriod: 5,
		Duration:    1,
		SubjectCode: "ENG",
		TeacherCode: "SMIT",
		WeekMode:    domain.WeekModeAll,
	}
	entries := []domain.TimetableEntry{*mathEntry(), *english}

	rows := []domain.SubstitutionRow{
		{Hours: "5", Subject: "ENG", Teacher: "SMIT"},
		{Hours: "5-6", Subject: "MATH", Teacher: "TUMM"},
	}

	matches := FindRelevantSubstitutions(rows, entries, wednesday)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	// Row order first, then entry order.
	if matches[0].Row.Subject != "ENG" || matches[1].Row.Subject != "MATH" {
		t.Errorf("matches out of row order: %q then %q", matches[0].Row.Subject, matches[1].Row.Subject)
	}
}

func TestFindRelevantSubstitutionsEmpty(t *testing.T) {
	matches := FindRelevantSubstitutions(nil, []domain.TimetableEntry{*mathEntry()}, wednesday)
	if len(matches) != 0 {
		t.Errorf("got %d matches for empty feed, want 0", len(matches))
	}
}
