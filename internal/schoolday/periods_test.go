package schoolday

import (
	"testing"
)

func TestParsePeriodsFromHours(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"single period", "3", []int{3}},
		{"dash range", "5-6", []int{5, 6}},
		{"range with ordinal dots", "5./6. Std", []int{5, 6}},
		{"reversed range is normalized", "6-5", []int{5, 6}},
		{"wide range", "2 - 4", []int{2, 3, 4}},
		{"value above grid is dropped", "15-20", []int{15}},
		{"value below grid is dropped", "0-2", []int{2}},
		{"stray year yields nothing", "2026", nil},
		{"room number beside a period", "Stunde 7 (Raum 104)", []int{7}},
		{"empty input", "", nil},
		{"non-numeric input", "ganztags", nil},
		{"number embedded in text", "Stunde 7", []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePeriodsFromHours(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ParsePeriodsFromHours(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ParsePeriodsFromHours(%q)[%d] = %d, want %d", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}
