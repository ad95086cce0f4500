package schoolday

import (
	"strconv"
	"strings"

	"github.com/subplan/notification-dispatch/internal/domain"
)

// ParsePeriodsFromHours extracts the period numbers named by a free-text
// hours label from the upstream feed, e.g. "3" -> [3], "5-6" -> [5, 6],
// "5./6. Std" -> [5, 6]. Two or more numbers are widened to the inclusive
// min..max range. Integers outside the period grid are ignored; a label
// naming only such values, or no numbers at all, yields nil.
func ParsePeriodsFromHours(text string) []int {
	numbers := extractNumbers(text)
	if len(numbers) == 0 {
		return nil
	}

	if len(numbers) == 1 {
		return []int{numbers[0]}
	}

	lo, hi := numbers[0], numbers[0]
	for _, n := range numbers[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}

	periods := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		periods = append(periods, p)
	}
	return periods
}

func extractNumbers(text string) []int {
	numbers := make([]int, 0, 2)
	digits := strings.Builder{}

	flush := func() {
		if digits.Len() == 0 {
			return
		}
		n, err := strconv.Atoi(digits.String())
		digits.Reset()
		if err != nil {
			return
		}
		// Stray integers like years or room numbers are not periods.
		if n < domain.MinPeriod || n > domain.MaxPeriod {
			return
		}
		numbers = append(numbers, n)
	}

	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return numbers
}
