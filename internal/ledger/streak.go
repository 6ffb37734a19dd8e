package ledger

import "github.com/saadjs/lifelog/internal/clock"

// Streak counts consecutive calendar days ending at the last entry of sorted,
// an ascending list of YYYY-MM-DD dates. The walk stops at the first pair that
// is not exactly one day apart. Habit frequency is not considered.
func Streak(sorted []string) int {
	if len(sorted) == 0 {
		return 0
	}
	streak := 1
	for i := len(sorted) - 1; i > 0; i-- {
		diff, err := clock.DayDiff(sorted[i], sorted[i-1])
		if err != nil || diff != 1 {
			break
		}
		streak++
	}
	return streak
}
