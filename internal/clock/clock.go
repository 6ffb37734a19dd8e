package clock

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Clock abstracts wall-clock reads so date boundaries are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System reads the device-local wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfWeek returns the most recent Sunday at 00:00:00 in t's location.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// DayDiff returns the number of calendar days from prev to current. Both
// values are YYYY-MM-DD strings interpreted in UTC so DST shifts never
// produce fractional days.
func DayDiff(current, prev string) (int, error) {
	c, err := time.Parse(DateLayout, current)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", current)
	}
	p, err := time.Parse(DateLayout, prev)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", prev)
	}
	return int(c.Sub(p).Hours() / 24), nil
}

func TimeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "morning"
	case h < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

func MealType(t time.Time) string {
	switch h := t.Hour(); {
	case h < 10:
		return "breakfast"
	case h < 15:
		return "lunch"
	case h < 18:
		return "snack"
	default:
		return "dinner"
	}
}
