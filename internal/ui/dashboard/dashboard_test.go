package dashboard

import (
	"math"
	"strings"
	"testing"

	"github.com/saadjs/lifelog/internal/model"
)

func TestRatioCapsAndGuards(t *testing.T) {
	t.Parallel()
	cases := []struct {
		part, whole, want float64
	}{
		{500, 2000, 0.25},
		{3000, 2000, 1},
		{4, 0, 0},
		{-250, 2000, 0},
		{math.NaN(), 10, 0},
	}
	for _, tc := range cases {
		if got := Ratio(tc.part, tc.whole); got != tc.want {
			t.Fatalf("Ratio(%v, %v): expected %v, got %v", tc.part, tc.whole, tc.want, got)
		}
	}
}

func TestRenderToleratesNegativeWater(t *testing.T) {
	t.Parallel()
	out := Render(Summary{Stats: model.DailyStats{WaterIntake: -250}, CalorieGoal: 2000, WeeklyGoal: 3})
	if !strings.Contains(out, "0%") {
		t.Fatalf("expected empty water progress:\n%s", out)
	}
}

func TestRenderShowsDailyFigures(t *testing.T) {
	t.Parallel()
	out := Render(Summary{
		Greeting: Greeting("afternoon"),
		Stats: model.DailyStats{
			Date:             "2024-01-10",
			CaloriesConsumed: 1000.4,
			CaloriesBurned:   302.5,
			WaterIntake:      500,
			TasksCompleted:   1,
			HabitsCompleted:  2,
		},
		Macros:         model.Nutrition{Protein: 80.2, Carbs: 120.7, Fat: 30},
		CalorieGoal:    2000,
		WeeklyWorkouts: 1,
		WeeklyGoal:     3,
		TaskCount:      4,
		HabitCount:     4,
	})
	for _, want := range []string{
		"Good Afternoon!",
		"2024-01-10",
		"50%",
		"1/3",
		"Goal: 2000",
		"1/4",
		"2/4",
		"25% complete",
		"Protein 80g | Carbs 121g | Fat 30g | Water 500ml",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected dashboard to contain %q:\n%s", want, out)
		}
	}
}
