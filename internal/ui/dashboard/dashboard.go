// Package dashboard renders the one-screen daily overview shown by `today`.
package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/model"
	"github.com/saadjs/lifelog/internal/ui/theme"
)

// WaterTarget is the daily water amount, in ml, the progress bar fills to.
const WaterTarget = 2000.0

type Summary struct {
	Greeting       string
	Stats          model.DailyStats
	Macros         model.Nutrition
	CalorieGoal    int
	WeeklyWorkouts int
	WeeklyGoal     int
	TaskCount      int
	HabitCount     int
}

func FromState(s *app.State) Summary {
	return Summary{
		Greeting:       Greeting(clock.TimeOfDay(s.Clock.Now())),
		Stats:          s.DailyStats(),
		Macros:         s.Nutrition.TodaysNutrition(),
		CalorieGoal:    s.Nutrition.DailyCalorieGoal(),
		WeeklyWorkouts: s.Fitness.WeeklyProgress(),
		WeeklyGoal:     s.Fitness.WeeklyGoal(),
		TaskCount:      len(s.Productivity.Tasks()),
		HabitCount:     len(s.Productivity.Habits()),
	}
}

func Greeting(timeOfDay string) string {
	switch timeOfDay {
	case "morning":
		return "Good Morning!"
	case "afternoon":
		return "Good Afternoon!"
	}
	return "Good Evening!"
}

// Ratio returns part/whole clamped to [0, 1]; a non-positive whole yields 0.
func Ratio(part, whole float64) float64 {
	if whole <= 0 || math.IsNaN(part) {
		return 0
	}
	return math.Max(0, math.Min(part/whole, 1))
}

func percent(r float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(r*100)))
}

func bar(r float64, width int) string {
	filled := int(math.Round(r * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func card(title, value, subtitle string, accent lipgloss.Color) string {
	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Muted.Render(title),
		theme.Accent(accent).Render(value),
		theme.Muted.Render(subtitle),
	))
}

func Render(s Summary) string {
	st := s.Stats
	calories := Ratio(st.CaloriesConsumed, float64(s.CalorieGoal))
	workouts := Ratio(float64(s.WeeklyWorkouts), float64(s.WeeklyGoal))
	water := Ratio(st.WaterIntake, WaterTarget)
	tasks := Ratio(float64(st.TasksCompleted), float64(s.TaskCount))
	habits := Ratio(float64(st.HabitsCompleted), float64(s.HabitCount))

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.Greeting) + "\n")
	b.WriteString(theme.Muted.Render("Here is your daily progress for "+st.Date) + "\n")

	b.WriteString(theme.Header.Render("Progress") + "\n")
	fmt.Fprintf(&b, "Calories  %s %s\n", bar(calories, 20), percent(calories))
	fmt.Fprintf(&b, "Workouts  %s %d/%d\n", bar(workouts, 20), s.WeeklyWorkouts, s.WeeklyGoal)
	fmt.Fprintf(&b, "Water     %s %s\n", bar(water, 20), percent(water))

	b.WriteString(theme.Header.Render("Today's Summary") + "\n")
	left := lipgloss.JoinVertical(lipgloss.Left,
		card("Calories Consumed", fmt.Sprintf("%.0f", math.Round(st.CaloriesConsumed)), fmt.Sprintf("Goal: %d", s.CalorieGoal), theme.Green),
		card("Tasks Completed", fmt.Sprintf("%d/%d", st.TasksCompleted, s.TaskCount), percent(tasks)+" complete", theme.Peach),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		card("Calories Burned", fmt.Sprintf("%.0f", math.Round(st.CaloriesBurned)), "From workouts", theme.Sapphire),
		card("Habits Completed", fmt.Sprintf("%d/%d", st.HabitsCompleted, s.HabitCount), percent(habits)+" complete", theme.Pink),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n")

	b.WriteString(theme.Header.Render("Nutrition Breakdown") + "\n")
	fmt.Fprintf(&b, "Protein %.0fg | Carbs %.0fg | Fat %.0fg | Water %gml\n",
		math.Round(s.Macros.Protein), math.Round(s.Macros.Carbs), math.Round(s.Macros.Fat), st.WaterIntake)
	return b.String()
}
