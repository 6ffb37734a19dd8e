package ledger_test

import (
	"testing"
	"time"

	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/model"
)

func TestWeeklyProgressSundayBoundary(t *testing.T) {
	t.Parallel()
	f := ledger.LoadFitness(newDeps(t, wednesdayNoon))

	sundayMidnight := time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local)
	saturdayLate := time.Date(2024, 1, 6, 23, 59, 59, 0, time.Local)
	f.AddCompletedWorkout(model.CompletedWorkout{PlanID: "1", Date: sundayMidnight.Format(time.RFC3339), Duration: 30, CaloriesBurned: 300})
	f.AddCompletedWorkout(model.CompletedWorkout{PlanID: "1", Date: saturdayLate.Format(time.RFC3339), Duration: 30, CaloriesBurned: 300})

	if got := f.WeeklyProgress(); got != 1 {
		t.Fatalf("expected 1 workout this week, got %d", got)
	}
}

func TestWeeklyProgressIgnoresUnparsableDates(t *testing.T) {
	t.Parallel()
	f := ledger.LoadFitness(newDeps(t, wednesdayNoon))
	f.AddCompletedWorkout(model.CompletedWorkout{PlanID: "1", Date: "someday"})
	if got := f.WeeklyProgress(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestTodaysCaloriesBurnedSumsSnapshots(t *testing.T) {
	t.Parallel()
	f := ledger.LoadFitness(newDeps(t, wednesdayNoon))

	f.AddCompletedWorkout(model.CompletedWorkout{PlanID: "1", Duration: 20, CaloriesBurned: 180})
	f.AddCompletedWorkout(model.CompletedWorkout{PlanID: "2", Duration: 10, CaloriesBurned: 70.5})
	f.AddCompletedWorkout(model.CompletedWorkout{
		PlanID:         "2",
		Date:           wednesdayNoon.Add(-24 * time.Hour).Format(time.RFC3339),
		CaloriesBurned: 1000,
	})

	if got := f.TodaysCaloriesBurned(); got != 250.5 {
		t.Fatalf("expected 250.5, got %v", got)
	}
}

func TestCompleteWorkoutSnapshotsPlanTotals(t *testing.T) {
	t.Parallel()
	f := ledger.LoadFitness(newDeps(t, wednesdayNoon))

	plan, ok := ledger.WorkoutPlan("1")
	if !ok {
		t.Fatalf("expected built-in plan 1")
	}
	done := f.CompleteWorkout(plan)
	if done.Duration != 35 {
		t.Fatalf("expected 35 minutes, got %d", done.Duration)
	}
	if done.CaloriesBurned != 302.5 {
		t.Fatalf("expected 302.5 calories, got %v", done.CaloriesBurned)
	}
	if done.PlanID != "1" || done.ID == "" {
		t.Fatalf("unexpected record: %+v", done)
	}
	if f.WeeklyProgress() != 1 {
		t.Fatalf("expected workout to count toward this week")
	}
}

func TestToggleFavoriteExerciseIsSymmetric(t *testing.T) {
	t.Parallel()
	f := ledger.LoadFitness(newDeps(t, wednesdayNoon))

	if !f.ToggleFavoriteExercise("3") || !f.IsFavorite("3") {
		t.Fatalf("expected exercise 3 to become a favorite")
	}
	if f.ToggleFavoriteExercise("3") || f.IsFavorite("3") {
		t.Fatalf("expected exercise 3 to be removed from favorites")
	}
	if len(f.Snapshot().FavoriteExercises) != 0 {
		t.Fatalf("expected empty favorites")
	}
}

func TestCustomExerciseMutations(t *testing.T) {
	t.Parallel()
	f := ledger.LoadFitness(newDeps(t, wednesdayNoon))
	if f.WeeklyGoal() != ledger.DefaultWeeklyGoal {
		t.Fatalf("expected default weekly goal, got %d", f.WeeklyGoal())
	}

	e := f.AddCustomExercise(model.Exercise{Name: "Rowing", Category: "Cardio", CaloriesBurnedPerMinute: 9})
	if _, ok := f.Exercise(e.ID); !ok {
		t.Fatalf("expected exercise %s to exist", e.ID)
	}
	if len(f.AllExercises()) != 1 {
		t.Fatalf("expected 1 custom exercise")
	}
	f.RemoveCustomExercise(e.ID)
	if len(f.AllExercises()) != 0 {
		t.Fatalf("expected exercise to be removed")
	}

	f.SetWeeklyGoal(5)
	if f.WeeklyGoal() != 5 {
		t.Fatalf("expected weekly goal 5, got %d", f.WeeklyGoal())
	}
}
