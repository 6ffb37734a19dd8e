package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/saadjs/lifelog/internal/ai"
	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/id"
	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/model"
	"github.com/saadjs/lifelog/internal/storage"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

type stubCompleter struct {
	got []ai.Message
}

func (s *stubCompleter) Complete(_ context.Context, messages []ai.Message) (string, error) {
	s.got = messages
	return "drink water", nil
}

func newTestState(t *testing.T, store storage.Store) (*State, *stubCompleter) {
	t.Helper()
	stub := &stubCompleter{}
	return NewState(Options{
		Store: store,
		Clock: clock.Fixed{T: testNow},
		IDs:   &id.Sequence{Prefix: "rec-"},
		Log:   zaptest.NewLogger(t),
		AI:    stub,
	}), stub
}

func TestDailyStatsCombinesLedgers(t *testing.T) {
	t.Parallel()
	s, _ := newTestState(t, storage.NewMemoryStore())

	s.Nutrition.AddMeal(model.Meal{
		Name:  "Lunch",
		Foods: []model.MealFood{{Food: model.Food{ID: "f", Calories: 200, ServingSize: 100}, Quantity: 150}},
	})
	s.Nutrition.SetWaterIntake(1250)
	plan, _ := ledger.WorkoutPlan("1")
	s.Fitness.CompleteWorkout(plan)
	s.Productivity.ToggleHabitCompletion("1")

	stats := s.DailyStats()
	want := model.DailyStats{
		Date:             "2024-01-10",
		CaloriesConsumed: 300,
		CaloriesBurned:   302.5,
		WaterIntake:      1250,
		TasksCompleted:   s.Productivity.CompletedTasksCount(),
		HabitsCompleted:  1,
	}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
	if err := s.PersistErr(); err != nil {
		t.Fatalf("unexpected persist error: %v", err)
	}
}

func TestSuggesterReadsLiveLedgers(t *testing.T) {
	t.Parallel()
	s, stub := newTestState(t, storage.NewMemoryStore())
	s.Nutrition.SetDailyCalorieGoal(1800)

	out, err := s.Suggester.Meal(context.Background(), "")
	if err != nil || out != "drink water" {
		t.Fatalf("meal suggestion: out=%q err=%v", out, err)
	}
	pref := s.Suggester.MealPreferences("")
	if pref.CalorieGoal != 1800 || pref.MealType != "lunch" {
		t.Fatalf("unexpected meal preferences: %+v", pref)
	}
	if len(stub.got) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(stub.got))
	}
}

func TestOpenStatePersistsAcrossRuns(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "nested", "lifelog.db")
	log := zaptest.NewLogger(t)

	s, sqldb, err := OpenState(cfg, log)
	if err != nil {
		t.Fatalf("open state: %v", err)
	}
	task := s.Productivity.AddTask(ledger.TaskInput{Title: "Write report", Priority: model.PriorityHigh})
	s.Fitness.SetWeeklyGoal(5)
	if err := sqldb.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	again, sqldb2, err := OpenState(cfg, log)
	if err != nil {
		t.Fatalf("reopen state: %v", err)
	}
	defer sqldb2.Close()
	if _, ok := again.Productivity.Task(task.ID); !ok {
		t.Fatalf("expected task %s to survive reopen", task.ID)
	}
	if again.Fitness.WeeklyGoal() != 5 {
		t.Fatalf("expected weekly goal 5, got %d", again.Fitness.WeeklyGoal())
	}
}
