package ai

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/saadjs/lifelog/internal/clock"
)

const minMealCalorieGoal = 300

var DefaultWorkoutPreferences = WorkoutPreferences{
	FitnessLevel:  "intermediate",
	AvailableTime: 30,
	Goals:         "general fitness and weight loss",
}

type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

type CalorieSource interface {
	RemainingCalories() float64
}

type TaskCounter interface {
	OpenTasksCount() int
	CompletedTasksCount() int
}

// Suggester fills the prompt templates with live ledger numbers and sends
// them to the completion endpoint.
type Suggester struct {
	AI        Completer
	Clock     clock.Clock
	Nutrition CalorieSource
	Tasks     TaskCounter
	Log       *zap.Logger
}

func (s *Suggester) Workout(ctx context.Context, prefs WorkoutPreferences) (string, error) {
	if prefs.FitnessLevel == "" {
		prefs.FitnessLevel = DefaultWorkoutPreferences.FitnessLevel
	}
	if prefs.AvailableTime <= 0 {
		prefs.AvailableTime = DefaultWorkoutPreferences.AvailableTime
	}
	if prefs.Goals == "" {
		prefs.Goals = DefaultWorkoutPreferences.Goals
	}
	return s.send(ctx, "workout", WorkoutPrompt(prefs))
}

// Meal asks for a meal sized to the calories left today, never below 300,
// with the meal type picked from the local hour.
func (s *Suggester) Meal(ctx context.Context, dietaryRestrictions string) (string, error) {
	return s.send(ctx, "meal", MealPrompt(s.MealPreferences(dietaryRestrictions)))
}

func (s *Suggester) MealPreferences(dietaryRestrictions string) MealPreferences {
	remaining := s.Nutrition.RemainingCalories()
	goal := minMealCalorieGoal
	if remaining > minMealCalorieGoal {
		goal = int(math.Round(remaining))
	}
	return MealPreferences{
		CalorieGoal:         goal,
		DietaryRestrictions: dietaryRestrictions,
		MealType:            clock.MealType(s.Clock.Now()),
	}
}

func (s *Suggester) ProductivityTips(ctx context.Context) (string, error) {
	return s.send(ctx, "productivity", ProductivityPrompt(s.ProductivityContext()))
}

func (s *Suggester) ProductivityContext() ProductivityContext {
	return ProductivityContext{
		CurrentTasks:   s.Tasks.OpenTasksCount(),
		CompletedToday: s.Tasks.CompletedTasksCount(),
		TimeOfDay:      clock.TimeOfDay(s.Clock.Now()),
	}
}

func (s *Suggester) Habits(ctx context.Context, goals string) (string, error) {
	return s.send(ctx, "habits", HabitPrompt(goals))
}

func (s *Suggester) send(ctx context.Context, kind string, messages []Message) (string, error) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("requesting suggestion", zap.String("kind", kind))
	out, err := s.AI.Complete(ctx, messages)
	if err != nil {
		log.Error("suggestion request failed", zap.String("kind", kind), zap.Error(Cause(err)))
		return "", err
	}
	return out, nil
}
