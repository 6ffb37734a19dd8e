package ai

import (
	"strings"
	"testing"
)

func TestPromptsInterpolateValues(t *testing.T) {
	t.Parallel()

	workout := WorkoutPrompt(WorkoutPreferences{FitnessLevel: "beginner", AvailableTime: 20, Goals: "mobility"})
	if workout[0].Role != RoleSystem || workout[1].Role != RoleUser {
		t.Fatalf("expected system/user pair, got %+v", workout)
	}
	if !strings.Contains(workout[1].Content, "beginner fitness level, 20 minutes available, and goals: mobility") {
		t.Fatalf("unexpected workout prompt: %s", workout[1].Content)
	}

	meal := MealPrompt(MealPreferences{CalorieGoal: 650, MealType: "dinner"})
	if !strings.Contains(meal[1].Content, "Suggest a dinner meal for someone with a 650 calorie daily goal. Dietary restrictions: none.") {
		t.Fatalf("unexpected meal prompt: %s", meal[1].Content)
	}

	tips := ProductivityPrompt(ProductivityContext{CurrentTasks: 3, CompletedToday: 2, TimeOfDay: "evening"})
	if !strings.Contains(tips[1].Content, "I have 3 tasks remaining and completed 2 tasks today. It is currently evening.") {
		t.Fatalf("unexpected productivity prompt: %s", tips[1].Content)
	}

	habits := HabitPrompt("sleep better")
	if !strings.Contains(habits[1].Content, `Based on these goals: "sleep better"`) {
		t.Fatalf("unexpected habit prompt: %s", habits[1].Content)
	}
}
