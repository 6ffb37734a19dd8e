package ai

import (
	"fmt"
	"strings"
)

type WorkoutPreferences struct {
	FitnessLevel  string
	AvailableTime int
	Goals         string
}

type MealPreferences struct {
	CalorieGoal         int
	DietaryRestrictions string
	MealType            string
}

type ProductivityContext struct {
	CurrentTasks   int
	CompletedToday int
	TimeOfDay      string
}

func WorkoutPrompt(p WorkoutPreferences) []Message {
	return []Message{
		{Role: RoleSystem, Content: "You are a fitness expert. Provide a personalized workout suggestion based on user preferences. Keep it concise and actionable."},
		{Role: RoleUser, Content: fmt.Sprintf("Create a workout plan for someone with %s fitness level, %d minutes available, and goals: %s. Include specific exercises and duration.", p.FitnessLevel, p.AvailableTime, p.Goals)},
	}
}

func MealPrompt(p MealPreferences) []Message {
	restrictions := strings.TrimSpace(p.DietaryRestrictions)
	if restrictions == "" {
		restrictions = "none"
	}
	return []Message{
		{Role: RoleSystem, Content: "You are a nutrition expert. Provide healthy meal suggestions based on user preferences. Include approximate calories and macros."},
		{Role: RoleUser, Content: fmt.Sprintf("Suggest a %s meal for someone with a %d calorie daily goal. Dietary restrictions: %s. Include ingredients and preparation tips.", p.MealType, p.CalorieGoal, restrictions)},
	}
}

func ProductivityPrompt(c ProductivityContext) []Message {
	return []Message{
		{Role: RoleSystem, Content: "You are a productivity coach. Provide personalized productivity tips and motivation based on user context."},
		{Role: RoleUser, Content: fmt.Sprintf("I have %d tasks remaining and completed %d tasks today. It is currently %s. Give me 3 specific productivity tips to help me stay focused and motivated.", c.CurrentTasks, c.CompletedToday, c.TimeOfDay)},
	}
}

func HabitPrompt(goals string) []Message {
	return []Message{
		{Role: RoleSystem, Content: "You are a habit formation expert. Suggest 3-5 small, achievable daily habits that can help users reach their goals."},
		{Role: RoleUser, Content: fmt.Sprintf("Based on these goals: \"%s\", suggest specific daily habits that would help achieve them. Make them small and easy to start.", goals)},
	}
}
