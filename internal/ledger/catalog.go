package ledger

import "github.com/saadjs/lifelog/internal/model"

func intPtr(v int) *int { return &v }

var catalogExercises = []model.Exercise{
	{ID: "1", Name: "Running", Category: "Cardio", CaloriesBurnedPerMinute: 10, Description: "Running at a moderate pace helps improve cardiovascular health and burn calories."},
	{ID: "2", Name: "Push-ups", Category: "Strength", CaloriesBurnedPerMinute: 7, Description: "Push-ups target your chest, shoulders, and triceps while also engaging your core."},
	{ID: "3", Name: "Squats", Category: "Strength", CaloriesBurnedPerMinute: 8, Description: "Squats primarily target your quadriceps, hamstrings, and glutes."},
	{ID: "4", Name: "Cycling", Category: "Cardio", CaloriesBurnedPerMinute: 8.5, Description: "Low-impact cardio that strengthens your legs and improves endurance."},
	{ID: "5", Name: "Plank", Category: "Core", CaloriesBurnedPerMinute: 5, Description: "Planks strengthen your core, improve posture, and reduce back pain."},
	{ID: "6", Name: "Yoga", Category: "Flexibility", CaloriesBurnedPerMinute: 4, Description: "Yoga improves flexibility, balance, and mental well-being."},
}

var catalogPlans = []model.WorkoutPlan{
	{
		ID:   "1",
		Name: "Beginner Cardio",
		Exercises: []model.PlanExercise{
			{Exercise: catalogExercises[0], Duration: 15},
			{Exercise: catalogExercises[3], Duration: 15},
			{Exercise: catalogExercises[4], Duration: 5},
		},
	},
	{
		ID:   "2",
		Name: "Full Body Strength",
		Exercises: []model.PlanExercise{
			{Exercise: catalogExercises[1], Duration: 10, Sets: intPtr(3), Reps: intPtr(10)},
			{Exercise: catalogExercises[2], Duration: 10, Sets: intPtr(3), Reps: intPtr(15)},
			{Exercise: catalogExercises[4], Duration: 5, Sets: intPtr(3)},
		},
	},
	{
		ID:   "3",
		Name: "Flexibility & Recovery",
		Exercises: []model.PlanExercise{
			{Exercise: catalogExercises[5], Duration: 20},
			{Exercise: catalogExercises[4], Duration: 5},
		},
	},
}

// CatalogExercises returns the built-in exercises.
func CatalogExercises() []model.Exercise {
	out := make([]model.Exercise, len(catalogExercises))
	copy(out, catalogExercises)
	return out
}

// WorkoutPlans returns the built-in workout plans.
func WorkoutPlans() []model.WorkoutPlan {
	out := make([]model.WorkoutPlan, len(catalogPlans))
	for i, p := range catalogPlans {
		p.Exercises = append([]model.PlanExercise(nil), p.Exercises...)
		out[i] = p
	}
	return out
}

func WorkoutPlan(planID string) (model.WorkoutPlan, bool) {
	for _, p := range WorkoutPlans() {
		if p.ID == planID {
			return p, true
		}
	}
	return model.WorkoutPlan{}, false
}
