package model

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// Food holds per-serving nutrition values.
type Food struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Calories    float64 `json:"calories" yaml:"calories"`
	Protein     float64 `json:"protein" yaml:"protein"`
	Carbs       float64 `json:"carbs" yaml:"carbs"`
	Fat         float64 `json:"fat" yaml:"fat"`
	ServingSize float64 `json:"servingSize" yaml:"servingSize"`
	ServingUnit string  `json:"servingUnit" yaml:"servingUnit"`
}

// MealFood is a snapshot of a Food taken when the meal was logged. Quantity is
// expressed in the food's serving unit.
type MealFood struct {
	Food     Food    `json:"food" yaml:"food"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

type Meal struct {
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Foods []MealFood `json:"foods" yaml:"foods"`
	Date  string     `json:"date" yaml:"date"`
}

type Exercise struct {
	ID                      string  `json:"id" yaml:"id"`
	Name                    string  `json:"name" yaml:"name"`
	Category                string  `json:"category" yaml:"category"`
	CaloriesBurnedPerMinute float64 `json:"caloriesBurnedPerMinute" yaml:"caloriesBurnedPerMinute"`
	Description             string  `json:"description" yaml:"description"`
	ImageURL                string  `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

type PlanExercise struct {
	Exercise Exercise `json:"exercise" yaml:"exercise"`
	Duration int      `json:"duration" yaml:"duration"`
	Sets     *int     `json:"sets,omitempty" yaml:"sets,omitempty"`
	Reps     *int     `json:"reps,omitempty" yaml:"reps,omitempty"`
}

type WorkoutPlan struct {
	ID        string         `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Exercises []PlanExercise `json:"exercises" yaml:"exercises"`
}

// CompletedWorkout stores duration and calories as they were at completion
// time; they are never recomputed.
type CompletedWorkout struct {
	ID             string  `json:"id" yaml:"id"`
	PlanID         string  `json:"planId" yaml:"planId"`
	Date           string  `json:"date" yaml:"date"`
	Duration       int     `json:"duration" yaml:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned" yaml:"caloriesBurned"`
}

type Task struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Completed bool     `json:"completed" yaml:"completed"`
	DueDate   string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Priority  Priority `json:"priority" yaml:"priority"`
	Category  string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// Habit.Streak is derived from CompletedDates and only rewritten by the
// productivity ledger when the dates change.
type Habit struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Frequency      Frequency `json:"frequency" yaml:"frequency"`
	CompletedDates []string  `json:"completedDates" yaml:"completedDates"`
	Streak         int       `json:"streak" yaml:"streak"`
}

type DailyStats struct {
	Date             string  `json:"date"`
	CaloriesConsumed float64 `json:"caloriesConsumed"`
	CaloriesBurned   float64 `json:"caloriesBurned"`
	WaterIntake      float64 `json:"waterIntake"`
	TasksCompleted   int     `json:"tasksCompleted"`
	HabitsCompleted  int     `json:"habitsCompleted"`
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}
