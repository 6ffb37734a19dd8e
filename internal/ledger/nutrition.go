package ledger

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/id"
	"github.com/saadjs/lifelog/internal/model"
	"github.com/saadjs/lifelog/internal/storage"
)

const DefaultDailyCalorieGoal = 2000

type NutritionState struct {
	Meals            []model.Meal `json:"meals" yaml:"meals"`
	CustomFoods      []model.Food `json:"customFoods" yaml:"customFoods"`
	WaterIntake      float64      `json:"waterIntake" yaml:"waterIntake"`
	DailyCalorieGoal int          `json:"dailyCalorieGoal" yaml:"dailyCalorieGoal"`
}

func DefaultNutritionState() NutritionState {
	return NutritionState{
		Meals:            []model.Meal{},
		CustomFoods:      []model.Food{},
		DailyCalorieGoal: DefaultDailyCalorieGoal,
	}
}

// Nutrition owns logged meals, custom foods, water intake and the daily
// calorie goal.
type Nutrition struct {
	persister
	mu    sync.Mutex
	clock clock.Clock
	ids   id.Generator
	state NutritionState
}

func LoadNutrition(d Deps) *Nutrition {
	d = d.withDefaults()
	n := &Nutrition{
		persister: newPersister(d, storage.NutritionKey),
		clock:     d.Clock,
		ids:       d.IDs,
		state:     DefaultNutritionState(),
	}
	if load(&n.persister, &n.state) {
		n.state.Meals = emptyIfNil(n.state.Meals)
		n.state.CustomFoods = emptyIfNil(n.state.CustomFoods)
		n.log.Debug("loaded nutrition ledger", zap.Int("meals", len(n.state.Meals)), zap.Int("foods", len(n.state.CustomFoods)))
	}
	return n
}

// PersistErr returns the error of the last write, or nil if it succeeded.
func (n *Nutrition) PersistErr() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.lastErr()
}

func (n *Nutrition) Snapshot() NutritionState {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.state
	out.Meals = slices.Clone(n.state.Meals)
	out.CustomFoods = slices.Clone(n.state.CustomFoods)
	return out
}

// Replace swaps the whole state, used by imports.
func (n *Nutrition) Replace(state NutritionState) {
	n.mu.Lock()
	defer n.mu.Unlock()
	state.Meals = emptyIfNil(state.Meals)
	state.CustomFoods = emptyIfNil(state.CustomFoods)
	n.state = state
	save(&n.persister, &n.state)
}

// AddMeal appends meal. An empty ID or date is filled in at creation time.
func (n *Nutrition) AddMeal(meal model.Meal) model.Meal {
	n.mu.Lock()
	defer n.mu.Unlock()
	if meal.ID == "" {
		meal.ID = n.ids.New()
	}
	if meal.Date == "" {
		meal.Date = timestamp(n.clock.Now())
	}
	meal.Foods = emptyIfNil(meal.Foods)
	n.state.Meals = append(n.state.Meals, meal)
	save(&n.persister, &n.state)
	return meal
}

func (n *Nutrition) RemoveMeal(mealID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.Meals = slices.DeleteFunc(n.state.Meals, func(m model.Meal) bool { return m.ID == mealID })
	save(&n.persister, &n.state)
}

// UpdateMeal replaces the meal with the same ID.
func (n *Nutrition) UpdateMeal(updated model.Meal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.state.Meals {
		if n.state.Meals[i].ID == updated.ID {
			n.state.Meals[i] = updated
		}
	}
	save(&n.persister, &n.state)
}

func (n *Nutrition) AddCustomFood(food model.Food) model.Food {
	n.mu.Lock()
	defer n.mu.Unlock()
	if food.ID == "" {
		food.ID = n.ids.New()
	}
	n.state.CustomFoods = append(n.state.CustomFoods, food)
	save(&n.persister, &n.state)
	return food
}

// RemoveCustomFood does not touch meals; they keep their own food snapshots.
func (n *Nutrition) RemoveCustomFood(foodID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.CustomFoods = slices.DeleteFunc(n.state.CustomFoods, func(f model.Food) bool { return f.ID == foodID })
	save(&n.persister, &n.state)
}

// SetWaterIntake stores amount as given; callers clamp.
func (n *Nutrition) SetWaterIntake(amount float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.WaterIntake = amount
	save(&n.persister, &n.state)
}

func (n *Nutrition) SetDailyCalorieGoal(goal int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.DailyCalorieGoal = goal
	save(&n.persister, &n.state)
}

func (n *Nutrition) WaterIntake() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.WaterIntake
}

func (n *Nutrition) DailyCalorieGoal() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.DailyCalorieGoal
}

func (n *Nutrition) Meals() []model.Meal {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.state.Meals)
}

func (n *Nutrition) Meal(mealID string) (model.Meal, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, m := range n.state.Meals {
		if m.ID == mealID {
			return m, true
		}
	}
	return model.Meal{}, false
}

func (n *Nutrition) AllFoods() []model.Food {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.state.CustomFoods)
}

func (n *Nutrition) Food(foodID string) (model.Food, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, f := range n.state.CustomFoods {
		if f.ID == foodID {
			return f, true
		}
	}
	return model.Food{}, false
}

// TodaysMeals returns meals whose date starts with today's local YYYY-MM-DD.
func (n *Nutrition) TodaysMeals() []model.Meal {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.todaysMeals()
}

func (n *Nutrition) todaysMeals() []model.Meal {
	today := clock.DateKey(n.clock.Now())
	out := make([]model.Meal, 0)
	for _, m := range n.state.Meals {
		if strings.HasPrefix(m.Date, today) {
			out = append(out, m)
		}
	}
	return out
}

// TodaysNutrition sums today's macros, scaling each food by
// quantity/servingSize. A zero serving size yields Inf or NaN.
func (n *Nutrition) TodaysNutrition() model.Nutrition {
	n.mu.Lock()
	defer n.mu.Unlock()
	var total model.Nutrition
	for _, meal := range n.todaysMeals() {
		for _, item := range meal.Foods {
			total = total.Add(MealFoodNutrition(item))
		}
	}
	return total
}

// RemainingCalories is the daily goal minus today's calories; it may be negative.
func (n *Nutrition) RemainingCalories() float64 {
	consumed := n.TodaysNutrition().Calories
	return float64(n.DailyCalorieGoal()) - consumed
}

func MealFoodNutrition(item model.MealFood) model.Nutrition {
	multiplier := item.Quantity / item.Food.ServingSize
	return model.Nutrition{
		Calories: item.Food.Calories * multiplier,
		Protein:  item.Food.Protein * multiplier,
		Carbs:    item.Food.Carbs * multiplier,
		Fat:      item.Food.Fat * multiplier,
	}
}
