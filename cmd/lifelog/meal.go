package lifelog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/model"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and manage meals",
}

var (
	mealName      string
	mealFoods     string
	mealListToday bool
)

// parseMealFoods reads "foodID:quantity,foodID:quantity" and snapshots each
// referenced custom food.
func parseMealFoods(s *app.State, list string) ([]model.MealFood, error) {
	out := make([]model.MealFood, 0)
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		foodID, qty, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid --foods item %q (expected id:quantity)", part)
		}
		quantity, err := parseFloatArg("quantity", qty)
		if err != nil {
			return nil, err
		}
		if quantity <= 0 {
			return nil, fmt.Errorf("quantity for food %s must be > 0", foodID)
		}
		food, found := s.Nutrition.Food(strings.TrimSpace(foodID))
		if !found {
			return nil, fmt.Errorf("food %s not found", foodID)
		}
		out = append(out, model.MealFood{Food: food, Quantity: quantity})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--foods must list at least one food")
	}
	return out, nil
}

func mealCalories(m model.Meal) float64 {
	total := 0.0
	for _, item := range m.Foods {
		total += ledger.MealFoodNutrition(item).Calories
	}
	return total
}

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal from custom foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			foods, err := parseMealFoods(s, mealFoods)
			if err != nil {
				return err
			}
			name := strings.TrimSpace(mealName)
			if name == "" {
				name = clock.MealType(s.Clock.Now())
			}
			meal := s.Nutrition.AddMeal(model.Meal{Name: name, Foods: foods})
			fmt.Fprintf(cmd.OutOrStdout(), "Logged meal %s (%.0f kcal)\n", meal.ID, mealCalories(meal))
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			meals := s.Nutrition.Meals()
			if mealListToday {
				meals = s.Nutrition.TodaysMeals()
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tNAME\tITEMS\tKCAL")
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%.0f\n", m.ID, shortDate(m.Date), m.Name, len(m.Foods), mealCalories(m))
			}
			return nil
		})
	},
}

var mealUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a meal or replace its foods",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("foods") {
			return fmt.Errorf("set --name or --foods")
		}
		return withState(func(s *app.State) error {
			meal, ok := s.Nutrition.Meal(args[0])
			if !ok {
				return fmt.Errorf("meal %s not found", args[0])
			}
			if cmd.Flags().Changed("name") {
				meal.Name = strings.TrimSpace(mealName)
			}
			if cmd.Flags().Changed("foods") {
				foods, err := parseMealFoods(s, mealFoods)
				if err != nil {
					return err
				}
				meal.Foods = foods
			}
			s.Nutrition.UpdateMeal(meal)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal %s\n", meal.ID)
			return nil
		})
	},
}

var mealRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			if _, ok := s.Nutrition.Meal(args[0]); !ok {
				return fmt.Errorf("meal %s not found", args[0])
			}
			s.Nutrition.RemoveMeal(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed meal %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealUpdateCmd, mealRemoveCmd)

	for _, c := range []*cobra.Command{mealAddCmd, mealUpdateCmd} {
		c.Flags().StringVar(&mealName, "name", "", "Meal name (default: breakfast/lunch/snack/dinner by time)")
		c.Flags().StringVar(&mealFoods, "foods", "", "Comma-separated foodID:quantity pairs")
	}
	_ = mealAddCmd.MarkFlagRequired("foods")
	mealListCmd.Flags().BoolVar(&mealListToday, "today", false, "Only show today's meals")
}
