package lifelog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/model"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage custom foods",
}

var (
	foodName        string
	foodCalories    float64
	foodProtein     float64
	foodCarbs       float64
	foodFat         float64
	foodServingSize float64
	foodServingUnit string
	foodLookupSave  bool
	foodSearchLimit int
)

func printFoodRow(cmd *cobra.Command, f model.Food) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g\t%.1f\t%.1f\t%.1f\t%g%s\n", f.ID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fat, f.ServingSize, f.ServingUnit)
}

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom food with per-serving nutrition",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(foodName)
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if foodServingSize <= 0 {
			return fmt.Errorf("--serving-size must be > 0")
		}
		if foodCalories < 0 || foodProtein < 0 || foodCarbs < 0 || foodFat < 0 {
			return fmt.Errorf("nutrition values must be >= 0")
		}
		return withState(func(s *app.State) error {
			food := s.Nutrition.AddCustomFood(model.Food{
				Name:        name,
				Calories:    foodCalories,
				Protein:     foodProtein,
				Carbs:       foodCarbs,
				Fat:         foodFat,
				ServingSize: foodServingSize,
				ServingUnit: strings.TrimSpace(foodServingUnit),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %s\n", food.ID)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tPROTEIN\tCARBS\tFAT\tSERVING")
			for _, f := range s.Nutrition.AllFoods() {
				printFoodRow(cmd, f)
			}
			return nil
		})
	},
}

var foodRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a custom food (logged meals keep their copy)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			if _, ok := s.Nutrition.Food(args[0]); !ok {
				return fmt.Errorf("food %s not found", args[0])
			}
			s.Nutrition.RemoveCustomFood(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed food %s\n", args[0])
			return nil
		})
	},
}

var foodLookupCmd = &cobra.Command{
	Use:   "lookup <barcode>",
	Short: "Look up a packaged food by barcode in Open Food Facts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			food, err := s.FoodDB.LookupBarcode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if foodLookupSave {
				food = s.Nutrition.AddCustomFood(food)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tPROTEIN\tCARBS\tFAT\tSERVING")
			printFoodRow(cmd, food)
			if foodLookupSave {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved food %s\n", food.ID)
			}
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Open Food Facts by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			foods, err := s.FoodDB.SearchFoods(cmd.Context(), strings.Join(args, " "), foodSearchLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tPROTEIN\tCARBS\tFAT\tSERVING")
			for _, f := range foods {
				printFoodRow(cmd, f)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodRemoveCmd, foodLookupCmd, foodSearchCmd)

	foodLookupCmd.Flags().BoolVar(&foodLookupSave, "save", false, "Save the result as a custom food")
	foodSearchCmd.Flags().IntVar(&foodSearchLimit, "limit", 10, "Result limit")

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per serving")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per serving")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs grams per serving")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per serving")
	foodAddCmd.Flags().Float64Var(&foodServingSize, "serving-size", 100, "Serving size")
	foodAddCmd.Flags().StringVar(&foodServingUnit, "serving-unit", "g", "Serving unit")
	_ = foodAddCmd.MarkFlagRequired("name")
	_ = foodAddCmd.MarkFlagRequired("calories")
}
