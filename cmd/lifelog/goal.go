package lifelog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Set daily calorie and weekly workout goals",
}

var goalCaloriesCmd = &cobra.Command{
	Use:   "calories <kcal>",
	Short: "Set the daily calorie goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := parsePositiveIntArg("calorie goal", args[0])
		if err != nil {
			return err
		}
		return withState(func(s *app.State) error {
			s.Nutrition.SetDailyCalorieGoal(goal)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie goal: %d kcal\n", goal)
			return nil
		})
	},
}

var goalWeeklyCmd = &cobra.Command{
	Use:   "weekly <workouts>",
	Short: "Set the weekly workout goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := parsePositiveIntArg("weekly goal", args[0])
		if err != nil {
			return err
		}
		return withState(func(s *app.State) error {
			s.Fitness.SetWeeklyGoal(goal)
			fmt.Fprintf(cmd.OutOrStdout(), "Weekly workout goal: %d\n", goal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalCaloriesCmd, goalWeeklyCmd)
}
