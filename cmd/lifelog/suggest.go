package lifelog

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/ai"
	"github.com/saadjs/lifelog/internal/app"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask the AI assistant for suggestions",
}

var (
	suggestLevel        string
	suggestMinutes      int
	suggestGoals        string
	suggestRestrictions string
)

func printSuggestion(cmd *cobra.Command, ask func(context.Context, *app.State) (string, error)) error {
	return withState(func(s *app.State) error {
		out, err := ask(cmd.Context(), s)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(out))
		return nil
	})
}

var suggestWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Suggest a workout for your level, time and goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs := ai.WorkoutPreferences{
			FitnessLevel:  strings.TrimSpace(suggestLevel),
			AvailableTime: suggestMinutes,
			Goals:         strings.TrimSpace(suggestGoals),
		}
		return printSuggestion(cmd, func(ctx context.Context, s *app.State) (string, error) {
			return s.Suggester.Workout(ctx, prefs)
		})
	},
}

var suggestMealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Suggest a meal sized to today's remaining calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSuggestion(cmd, func(ctx context.Context, s *app.State) (string, error) {
			return s.Suggester.Meal(ctx, strings.TrimSpace(suggestRestrictions))
		})
	},
}

var suggestTipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Get productivity tips based on your tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSuggestion(cmd, func(ctx context.Context, s *app.State) (string, error) {
			return s.Suggester.ProductivityTips(ctx)
		})
	},
}

var suggestHabitsCmd = &cobra.Command{
	Use:   "habits <goals>",
	Short: "Suggest habits that support your goals",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goals := strings.TrimSpace(strings.Join(args, " "))
		if goals == "" {
			return fmt.Errorf("goals are required")
		}
		return printSuggestion(cmd, func(ctx context.Context, s *app.State) (string, error) {
			return s.Suggester.Habits(ctx, goals)
		})
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.AddCommand(suggestWorkoutCmd, suggestMealCmd, suggestTipsCmd, suggestHabitsCmd)

	suggestWorkoutCmd.Flags().StringVar(&suggestLevel, "level", ai.DefaultWorkoutPreferences.FitnessLevel, "Fitness level")
	suggestWorkoutCmd.Flags().IntVar(&suggestMinutes, "minutes", ai.DefaultWorkoutPreferences.AvailableTime, "Available minutes")
	suggestWorkoutCmd.Flags().StringVar(&suggestGoals, "goals", ai.DefaultWorkoutPreferences.Goals, "Fitness goals")
	suggestMealCmd.Flags().StringVar(&suggestRestrictions, "restrictions", "", "Dietary restrictions")
}
