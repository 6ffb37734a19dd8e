package lifelog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/model"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Complete workout plans and review workout history",
}

var (
	workoutPlanID   string
	workoutDuration int
	workoutCalories float64
)

var workoutPlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List built-in workout plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tEXERCISES\tDURATION_MIN\tEST_KCAL")
		for _, p := range ledger.WorkoutPlans() {
			duration, calories := 0, 0.0
			names := make([]string, 0, len(p.Exercises))
			for _, item := range p.Exercises {
				duration += item.Duration
				calories += item.Exercise.CaloriesBurnedPerMinute * float64(item.Duration)
				names = append(names, item.Exercise.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%.0f\n", p.ID, p.Name, strings.Join(names, ", "), duration, calories)
		}
		return nil
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete <plan-id>",
	Short: "Record a built-in plan as completed now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, ok := ledger.WorkoutPlan(args[0])
		if !ok {
			return fmt.Errorf("workout plan %s not found", args[0])
		}
		return withState(func(s *app.State) error {
			w := s.Fitness.CompleteWorkout(plan)
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s: %d min, %.1f kcal (workout %s)\n", plan.Name, w.Duration, w.CaloriesBurned, w.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "This week: %d/%d\n", s.Fitness.WeeklyProgress(), s.Fitness.WeeklyGoal())
			return nil
		})
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a workout with explicit duration and calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutDuration <= 0 {
			return fmt.Errorf("--duration must be > 0")
		}
		if workoutCalories < 0 {
			return fmt.Errorf("--calories must be >= 0")
		}
		return withState(func(s *app.State) error {
			w := s.Fitness.AddCompletedWorkout(model.CompletedWorkout{
				PlanID:         strings.TrimSpace(workoutPlanID),
				Duration:       workoutDuration,
				CaloriesBurned: workoutCalories,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %s\n", w.ID)
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List completed workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tPLAN\tDURATION_MIN\tKCAL")
			for _, w := range s.Fitness.CompletedWorkouts() {
				plan := w.PlanID
				if p, ok := ledger.WorkoutPlan(w.PlanID); ok {
					plan = p.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%.1f\n", w.ID, shortDate(w.Date), plan, w.Duration, w.CaloriesBurned)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "This week: %d/%d\n", s.Fitness.WeeklyProgress(), s.Fitness.WeeklyGoal())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutPlansCmd, workoutCompleteCmd, workoutLogCmd, workoutListCmd)

	workoutLogCmd.Flags().StringVar(&workoutPlanID, "plan", "", "Optional plan id")
	workoutLogCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
	workoutLogCmd.Flags().Float64Var(&workoutCalories, "calories", 0, "Calories burned")
	_ = workoutLogCmd.MarkFlagRequired("duration")
}
