package lifelog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/model"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Browse exercises and manage custom ones",
}

var (
	exerciseName        string
	exerciseCategory    string
	exerciseKcalPerMin  float64
	exerciseDescription string
	exerciseImageURL    string
	exerciseFavorites   bool
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(exerciseName)
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if exerciseKcalPerMin < 0 {
			return fmt.Errorf("--calories-per-minute must be >= 0")
		}
		return withState(func(s *app.State) error {
			e := s.Fitness.AddCustomExercise(model.Exercise{
				Name:                    name,
				Category:                strings.TrimSpace(exerciseCategory),
				CaloriesBurnedPerMinute: exerciseKcalPerMin,
				Description:             strings.TrimSpace(exerciseDescription),
				ImageURL:                strings.TrimSpace(exerciseImageURL),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added exercise %s\n", e.ID)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			all := append(ledger.CatalogExercises(), s.Fitness.AllExercises()...)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tKCAL_PER_MIN\tFAVORITE")
			for _, e := range all {
				fav := s.Fitness.IsFavorite(e.ID)
				if exerciseFavorites && !fav {
					continue
				}
				mark := ""
				if fav {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%g\t%s\n", e.ID, e.Name, e.Category, e.CaloriesBurnedPerMinute, mark)
			}
			return nil
		})
	},
}

var exerciseRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a custom exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			if _, ok := s.Fitness.Exercise(args[0]); !ok {
				return fmt.Errorf("custom exercise %s not found", args[0])
			}
			s.Fitness.RemoveCustomExercise(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed exercise %s\n", args[0])
			return nil
		})
	},
}

var exerciseFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle an exercise as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			if s.Fitness.ToggleFavoriteExercise(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "Exercise %s added to favorites\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Exercise %s removed from favorites\n", args[0])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseRemoveCmd, exerciseFavoriteCmd)

	exerciseAddCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	exerciseAddCmd.Flags().StringVar(&exerciseCategory, "category", "", "Category (Cardio, Strength, ...)")
	exerciseAddCmd.Flags().Float64Var(&exerciseKcalPerMin, "calories-per-minute", 0, "Calories burned per minute")
	exerciseAddCmd.Flags().StringVar(&exerciseDescription, "description", "", "Optional description")
	exerciseAddCmd.Flags().StringVar(&exerciseImageURL, "image-url", "", "Optional image URL")
	_ = exerciseAddCmd.MarkFlagRequired("name")

	exerciseListCmd.Flags().BoolVar(&exerciseFavorites, "favorites", false, "Only show favorites")
}
