package lifelog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/model"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Track habits and streaks",
}

var (
	habitName      string
	habitFrequency string
)

func parseFrequency(value string) (model.Frequency, error) {
	f := model.Frequency(strings.ToLower(strings.TrimSpace(value)))
	if !f.Valid() {
		return "", fmt.Errorf("invalid --frequency %q (use daily or weekly)", value)
	}
	return f, nil
}

var habitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a habit",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(habitName)
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		freq, err := parseFrequency(habitFrequency)
		if err != nil {
			return err
		}
		return withState(func(s *app.State) error {
			h := s.Productivity.AddHabit(ledger.HabitInput{Name: name, Frequency: freq})
			fmt.Fprintf(cmd.OutOrStdout(), "Added habit %s\n", h.ID)
			return nil
		})
	},
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with today's status and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			today := clock.DateKey(s.Clock.Now())
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTODAY\tFREQUENCY\tSTREAK\tNAME")
			for _, h := range s.Productivity.Habits() {
				done := " "
				if slices.Contains(h.CompletedDates, today) {
					done = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s]\t%s\t%d\t%s\n", h.ID, done, h.Frequency, h.Streak, h.Name)
			}
			return nil
		})
	},
}

var habitUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a habit or change its frequency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var u ledger.HabitUpdate
		if cmd.Flags().Changed("name") {
			name := strings.TrimSpace(habitName)
			if name == "" {
				return fmt.Errorf("--name cannot be empty")
			}
			u.Name = &name
		}
		if cmd.Flags().Changed("frequency") {
			freq, err := parseFrequency(habitFrequency)
			if err != nil {
				return err
			}
			u.Frequency = &freq
		}
		if u == (ledger.HabitUpdate{}) {
			return fmt.Errorf("set --name or --frequency")
		}
		return withState(func(s *app.State) error {
			if _, ok := s.Productivity.Habit(args[0]); !ok {
				return fmt.Errorf("habit %s not found", args[0])
			}
			s.Productivity.UpdateHabit(args[0], u)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated habit %s\n", args[0])
			return nil
		})
	},
}

var habitCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Toggle today's completion of a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			h, ok := s.Productivity.ToggleHabitCompletion(args[0])
			if !ok {
				return fmt.Errorf("habit %s not found", args[0])
			}
			state := "not done"
			if slices.Contains(h.CompletedDates, clock.DateKey(s.Clock.Now())) {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s today, streak %d\n", h.Name, state, h.Streak)
			return nil
		})
	},
}

var habitRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			if _, ok := s.Productivity.Habit(args[0]); !ok {
				return fmt.Errorf("habit %s not found", args[0])
			}
			s.Productivity.RemoveHabit(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed habit %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitUpdateCmd, habitCheckCmd, habitRemoveCmd)

	for _, c := range []*cobra.Command{habitAddCmd, habitUpdateCmd} {
		c.Flags().StringVar(&habitName, "name", "", "Habit name")
		c.Flags().StringVar(&habitFrequency, "frequency", "daily", "Frequency: daily or weekly")
	}
	_ = habitAddCmd.MarkFlagRequired("name")
}
