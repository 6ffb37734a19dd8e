package lifelog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/ui/dashboard"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's nutrition, workouts, tasks and habits",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(s *app.State) error {
			fmt.Fprint(cmd.OutOrStdout(), dashboard.Render(dashboard.FromState(s)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
