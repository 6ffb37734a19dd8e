package lifelog

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track today's water intake in ml",
}

var waterSetCmd = &cobra.Command{
	Use:   "set <ml>",
	Short: "Set water intake",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseFloatArg("amount", args[0])
		if err != nil {
			return err
		}
		return withState(func(s *app.State) error {
			s.Nutrition.SetWaterIntake(math.Max(0, amount))
			fmt.Fprintf(cmd.OutOrStdout(), "Water intake: %gml\n", s.Nutrition.WaterIntake())
			return nil
		})
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Add (or with a negative amount, remove) water",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseFloatArg("amount", args[0])
		if err != nil {
			return err
		}
		return withState(func(s *app.State) error {
			s.Nutrition.SetWaterIntake(math.Max(0, s.Nutrition.WaterIntake()+amount))
			fmt.Fprintf(cmd.OutOrStdout(), "Water intake: %gml\n", s.Nutrition.WaterIntake())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterSetCmd, waterAddCmd)
}
