package lifelog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local lifelog database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(_ *sql.DB, cfg app.Config) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized lifelog database at %s\n", cfg.DBPath)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
