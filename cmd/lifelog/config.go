package lifelog

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
	"github.com/saadjs/lifelog/internal/logger"
	"github.com/saadjs/lifelog/internal/storage"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lifelog local configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (ai_endpoint, ai_timeout, log_level)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(strings.TrimSpace(args[0]))
		value := strings.TrimSpace(args[1])
		if !storage.IsKnownConfigKey(key) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		switch key {
		case storage.ConfigAITimeout:
			if _, err := app.ParseTimeout(value); err != nil {
				return err
			}
		case storage.ConfigLogLevel:
			if _, err := logger.ParseLevel(value); err != nil {
				return err
			}
		}
		return withDB(func(sqldb *sql.DB, _ app.Config) error {
			if err := storage.SetConfig(sqldb, key, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show stored configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, _ app.Config) error {
			if len(args) == 1 {
				value, ok, err := storage.GetConfig(sqldb, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("config key %q is not set", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			}
			cfg, err := storage.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)
}
