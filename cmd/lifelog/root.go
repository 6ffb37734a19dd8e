package lifelog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "lifelog",
	Short:        "lifelog tracks meals, workouts, tasks and habits from your terminal",
	Long:         "lifelog is a local-first personal tracker for nutrition, fitness and productivity with AI-generated suggestions.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}
