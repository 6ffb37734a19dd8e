package lifelog

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/lifelog/internal/app"
)

var (
	exportFormat string
	exportOut    string
	importFormat string
	importIn     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all ledgers (json or yaml)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		format, err := app.ParseFormat(exportFormat, exportOut)
		if err != nil {
			return err
		}
		return withState(func(s *app.State) error {
			raw, err := s.Export(format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(exportOut, raw, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace all ledgers with an exported bundle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		format, err := app.ParseFormat(importFormat, importIn)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withState(func(s *app.State) error {
			if err := s.Import(raw, format); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported data from %s\n", importIn)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format: json or yaml (default from file extension)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importFormat, "format", "", "Import format: json or yaml (default from file extension)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
}
