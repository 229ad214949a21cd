package cmd

import (
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/export"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print all tasks as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := cfg.ExportFormat
		if exportFormat != "" {
			format = exportFormat
		}
		return export.Write(cmd.OutOrStdout(), format, taskService.List(cmd.Context()))
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "output format: yaml or json (overrides TASK_EXPORT_FORMAT)")
	rootCmd.AddCommand(exportCmd)
}
