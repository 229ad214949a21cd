package cmd

import (
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/shell"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive task menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	sh := shell.New(
		taskService,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		shell.WithTimeLayout(cfg.TimeLayout),
	)
	return sh.Run(cmd.Context())
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
