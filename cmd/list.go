package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	model "task-tracker.com/task-tracker/pkg/models"
)

var listDoneOnly bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks in id order",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := taskService.List(cmd.Context())
		if listDoneOnly {
			tasks = taskService.ListDone(cmd.Context())
		}
		printTasks(cmd.OutOrStdout(), tasks)
		return nil
	},
}

func printTasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	fmt.Fprintf(w, "%-4s  %-8s  %-12s  %s\n", "ID", "Status", "Created", "Description")
	for _, t := range tasks {
		fmt.Fprintf(w, "%-4d  %-8s  %-12s  %s\n", t.ID, t.Status(), t.CreatedAt, t.Description)
	}
}

func init() {
	listCmd.Flags().BoolVar(&listDoneOnly, "done", false, "only show finished tasks")
	rootCmd.AddCommand(listCmd)
}
