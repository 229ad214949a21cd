package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/validators"
)

var addCmd = &cobra.Command{
	Use:   "add <description...>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		if err := validators.ValidateDescription(description); err != nil {
			return err
		}

		task, err := taskService.Add(cmd.Context(), description, time.Now().Format(cfg.TimeLayout))
		if err != nil && !errors.Is(err, apperrors.ErrStorageUnavailable) {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Task successfully added!\nID : %d\n", task.ID)
		return err
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <description...>",
	Short: "Replace the description of a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := validators.ParseTaskID(args[0])
		if err != nil {
			return err
		}

		description := strings.Join(args[1:], " ")
		if err := validators.ValidateDescription(description); err != nil {
			return err
		}

		if err := taskService.Update(cmd.Context(), id, description); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Task successfully updated!")
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := validators.ParseTaskID(args[0])
		if err != nil {
			return err
		}

		if err := taskService.Delete(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Task successfully deleted!")
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  setDone(true, "Task successfully marked as done!"),
}

var undoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Mark a task as not done",
	Args:  cobra.ExactArgs(1),
	RunE:  setDone(false, "Task successfully marked as not done!"),
}

func setDone(done bool, message string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := validators.ParseTaskID(args[0])
		if err != nil {
			return err
		}

		if err := taskService.SetDone(cmd.Context(), id, done); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), message)
		return nil
	}
}

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, deleteCmd, doneCmd, undoneCmd)
}
