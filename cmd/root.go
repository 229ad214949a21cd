package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var (
	taskFile string

	cfg         config.Config
	taskService *services.TaskService
)

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Local task list manager",
	Long:          "Add, edit, complete and delete tasks stored in a plain-text file.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("failed to read .env file: %v", err)
		}

		cfg = config.Load()
		if taskFile != "" {
			cfg.TaskFile = taskFile
		}

		taskService = openTaskService(cmd.Context(), cfg.TaskFile)
		return nil
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&taskFile, "file", "f", "", "task file (overrides TASK_FILE)")
}

// openTaskService loads the task file. A missing or unreadable file is not
// fatal: the service starts empty and the first change creates the file.
func openTaskService(ctx context.Context, path string) *services.TaskService {
	service := services.NewTaskService(repository.NewTaskRepository(path))

	if err := service.Load(ctx); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("task file %s not found, starting with an empty list", path)
		} else {
			log.Printf("warning: %v; starting with an empty list", err)
		}
	}

	return service
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(apperrors.Code(err))
	}
}
