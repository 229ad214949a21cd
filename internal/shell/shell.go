// Package shell implements the interactive numbered menu on top of the task
// service.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	config "task-tracker.com/task-tracker/internal/configs"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/validators"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskStore interface {
	Add(ctx context.Context, description, createdAt string) (model.Task, error)
	Update(ctx context.Context, id int, description string) error
	Delete(ctx context.Context, id int) error
	SetDone(ctx context.Context, id int, done bool) error
	Get(ctx context.Context, id int) (model.Task, error)
	List(ctx context.Context) []model.Task
	ListDone(ctx context.Context) []model.Task
}

const (
	choiceAdd = iota + 1
	choiceUpdate
	choiceDelete
	choiceDisplay
	choiceMarkDone
	choiceMarkUndone
	choiceDisplayFinished
	choiceExit
)

const (
	banner    = "============================="
	separator = "-----------------------------"
)

type Shell struct {
	store      TaskStore
	in         *bufio.Scanner
	out        io.Writer
	now        func() time.Time
	timeLayout string
}

type Option func(*Shell)

func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

func WithTimeLayout(layout string) Option {
	return func(s *Shell) { s.timeLayout = layout }
}

func New(store TaskStore, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:      store,
		in:         bufio.NewScanner(in),
		out:        out,
		now:        time.Now,
		timeLayout: config.DefaultTimeLayout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user picks Exit or input ends. Operation
// failures are reported and the loop continues; only a read error on the input
// stream is returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < choiceAdd || choice > choiceExit {
			s.printf("Invalid choice %q, pick a number between 1 and %d.\n", strings.TrimSpace(line), choiceExit)
			continue
		}
		if choice == choiceExit {
			return nil
		}

		if !s.dispatch(ctx, choice) {
			return s.in.Err()
		}
	}
}

// dispatch runs one menu action. It returns false when input ran out while
// prompting.
func (s *Shell) dispatch(ctx context.Context, choice int) bool {
	switch choice {
	case choiceAdd:
		return s.addTask(ctx)
	case choiceUpdate:
		return s.updateTask(ctx)
	case choiceDelete:
		return s.withID(ctx, "Enter the ID of the task you want to delete: ", func(id int) error {
			if err := s.store.Delete(ctx, id); err != nil {
				return err
			}
			s.printf("Task successfully deleted!\n")
			return nil
		})
	case choiceDisplay:
		s.displayTasks("Current Tasks", s.store.List(ctx))
	case choiceMarkDone:
		return s.withID(ctx, "Enter the id you want to mark as done: ", func(id int) error {
			if err := s.store.SetDone(ctx, id, true); err != nil {
				return err
			}
			s.printf("Task successfully marked as done!\n")
			return nil
		})
	case choiceMarkUndone:
		return s.withID(ctx, "Enter the id you want to mark as not done: ", func(id int) error {
			if err := s.store.SetDone(ctx, id, false); err != nil {
				return err
			}
			s.printf("Task successfully marked as not done!\n")
			return nil
		})
	case choiceDisplayFinished:
		s.displayTasks("Finished Tasks", s.store.ListDone(ctx))
	}
	return true
}

func (s *Shell) addTask(ctx context.Context) bool {
	s.printf("Enter task description : ")
	description, ok := s.readLine()
	if !ok {
		return false
	}
	if err := validators.ValidateDescription(description); err != nil {
		s.report(err)
		return true
	}

	task, err := s.store.Add(ctx, description, s.now().Format(s.timeLayout))
	if err != nil && !errors.Is(err, apperrors.ErrStorageUnavailable) {
		s.report(err)
		return true
	}
	s.printf("Task successfully added!\nID : %d\n", task.ID)
	if err != nil {
		s.report(err)
	}
	return true
}

func (s *Shell) updateTask(ctx context.Context) bool {
	return s.withID(ctx, "Enter the task ID to update: ", func(id int) error {
		task, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}

		s.printf("Current Task: %s\n", task.Description)
		s.printf("Enter new description: ")
		description, ok := s.readLine()
		if !ok {
			return io.EOF
		}
		if err := validators.ValidateDescription(description); err != nil {
			return err
		}

		if err := s.store.Update(ctx, id, description); err != nil {
			return err
		}
		s.printf("Task successfully updated!\n")
		return nil
	})
}

// withID prompts for a task id and passes it to fn. Errors from fn are
// reported to the user; io.EOF ends the session.
func (s *Shell) withID(ctx context.Context, prompt string, fn func(id int) error) bool {
	s.printf("%s", prompt)
	line, ok := s.readLine()
	if !ok {
		return false
	}

	id, err := validators.ParseTaskID(line)
	if err != nil {
		s.report(err)
		return true
	}

	if err := fn(id); err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}
		s.report(err)
	}
	return true
}

func (s *Shell) displayTasks(title string, tasks []model.Task) {
	s.printf("%s\n\t%s\n%s\n", banner, title, banner)
	if len(tasks) == 0 {
		s.printf("No tasks.\n")
	}
	for _, task := range tasks {
		s.printf("ID : %d\n", task.ID)
		s.printf("Description : %s\n", task.Description)
		s.printf("Created at : %s\n", task.CreatedAt)
		s.printf("Status : %s\n", task.Status())
		s.printf("%s\n", separator)
	}
}

func (s *Shell) printMenu() {
	s.printf("%s\n\tTASK MANAGER\n%s\n", banner, banner)
	s.printf("\t1. Add Tasks\n")
	s.printf("\t2. Update Tasks\n")
	s.printf("\t3. Delete Task\n")
	s.printf("\t4. Display Task\n")
	s.printf("\t5. Mark Task As Done\n")
	s.printf("\t6. Mark Task As Not Done\n")
	s.printf("\t7. Display Finished Task\n")
	s.printf("\t8. Exit\n")
}

func (s *Shell) report(err error) {
	switch {
	case errors.Is(err, apperrors.ErrTaskNotFound):
		s.printf("Task ID not found.\n")
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		log.Printf("warning: %v", err)
		s.printf("Warning: changes could not be saved: %v\n", err)
	default:
		s.printf("Error: %v\n", err)
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(s.in.Text(), "\r"), true
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
