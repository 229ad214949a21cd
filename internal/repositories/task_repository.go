package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"task-tracker.com/task-tracker/internal/codec"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskRepository struct {
	path string
}

func NewTaskRepository(path string) *TaskRepository {
	return &TaskRepository{path: path}
}

func (r *TaskRepository) Path() string {
	return r.path
}

func (r *TaskRepository) Load(ctx context.Context) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStorageUnavailable, err)
	}
	defer f.Close()

	tasks, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", apperrors.ErrStorageUnavailable, r.path, err)
	}

	return tasks, nil
}

// Save replaces the whole task file. The records are written to a temporary
// sibling first and renamed into place, so readers never observe a partially
// written file.
func (r *TaskRepository) Save(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir, base := filepath.Split(r.path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	if err := os.WriteFile(tmpPath, codec.Marshal(tasks), 0o644); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", apperrors.ErrStorageUnavailable, err)
	}

	return nil
}
