package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/validators"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskRepository interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

// TaskService owns the task collection. Tasks are kept sorted by id and every
// mutation rewrites the repository before returning.
type TaskService struct {
	repo   TaskRepository
	tasks  []model.Task
	nextID int
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{
		repo:   repo,
		nextID: 1,
	}
}

// Load replaces the collection with the repository contents. On failure the
// collection is left empty and the error is returned; the service stays usable.
func (s *TaskService) Load(ctx context.Context) error {
	s.tasks = nil
	defer s.recomputeNextID()

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(loaded))
	for _, task := range loaded {
		if task.ID <= 0 {
			continue
		}
		if _, dup := seen[task.ID]; dup {
			continue
		}
		seen[task.ID] = struct{}{}
		s.tasks = append(s.tasks, task)
	}
	slices.SortFunc(s.tasks, func(a, b model.Task) int { return cmp.Compare(a.ID, b.ID) })

	return nil
}

// Add stores a new task under the next available id. If the write fails the
// task is kept in memory and returned along with the storage error.
func (s *TaskService) Add(ctx context.Context, description, createdAt string) (model.Task, error) {
	if err := validators.ValidateDescription(description); err != nil {
		return model.Task{}, err
	}
	if err := validators.ValidateTimestamp(createdAt); err != nil {
		return model.Task{}, err
	}

	task := model.Task{
		ID:          s.nextID,
		Description: description,
		CreatedAt:   createdAt,
	}

	i, _ := s.find(task.ID)
	s.tasks = slices.Insert(s.tasks, i, task)
	s.recomputeNextID()

	return task, s.persist(ctx)
}

func (s *TaskService) Update(ctx context.Context, id int, description string) error {
	if err := validators.ValidateDescription(description); err != nil {
		return err
	}

	i, ok := s.find(id)
	if !ok {
		return notFound(id)
	}

	s.tasks[i].Description = description
	return s.persist(ctx)
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	i, ok := s.find(id)
	if !ok {
		return notFound(id)
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.recomputeNextID()

	return s.persist(ctx)
}

func (s *TaskService) SetDone(ctx context.Context, id int, done bool) error {
	i, ok := s.find(id)
	if !ok {
		return notFound(id)
	}

	s.tasks[i].Done = done
	return s.persist(ctx)
}

func (s *TaskService) Get(ctx context.Context, id int) (model.Task, error) {
	i, ok := s.find(id)
	if !ok {
		return model.Task{}, notFound(id)
	}
	return s.tasks[i], nil
}

func (s *TaskService) List(ctx context.Context) []model.Task {
	return slices.Clone(s.tasks)
}

func (s *TaskService) ListDone(ctx context.Context) []model.Task {
	done := make([]model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.Done {
			done = append(done, task)
		}
	}
	return done
}

func (s *TaskService) NextID() int {
	return s.nextID
}

func (s *TaskService) find(id int) (int, bool) {
	return slices.BinarySearchFunc(s.tasks, id, func(t model.Task, id int) int {
		return cmp.Compare(t.ID, id)
	})
}

// recomputeNextID sets nextID to the smallest positive id not in use.
func (s *TaskService) recomputeNextID() {
	used := make(map[int]struct{}, len(s.tasks))
	for _, task := range s.tasks {
		used[task.ID] = struct{}{}
	}

	next := 1
	for {
		if _, taken := used[next]; !taken {
			break
		}
		next++
	}
	s.nextID = next
}

func (s *TaskService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.tasks); err != nil {
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func notFound(id int) error {
	return fmt.Errorf("%w: id %d", apperrors.ErrTaskNotFound, id)
}
