package model

import (
	"task-tracker.com/task-tracker/pkg/constants"
)

type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	Done        bool   `json:"done" yaml:"done"`
}

func (t Task) Status() constants.TaskStatus {
	return constants.StatusOf(t.Done)
}
