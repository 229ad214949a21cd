package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type document struct {
	Count int          `json:"count" yaml:"count"`
	Tasks []model.Task `json:"tasks" yaml:"tasks"`
}

// Write renders tasks to w in the given format. A nil slice is written as an
// empty list.
func Write(w io.Writer, format string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	doc := document{Count: len(tasks), Tasks: tasks}

	switch strings.ToLower(format) {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("%w: unsupported export format %q", apperrors.ErrInvalidInput, format)
	}
}
