package validators

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ParseTaskID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: task id is required", apperrors.ErrInvalidInput)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: task id must be a positive integer, got %q", apperrors.ErrInvalidInput, raw)
	}
	return id, nil
}

func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrInvalidInput)
	}
	if strings.ContainsAny(description, "\r\n") {
		return fmt.Errorf("%w: description must be a single line", apperrors.ErrInvalidInput)
	}
	return nil
}

func ValidateTimestamp(createdAt string) error {
	if strings.ContainsAny(createdAt, "\r\n") {
		return fmt.Errorf("%w: timestamp must be a single line", apperrors.ErrInvalidInput)
	}
	return nil
}
