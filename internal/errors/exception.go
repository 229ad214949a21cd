package errors

import (
	"errors"
)

const (
	CodeFailure      = 1
	CodeUsage        = 2
	CodeStorageError = 3
)

type Exception struct {
	Message string
	Code    int
}

func (e *Exception) Error() string {
	return e.Message
}

// Code returns the process exit code for err. Errors that are not an
// *Exception map to CodeFailure.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeFailure
}
