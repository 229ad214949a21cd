package errors

var ErrStorageUnavailable = &Exception{
	Message: "task storage unavailable",
	Code:    CodeStorageError,
}
