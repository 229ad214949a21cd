package errors

var ErrTaskNotFound = &Exception{
	Message: "task not found",
	Code:    CodeUsage,
}
