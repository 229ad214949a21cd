package errors

var ErrInvalidInput = &Exception{
	Message: "invalid input",
	Code:    CodeUsage,
}
