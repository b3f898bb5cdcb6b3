package apperror

import "fmt"

// Error codes used across the service layer. Handlers map these to HTTP
// status codes; services themselves know nothing about HTTP.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeValidation        = "VALIDATION"
	CodeConflict          = "CONFLICT"
	CodeUnknown           = "UNKNOWN"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors by code so errors.Is works against the sentinels below
// regardless of the formatted message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound          = &Error{Code: CodeNotFound, Message: "resource not found"}
	ErrInsufficientStock = &Error{Code: CodeInsufficientStock, Message: "insufficient stock"}
	ErrValidation        = &Error{Code: CodeValidation, Message: "invalid input"}
	ErrConflict          = &Error{Code: CodeConflict, Message: "resource already exists"}
)

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func InsufficientStock(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInsufficientStock, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}
