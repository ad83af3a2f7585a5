package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data or the current entity state failed a
// business rule check. All business-rule violations wrap this.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// Period-keyed records (depreciation, monthly usage) use this for duplicate periods.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with the resource's current state,
// e.g. posting a document that is already posted.
var ErrConflict = errors.New("operation conflicts with current state")

// ErrInternal indicates an unexpected failure that is not the caller's fault.
var ErrInternal = errors.New("internal error")

// AppError pairs an error with an HTTP-like status code for the transport layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
