package service

import "errors"

var (
	ErrNotFound    = errors.New("book not found")
	ErrUnavailable = errors.New("storage unavailable")
)

// ValidationError reports malformed, missing, or out-of-range input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports an ISBN uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
