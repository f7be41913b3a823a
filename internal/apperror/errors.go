package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced workshop/user/type row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateRating is returned when a (workshop, user) pair already has a rating.
	ErrDuplicateRating = errors.New("user has already rated this workshop")

	// ErrInvalidTransition is returned when a status change violates the
	// allowed lifecycle (Pending -> Accepted, Pending -> Deleted, Accepted -> Deleted).
	ErrInvalidTransition = errors.New("workshop status transition not allowed")
)

// FieldError indicates an error with a specific input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one or more field errors for malformed input.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("%s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
