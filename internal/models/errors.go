package models

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify any error returned by the services.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrNameRequired     = &ValidationError{Field: "name", Message: "name is required"}
	ErrInvalidPriority  = &ValidationError{Field: "priority", Message: "priority must be between 0 and 3"}
	ErrInvalidStatus    = &ValidationError{Field: "status", Message: "status must be between 0 and 2"}
	ErrTaskNotFound     = fmt.Errorf("task %w", ErrNotFound)
	ErrTaskListNotFound = fmt.Errorf("task list %w", ErrNotFound)
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
