package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidProgress = errors.New("invalid progress")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ProgressError represents a rejected position update
type ProgressError struct {
	BookID   int64
	Position int64
	Reason   string
}

func (e *ProgressError) Error() string {
	return fmt.Sprintf("cannot set position of book %d to %d: %s", e.BookID, e.Position, e.Reason)
}

func (e *ProgressError) Is(target error) bool {
	return target == ErrInvalidProgress
}
