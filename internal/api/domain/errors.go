package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrJobNotFound is returned when an id has no live row. A normal
	// outcome for callers, not a storage failure.
	ErrJobNotFound = errors.New("job not found")
)

// ValidationError reports incomplete or malformed client input.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Missing, ", "))
	}
	return e.Message
}

// NewValidationError builds a ValidationError for missing required fields.
func NewValidationError(message string, missing ...string) error {
	return &ValidationError{Message: message, Missing: missing}
}

// StoreError wraps a persistence-layer failure. Surfaces as HTTP 500.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the failing store operation.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
