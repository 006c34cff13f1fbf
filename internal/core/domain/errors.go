package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDictionaryUnavailable indicates no character store is configured.
	// Evaluation still works on fallback records; suggestion does not.
	ErrDictionaryUnavailable = errors.New("character dictionary unavailable")

	// ErrUnsupportedFormat indicates a data file has an unknown format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// InvalidInputError reports a name composition with unsupported lengths.
// It matches ErrInvalidInput under errors.Is.
type InvalidInputError struct {
	SurnameLength int
	GivenLength   int
	Reason        string
}

// NewInvalidInputError creates an InvalidInputError.
func NewInvalidInputError(surnameLen, givenLen int, reason string) *InvalidInputError {
	return &InvalidInputError{SurnameLength: surnameLen, GivenLength: givenLen, Reason: reason}
}

// Error implements error.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s (surname length %d, given length %d)",
		e.Reason, e.SurnameLength, e.GivenLength)
}

// Unwrap returns ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
