package schedulers

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error returned for a process set that
// cannot be scheduled.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes one rejected process. Index is -1 when the
// problem concerns the set as a whole.
type ValidationError struct {
	Index  int
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	if e.Name == "" {
		return fmt.Sprintf("%s: process #%d: %s", ErrInvalidInput, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s: process #%d (%s): %s", ErrInvalidInput, e.Index, e.Name, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
