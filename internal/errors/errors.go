package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrIndexOutOfRange indicates an operation referenced a pane index that
	// does not exist in the registry.
	ErrIndexOutOfRange = errors.New("pane index out of range")

	// ErrMeasurement indicates the measurement collaborator could not
	// produce a height for a pane, so the transition was aborted.
	ErrMeasurement = errors.New("height measurement failed")

	// ErrDestroyed indicates the accordion has been torn down and no longer
	// accepts operations.
	ErrDestroyed = errors.New("expander destroyed")
)

// PaneError ties a failure to a specific pane index.
type PaneError struct {
	Index int
	Err   error
}

func (e *PaneError) Error() string {
	return fmt.Sprintf("pane %d: %v", e.Index, e.Err)
}

func (e *PaneError) Unwrap() error {
	return e.Err
}

// OutOfRange builds the standard error for an index miss.
func OutOfRange(index int) error {
	return &PaneError{Index: index, Err: ErrIndexOutOfRange}
}

// Measurement wraps a collaborator failure as a measurement error for the
// given pane.
func Measurement(index int, cause error) error {
	return &PaneError{Index: index, Err: fmt.Errorf("%w: %w", ErrMeasurement, cause)}
}
