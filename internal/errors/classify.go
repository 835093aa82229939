package errors

import "errors"

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Message  string // Short user-facing message
}

func (e *UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UIError) Unwrap() error {
	return e.Err
}

// Classify converts an error into a UIError with a message suitable for the
// status bar.
func Classify(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	switch {
	case errors.Is(err, ErrIndexOutOfRange):
		return &UIError{Err: err, Severity: SeverityError, Message: "No such section"}
	case errors.Is(err, ErrMeasurement):
		return &UIError{Err: err, Severity: SeverityWarning, Message: "Section content is not ready"}
	case errors.Is(err, ErrDestroyed):
		return &UIError{Err: err, Severity: SeverityInfo, Message: "Expander has been closed"}
	}

	return &UIError{Err: err, Severity: SeverityError, Message: "Something went wrong"}
}

// UserMessage is a convenience wrapper around Classify for callers that only
// need the display string.
func UserMessage(err error) string {
	if c := Classify(err); c != nil {
		return c.Message
	}
	return ""
}
