package warnings

import "fmt"

// Error is the escalation produced when a warning resolves to ActionError.
// Instead of being emitted through the handler, the warning is handed back
// to the caller as this error.
type Error struct {
	// Warning is the occurrence that escalated.
	Warning Warning
}

// NewError wraps a warning in an escalation error.
func NewError(w Warning) *Error {
	return &Error{Warning: w}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Warning.CategoryName(), e.Warning.Message)
}
