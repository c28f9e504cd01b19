package salary

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned when an employee has no salary profile.
var ErrProfileNotFound = errors.New("salary profile not found")

// ValidationError reports a profile that must be corrected by HR before
// payroll can run. The reason is surfaced verbatim to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid salary profile: " + e.Reason
}

// ReferenceError reports an assigned component whose definition is
// missing from the library.
type ReferenceError struct {
	ComponentID string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("assigned component %s not found in library", e.ComponentID)
}
