package syncx

import (
	"errors"
	"fmt"
)

// Error taxonomy exposed to consumers. Collaborator failures are converted
// into one of these before leaving the package; raw transport errors never
// leak. Match with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrDuplicateName = errors.New("duplicate name")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrPermission    = errors.New("permission denied")
	ErrTransient     = errors.New("transient failure")
	ErrNotFound      = errors.New("not found")
)

// ValidationError reports a bad input shape. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// QuotaExceededError blocks creation; user-actionable.
type QuotaExceededError struct {
	MaxAllowed int
	Message    string
}

func (e *QuotaExceededError) Error() string { return e.Message }

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// classify maps an arbitrary collaborator error onto the taxonomy. Errors
// that are already classified pass through unchanged; anything unknown is
// treated as transient.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrQuotaExceeded),
		errors.Is(err, ErrPermission),
		errors.Is(err, ErrTransient),
		errors.Is(err, ErrNotFound):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
}
