package apperrors

import (
	"fmt"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
)

// JournalValidationError carries the full violation list that blocked a
// posting attempt. It unwraps to ErrValidationFailed so callers can
// match the kind with errors.Is and extract the details with errors.As.
type JournalValidationError struct {
	Violations domain.Violations
}

func (e *JournalValidationError) Error() string {
	return fmt.Sprintf("%v: %d violation(s)", ErrValidationFailed, len(e.Violations))
}

func (e *JournalValidationError) Unwrap() error {
	return ErrValidationFailed
}
