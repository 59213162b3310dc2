package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of the resource.
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Ledger-specific error kinds. Callers match these with errors.Is to
// distinguish posting failures from generic validation problems.
var (
	// ErrAlreadyPosted is returned when posting, editing, or deleting an
	// entry that has already been posted.
	ErrAlreadyPosted = errors.New("journal entry already posted")

	// ErrNotDraft is returned when an operation requires a draft entry.
	ErrNotDraft = errors.New("journal entry is not a draft")

	// ErrAccountNotPostable is returned when a ledger operation targets a
	// summary account. Summary accounts aggregate their children and
	// carry no posted history of their own.
	ErrAccountNotPostable = errors.New("account does not allow posting")

	// ErrValidationFailed is returned when posting is blocked by one or
	// more journal violations.
	ErrValidationFailed = errors.New("journal entry validation failed")
)

// Integrity errors signal corrupted ledger history detected at read time.
// They are system faults, never user errors, and must be surfaced
// distinctly from ErrNotFound or empty results.
var (
	// ErrTrialBalanceMismatch indicates the debit and credit columns of a
	// trial balance do not sum to the same total.
	ErrTrialBalanceMismatch = errors.New("trial balance columns do not match")

	// ErrBalanceSheetMismatch indicates total assets do not equal total
	// liabilities plus equity.
	ErrBalanceSheetMismatch = errors.New("balance sheet identity does not hold")

	// ErrBalanceDivergence indicates a cached account balance disagrees
	// with a replay of its posted history.
	ErrBalanceDivergence = errors.New("cached balance diverges from posted history")
)

// AppError wraps an underlying error with an HTTP-ish status code and a
// message suitable for logging. Repositories use it to carry context
// upward without losing the sentinel for errors.Is checks.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
