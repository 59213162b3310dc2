package domain

// ViolationCode identifies a single posting rule that a candidate journal
// entry breaks. Codes are stable identifiers for API clients; the message
// is for humans.
type ViolationCode string

const (
	ViolationMissingDate        ViolationCode = "MISSING_DATE"
	ViolationEmptyDescription   ViolationCode = "EMPTY_DESCRIPTION"
	ViolationInsufficientLines  ViolationCode = "INSUFFICIENT_LINES"
	ViolationZeroAmountLine     ViolationCode = "ZERO_AMOUNT_LINE"
	ViolationBothSidesSet       ViolationCode = "BOTH_SIDES_SET"
	ViolationNegativeAmount     ViolationCode = "NEGATIVE_AMOUNT"
	ViolationBadPrecision       ViolationCode = "BAD_PRECISION"
	ViolationDuplicateAccount   ViolationCode = "DUPLICATE_ACCOUNT"
	ViolationAccountNotFound    ViolationCode = "ACCOUNT_NOT_FOUND"
	ViolationAccountInactive    ViolationCode = "ACCOUNT_INACTIVE"
	ViolationAccountNotPostable ViolationCode = "ACCOUNT_NOT_POSTABLE"
	ViolationUnbalancedEntry    ViolationCode = "UNBALANCED_ENTRY"
)

// Violation is a structured reason a journal entry cannot be posted.
// Violations are data, not errors: validation reports every rule the
// entry breaks and lets the caller decide whether to block or warn.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Message string        `json:"message"`
}

// Violations is the full, additive result of validating one entry.
// An empty slice means the entry is postable.
type Violations []Violation

// Has reports whether any violation carries the given code.
func (vs Violations) Has(code ViolationCode) bool {
	for _, v := range vs {
		if v.Code == code {
			return true
		}
	}
	return false
}
