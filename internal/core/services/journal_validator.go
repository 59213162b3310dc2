package services

import (
	"fmt"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/utils/accounting"
)

// ValidateJournalEntry checks a candidate entry against every posting
// rule and returns the full list of violations. Checks are additive: a
// broken entry reports everything wrong with it in one pass, so a client
// can fix all problems at once instead of replaying the submit loop.
//
// accounts must contain the resolved account for every distinct account
// ID the lines reference; IDs absent from the map are reported as
// ACCOUNT_NOT_FOUND.
func ValidateJournalEntry(entry domain.JournalEntry, accounts map[string]domain.Account) domain.Violations {
	var violations domain.Violations

	if entry.EntryDate.IsZero() {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationMissingDate,
			Message: "entry date is required",
		})
	}
	if entry.Description == "" {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationEmptyDescription,
			Message: "description is required",
		})
	}
	// All-zero lines don't count toward the minimum; an entry padded
	// with empty lines is still a one-legged entry.
	nonzeroLines := 0
	for _, line := range entry.Lines {
		if !line.Debit.IsZero() || !line.Credit.IsZero() {
			nonzeroLines++
		}
	}
	if nonzeroLines < 2 {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationInsufficientLines,
			Message: fmt.Sprintf("entry has %d line(s) with an amount, at least 2 required", nonzeroLines),
		})
	}

	seen := make(map[string]bool, len(entry.Lines))
	for i, line := range entry.Lines {
		if line.Debit.IsZero() && line.Credit.IsZero() {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationZeroAmountLine,
				Message: fmt.Sprintf("line %d has neither debit nor credit", i+1),
			})
		}
		if !line.Debit.IsZero() && !line.Credit.IsZero() {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationBothSidesSet,
				Message: fmt.Sprintf("line %d sets both debit and credit", i+1),
			})
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationNegativeAmount,
				Message: fmt.Sprintf("line %d has a negative amount", i+1),
			})
		}
		if !domain.HasValidScale(line.Debit) || !domain.HasValidScale(line.Credit) {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationBadPrecision,
				Message: fmt.Sprintf("line %d has more than %d decimal places", i+1, domain.MinorUnitPlaces),
			})
		}

		if seen[line.AccountID] {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationDuplicateAccount,
				Message: fmt.Sprintf("account %s appears on more than one line", line.AccountID),
			})
		}
		seen[line.AccountID] = true

		account, ok := accounts[line.AccountID]
		if !ok {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationAccountNotFound,
				Message: fmt.Sprintf("account %s does not exist", line.AccountID),
			})
			continue
		}
		if !account.IsActive {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationAccountInactive,
				Message: fmt.Sprintf("account %s (%s) is inactive", account.Code, account.Name),
			})
		}
		if !account.AllowPosting {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationAccountNotPostable,
				Message: fmt.Sprintf("account %s (%s) is a summary account and does not accept postings", account.Code, account.Name),
			})
		}
	}

	totalDebit := accounting.SumDebits(entry.Lines)
	totalCredit := accounting.SumCredits(entry.Lines)
	if !totalDebit.Equal(totalCredit) {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationUnbalancedEntry,
			Message: fmt.Sprintf("debits %s do not equal credits %s", totalDebit.String(), totalCredit.String()),
		})
	}

	return violations
}
