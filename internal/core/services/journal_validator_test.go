package services_test

import (
	"testing"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func postableAccount(id, code string) domain.Account {
	return domain.Account{
		AccountID:    id,
		Code:         code,
		Name:         "Account " + code,
		AccountType:  domain.Asset,
		AllowPosting: true,
		IsActive:     true,
	}
}

func balancedEntry(accounts ...string) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     "entry-1",
		EntryDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: "Monthly rental revenue",
		Lines: []domain.JournalLine{
			{LineID: "l1", AccountID: accounts[0], Debit: d("40.000"), Credit: decimal.Zero},
			{LineID: "l2", AccountID: accounts[1], Debit: decimal.Zero, Credit: d("40.000")},
		},
	}
}

func TestValidateJournalEntry_ValidEntryHasNoViolations(t *testing.T) {
	entry := balancedEntry("acc-1", "acc-2")
	accounts := map[string]domain.Account{
		"acc-1": postableAccount("acc-1", "1101"),
		"acc-2": postableAccount("acc-2", "4101"),
	}

	violations := services.ValidateJournalEntry(entry, accounts)
	assert.Empty(t, violations)
}

func TestValidateJournalEntry_CollectsAllViolationsInOnePass(t *testing.T) {
	entry := domain.JournalEntry{
		EntryID: "entry-1",
		// No date, no description, single zero line.
		Lines: []domain.JournalLine{
			{LineID: "l1", AccountID: "ghost", Debit: decimal.Zero, Credit: decimal.Zero},
		},
	}

	violations := services.ValidateJournalEntry(entry, map[string]domain.Account{})

	assert.True(t, violations.Has(domain.ViolationMissingDate))
	assert.True(t, violations.Has(domain.ViolationEmptyDescription))
	assert.True(t, violations.Has(domain.ViolationInsufficientLines))
	assert.True(t, violations.Has(domain.ViolationZeroAmountLine))
	assert.True(t, violations.Has(domain.ViolationAccountNotFound))
}

func TestValidateJournalEntry_AllZeroLineDoesNotCountTowardMinimum(t *testing.T) {
	// Two lines on paper, but one carries no amount: still a one-legged
	// entry, and both problems are reported.
	entry := balancedEntry("acc-1", "acc-2")
	entry.Lines[1].Credit = decimal.Zero
	accounts := map[string]domain.Account{
		"acc-1": postableAccount("acc-1", "1101"),
		"acc-2": postableAccount("acc-2", "4101"),
	}

	violations := services.ValidateJournalEntry(entry, accounts)

	assert.True(t, violations.Has(domain.ViolationInsufficientLines))
	assert.True(t, violations.Has(domain.ViolationZeroAmountLine))
}

func TestValidateJournalEntry_UnbalancedByOneMinorUnit(t *testing.T) {
	entry := balancedEntry("acc-1", "acc-2")
	entry.Lines[1].Credit = d("39.999")
	accounts := map[string]domain.Account{
		"acc-1": postableAccount("acc-1", "1101"),
		"acc-2": postableAccount("acc-2", "4101"),
	}

	violations := services.ValidateJournalEntry(entry, accounts)

	require.Len(t, violations, 1)
	assert.Equal(t, domain.ViolationUnbalancedEntry, violations[0].Code)
}

func TestValidateJournalEntry_BothSidesSet(t *testing.T) {
	entry := balancedEntry("acc-1", "acc-2")
	entry.Lines[0].Credit = d("10.000")
	accounts := map[string]domain.Account{
		"acc-1": postableAccount("acc-1", "1101"),
		"acc-2": postableAccount("acc-2", "4101"),
	}

	violations := services.ValidateJournalEntry(entry, accounts)
	assert.True(t, violations.Has(domain.ViolationBothSidesSet))
}

func TestValidateJournalEntry_NegativeAmount(t *testing.T) {
	entry := balancedEntry("acc-1", "acc-2")
	entry.Lines[0].Debit = d("-40.000")
	accounts := map[string]domain.Account{
		"acc-1": postableAccount("acc-1", "1101"),
		"acc-2": postableAccount("acc-2", "4101"),
	}

	violations := services.ValidateJournalEntry(entry, accounts)
	assert.True(t, violations.Has(domain.ViolationNegativeAmount))
}

func TestValidateJournalEntry_BadPrecision(t *testing.T) {
	entry := balancedEntry("acc-1", "acc-2")
	entry.Lines[0].Debit = d("40.0001")
	entry.Lines[1].Credit = d("40.0001")
	accounts := map[string]domain.Account{
		"acc-1": postableAccount("acc-1", "1101"),
		"acc-2": postableAccount("acc-2", "4101"),
	}

	violations := services.ValidateJournalEntry(entry, accounts)
	assert.True(t, violations.Has(domain.ViolationBadPrecision))
	// 40.0001 vs 40.0001 still balances; precision is the only problem.
	assert.False(t, violations.Has(domain.ViolationUnbalancedEntry))
}

func TestValidateJournalEntry_DuplicateAccount(t *testing.T) {
	entry := balancedEntry("acc-1", "acc-1")
	accounts := map[string]domain.Account{
		"acc-1": postableAccount("acc-1", "1101"),
	}

	violations := services.ValidateJournalEntry(entry, accounts)
	assert.True(t, violations.Has(domain.ViolationDuplicateAccount))
}

func TestValidateJournalEntry_InactiveAndSummaryAccounts(t *testing.T) {
	inactive := postableAccount("acc-1", "1101")
	inactive.IsActive = false
	summary := postableAccount("acc-2", "1100")
	summary.AllowPosting = false

	entry := balancedEntry("acc-1", "acc-2")
	accounts := map[string]domain.Account{
		"acc-1": inactive,
		"acc-2": summary,
	}

	violations := services.ValidateJournalEntry(entry, accounts)
	assert.True(t, violations.Has(domain.ViolationAccountInactive))
	assert.True(t, violations.Has(domain.ViolationAccountNotPostable))
}
