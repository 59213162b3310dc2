package accounting_test

import (
	"testing"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNormalSide(t *testing.T) {
	assert.Equal(t, accounting.DebitSide, accounting.NormalSide(domain.Asset))
	assert.Equal(t, accounting.DebitSide, accounting.NormalSide(domain.Expense))
	assert.Equal(t, accounting.CreditSide, accounting.NormalSide(domain.Liability))
	assert.Equal(t, accounting.CreditSide, accounting.NormalSide(domain.Equity))
	assert.Equal(t, accounting.CreditSide, accounting.NormalSide(domain.Revenue))
}

func TestDisplayBalance(t *testing.T) {
	// Raw balances are debit-positive. A liability carrying a raw -500
	// reads as a positive 500 for the reader.
	assert.True(t, accounting.DisplayBalance(domain.Liability, d("-500.000")).Equal(d("500")))
	assert.True(t, accounting.DisplayBalance(domain.Asset, d("500.000")).Equal(d("500")))
	assert.True(t, accounting.DisplayBalance(domain.Revenue, d("-120.500")).Equal(d("120.5")))
	assert.True(t, accounting.DisplayBalance(domain.Expense, d("120.500")).Equal(d("120.5")))
}

func TestSumDebitsAndCredits(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "a", Debit: d("40.000"), Credit: decimal.Zero},
		{AccountID: "b", Debit: decimal.Zero, Credit: d("25.500")},
		{AccountID: "c", Debit: decimal.Zero, Credit: d("14.500")},
	}

	assert.True(t, accounting.SumDebits(lines).Equal(d("40")))
	assert.True(t, accounting.SumCredits(lines).Equal(d("40")))
}

func TestBalanceChanges(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "cash", Debit: d("100.000"), Credit: decimal.Zero},
		{AccountID: "revenue", Debit: decimal.Zero, Credit: d("100.000")},
	}

	changes := accounting.BalanceChanges(lines)
	require.Len(t, changes, 2)
	assert.True(t, changes["cash"].Equal(d("100")))
	assert.True(t, changes["revenue"].Equal(d("-100")))
}

func TestBalanceChanges_NetsRepeatedAccounts(t *testing.T) {
	lines := []domain.JournalLine{
		{AccountID: "cash", Debit: d("100.000"), Credit: decimal.Zero},
		{AccountID: "cash", Debit: decimal.Zero, Credit: d("30.000")},
		{AccountID: "revenue", Debit: decimal.Zero, Credit: d("70.000")},
	}

	changes := accounting.BalanceChanges(lines)
	require.Len(t, changes, 2)
	assert.True(t, changes["cash"].Equal(d("70")))
	assert.True(t, changes["revenue"].Equal(d("-70")))
}
