package accounting

import (
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Side names the column an amount belongs to.
type Side string

const (
	DebitSide  Side = "DEBIT"
	CreditSide Side = "CREDIT"
)

// NormalSide returns the side on which an account type shows a positive
// balance: assets and expenses are debit-normal; liabilities, equity and
// revenue are credit-normal. Statements and displays apply this
// convention when deciding whether a raw balance reads as positive.
func NormalSide(t domain.AccountType) Side {
	switch t {
	case domain.Asset, domain.Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// DisplayBalance converts a raw debit-positive balance into the sign a
// reader expects for the account type: credit-normal accounts are
// negated so their usual balances read positive.
func DisplayBalance(t domain.AccountType, raw decimal.Decimal) decimal.Decimal {
	if NormalSide(t) == CreditSide {
		return raw.Neg()
	}
	return raw
}

// SumDebits totals the debit side of a set of lines.
func SumDebits(lines []domain.JournalLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Debit)
	}
	return sum
}

// SumCredits totals the credit side of a set of lines.
func SumCredits(lines []domain.JournalLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Credit)
	}
	return sum
}

// BalanceChanges folds a set of lines into net per-account effects
// (debit minus credit). This is the delta posting applies to each
// account's cached balance.
func BalanceChanges(lines []domain.JournalLine) map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		changes[l.AccountID] = changes[l.AccountID].Add(l.Effect())
	}
	return changes
}
