package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerRow is one posted line of an account's ledger view, with
// the running balance after the line has been applied. Rows are ordered
// ascending by (entry date, entry number); that ordering is a contract.
type GeneralLedgerRow struct {
	LineID         string          `json:"lineID"`
	EntryID        string          `json:"entryID"`
	EntryNumber    int64           `json:"entryNumber"`
	EntryDate      time.Time       `json:"entryDate"`
	Description    string          `json:"description"`
	ReferenceType  string          `json:"referenceType"`
	ReferenceID    string          `json:"referenceID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// GeneralLedger is the running-balance view of one account over a range.
type GeneralLedger struct {
	AccountID      string             `json:"accountID"`
	AccountCode    string             `json:"accountCode"`
	AccountName    string             `json:"accountName"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"` // Balance as of the range start
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
	Rows           []GeneralLedgerRow `json:"rows"`
}

// AccountBalance is a reporting repository row: one account's raw
// (debit-positive) balance as of a date, opening balance included.
type AccountBalance struct {
	AccountID   string
	AccountCode string
	AccountName string
	AccountType AccountType
	Balance     decimal.Decimal
}

// AccountMovement is a reporting repository row: one account's total
// debit and credit movement within a date range, opening excluded.
type AccountMovement struct {
	AccountID   string
	AccountCode string
	AccountName string
	AccountType AccountType
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// TrialBalanceRow places one account's balance into the debit or credit
// column according to the normal-side convention.
type TrialBalanceRow struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// TrialBalance is the full snapshot report; TotalDebit always equals
// TotalCredit unless the ledger history is corrupted.
type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// IncomeStatement reports revenue and expense movement over a period.
// Values are movement within the range, not balance to date.
type IncomeStatement struct {
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	OperatingRevenue decimal.Decimal `json:"operatingRevenue"`
	OtherRevenue     decimal.Decimal `json:"otherRevenue"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	OperatingExpense decimal.Decimal `json:"operatingExpense"`
	OtherExpense     decimal.Decimal `json:"otherExpense"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	NetIncome        decimal.Decimal `json:"netIncome"`
}

// BalanceSheet reports asset, liability and equity balances as of one
// date. RetainedEarnings carries the period's net income so the
// accounting identity holds on a ledger that has not been closed.
type BalanceSheet struct {
	AsOf                time.Time       `json:"asOf"`
	CurrentAssets       decimal.Decimal `json:"currentAssets"`
	FixedAssets         decimal.Decimal `json:"fixedAssets"`
	TotalAssets         decimal.Decimal `json:"totalAssets"`
	CurrentLiabilities  decimal.Decimal `json:"currentLiabilities"`
	LongTermLiabilities decimal.Decimal `json:"longTermLiabilities"`
	TotalLiabilities    decimal.Decimal `json:"totalLiabilities"`
	RetainedEarnings    decimal.Decimal `json:"retainedEarnings"`
	TotalEquity         decimal.Decimal `json:"totalEquity"`
}

// BudgetVarianceRow is the variance report line for one cost center.
type BudgetVarianceRow struct {
	CostCenterID       string          `json:"costCenterID"`
	CostCenterName     string          `json:"costCenterName"`
	CostCenterType     CostCenterType  `json:"costCenterType"`
	BudgetAmount       decimal.Decimal `json:"budgetAmount"`
	ActualSpent        decimal.Decimal `json:"actualSpent"`
	Variance           decimal.Decimal `json:"variance"` // actual - budget
	UtilizationPercent decimal.Decimal `json:"budgetUtilizationPercentage"`
}

// BudgetVarianceReport is the per-center rows plus a rollup naming the
// centers with the largest variance and the largest spend.
type BudgetVarianceReport struct {
	Rows        []BudgetVarianceRow `json:"rows"`
	TotalBudget decimal.Decimal     `json:"totalBudget"`
	TotalActual decimal.Decimal     `json:"totalActual"`
	TopVariance *BudgetVarianceRow  `json:"topVariance,omitempty"`
	TopSpending *BudgetVarianceRow  `json:"topSpending,omitempty"`
}
