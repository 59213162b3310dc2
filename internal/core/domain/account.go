package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is a node in the chart of accounts.
//
// CurrentBalance is a cache: it always equals OpeningBalance plus the sum
// of debit minus credit over every posted line that references the
// account, applied in (date, entry number) order. It is never the source
// of truth and can be recomputed from the posted history at any time.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary key (UUID)
	TenantID        string          `json:"tenantID"`        // FK -> tenants.tenant_id (NON-NULL)
	Code            string          `json:"code"`            // Unique, sortable account code (e.g. "1101")
	Name            string          `json:"name"`            // User-defined name
	AccountType     AccountType     `json:"accountType"`     // ASSET, LIABILITY, etc.
	ParentAccountID string          `json:"parentAccountID"` // Empty for root accounts
	Level           int             `json:"level"`           // parent.Level + 1; roots are 1
	AllowPosting    bool            `json:"allowPosting"`    // Only posting accounts may appear on journal lines
	IsActive        bool            `json:"isActive"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	AuditFields
}

// NodeID implements accounttree.Node.
func (a Account) NodeID() string { return a.AccountID }

// ParentNodeID implements accounttree.Node.
func (a Account) ParentNodeID() string { return a.ParentAccountID }

// SortCode implements accounttree.Node; siblings are ordered by code.
func (a Account) SortCode() string { return a.Code }
