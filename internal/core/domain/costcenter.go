package domain

import (
	"github.com/shopspring/decimal"
)

// CostCenterType categorizes cost centers for variance reporting.
type CostCenterType string

const (
	CostCenterOperations  CostCenterType = "OPERATIONS"
	CostCenterMaintenance CostCenterType = "MAINTENANCE"
	CostCenterAdmin       CostCenterType = "ADMIN"
	CostCenterProject     CostCenterType = "PROJECT"
)

// IsValid reports whether t is a known cost center type.
func (t CostCenterType) IsValid() bool {
	switch t {
	case CostCenterOperations, CostCenterMaintenance, CostCenterAdmin, CostCenterProject:
		return true
	}
	return false
}

// CostCenter is a budget-tracking unit independent of the account
// hierarchy. ActualSpent is derived by summing posted journal lines
// tagged with the cost center; it is never entered directly.
type CostCenter struct {
	CostCenterID string          `json:"costCenterID"` // Primary key (UUID)
	TenantID     string          `json:"tenantID"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CenterType   CostCenterType  `json:"centerType"`
	ParentID     string          `json:"parentID"` // Empty for roots; same tree shape as accounts
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	ActualSpent  decimal.Decimal `json:"actualSpent"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// UtilizationPercent is actual spend over budget, as a percentage.
// Defined as zero when no budget is set.
func (c CostCenter) UtilizationPercent() decimal.Decimal {
	if c.BudgetAmount.IsZero() {
		return decimal.Zero
	}
	return c.ActualSpent.Div(c.BudgetAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// NodeID implements accounttree.Node.
func (c CostCenter) NodeID() string { return c.CostCenterID }

// ParentNodeID implements accounttree.Node.
func (c CostCenter) ParentNodeID() string { return c.ParentID }

// SortCode implements accounttree.Node.
func (c CostCenter) SortCode() string { return c.Code }
