package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// CostCenterType classifies what a cost center tracks.
type CostCenterType string

const (
	Operations  CostCenterType = "OPERATIONS"
	Maintenance CostCenterType = "MAINTENANCE"
	Admin       CostCenterType = "ADMIN"
	Project     CostCenterType = "PROJECT"
)

// CostCenter represents a budget-tracked spending unit.
type CostCenter struct {
	CostCenterID string          `db:"cost_center_id"`
	TenantID     string          `db:"tenant_id"`
	Code         string          `db:"code"`
	Name         string          `db:"name"`
	CenterType   CostCenterType  `db:"center_type"`
	ParentID     sql.NullString  `db:"parent_id"`
	BudgetAmount decimal.Decimal `db:"budget_amount"`
	ActualSpent  decimal.Decimal `db:"actual_spent"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
