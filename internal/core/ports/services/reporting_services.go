package services

import (
	"context"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
)

// ReportingSvc defines operations for generating financial statements
type ReportingSvc interface {
	// TrialBalance generates a trial balance as of a specific date.
	TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error)

	// IncomeStatement generates an income statement for a period. Values
	// are movement within the range, not balances to date.
	IncomeStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet generates a balance sheet as of a specific date.
	BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheet, error)

	// BudgetVariance generates the cost center budget variance report
	// for a period.
	BudgetVariance(ctx context.Context, tenantID string, from, to time.Time) (*domain.BudgetVarianceReport, error)
}
