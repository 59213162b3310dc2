package repositories

import (
	"context"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingReader defines read-only aggregation queries over posted
// journal data. All amounts come back as raw debit-minus-credit sums;
// statement services apply sign conventions.
type ReportingReader interface {
	// AccountBalancesAsOf returns, for every posting-enabled account,
	// the opening balance plus the posted movement with entry date on or
	// before asOf. Summary accounts are excluded; including them would
	// double-count their children in statement totals.
	AccountBalancesAsOf(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AccountBalance, error)

	// AccountMovements returns, per account, the posted debit and credit
	// totals with entry date inside [from, to].
	AccountMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountMovement, error)

	// LedgerRows returns an account's posted lines with entry date
	// inside [from, to], ordered by (entry date, entry number). A
	// nonempty referenceType keeps only entries of that source.
	LedgerRows(ctx context.Context, tenantID, accountID string, from, to time.Time, referenceType string) ([]domain.GeneralLedgerRow, error)

	// PostedMovementBefore returns an account's posted debit-minus-credit
	// total with entry date strictly before from. Added to the opening
	// balance it yields the ledger's opening position.
	PostedMovementBefore(ctx context.Context, tenantID, accountID string, from time.Time) (domain.AccountMovement, error)

	// PostedMovementTotal returns an account's posted totals over its
	// whole history, used to recompute a balance from scratch.
	PostedMovementTotal(ctx context.Context, tenantID, accountID string) (domain.AccountMovement, error)

	// CostCenterActuals returns, per cost center, the posted expense
	// total with entry date inside [from, to].
	CostCenterActuals(ctx context.Context, tenantID string, from, to time.Time) (map[string]decimal.Decimal, error)
}
