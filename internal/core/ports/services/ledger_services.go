package services

import (
	"context"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc defines running-balance operations over posted entries
type LedgerSvc interface {
	// GetGeneralLedger builds an account's ledger view over a date
	// range: opening balance, rows with running balances, closing
	// balance. A nonempty referenceType keeps only rows from entries of
	// that source.
	GetGeneralLedger(ctx context.Context, tenantID string, accountID string, from, to time.Time, referenceType string) (*domain.GeneralLedger, error)

	// RecomputeBalance folds an account's full posted history into a
	// balance and compares it against the cached one, reporting
	// divergence as an integrity error.
	RecomputeBalance(ctx context.Context, tenantID string, accountID string) (decimal.Decimal, error)
}
