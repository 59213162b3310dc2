package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/middleware"
	"github.com/shopspring/decimal"
)

type LedgerService struct {
	accountRepo   portsrepo.AccountRepositoryFacade
	reportingRepo portsrepo.ReportingReader
}

func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, reportingRepo portsrepo.ReportingReader) *LedgerService {
	return &LedgerService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.LedgerSvc = (*LedgerService)(nil)

// FoldRunningBalances fills each row's running balance starting from the
// opening position: running[i] = running[i-1] + debit[i] - credit[i].
// Rows must already be ordered by (entry date, entry number); the fold
// itself is pure so the recurrence is testable without a store.
func FoldRunningBalances(opening decimal.Decimal, rows []domain.GeneralLedgerRow) decimal.Decimal {
	running := opening
	for i := range rows {
		running = running.Add(rows[i].Debit).Sub(rows[i].Credit)
		rows[i].RunningBalance = running
	}
	return running
}

// GetGeneralLedger builds one account's running-balance view over a
// date range. The opening position is the account's opening balance
// plus every posted effect dated before the range, unfiltered, so the
// view stays anchored to the real balance even when a reference filter
// narrows the rows.
func (s *LedgerService) GetGeneralLedger(ctx context.Context, tenantID string, accountID string, from, to time.Time, referenceType string) (*domain.GeneralLedger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if !account.AllowPosting {
		return nil, fmt.Errorf("%w: account %s is a summary account", apperrors.ErrAccountNotPostable, account.Code)
	}

	prior, err := s.reportingRepo.PostedMovementBefore(ctx, tenantID, accountID, from)
	if err != nil {
		logger.Error("Failed to load prior movement", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}
	opening := account.OpeningBalance.Add(prior.Debit).Sub(prior.Credit)

	rows, err := s.reportingRepo.LedgerRows(ctx, tenantID, accountID, from, to, referenceType)
	if err != nil {
		logger.Error("Failed to load ledger rows", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	closing := FoldRunningBalances(opening, rows)

	return &domain.GeneralLedger{
		AccountID:      account.AccountID,
		AccountCode:    account.Code,
		AccountName:    account.Name,
		OpeningBalance: opening,
		ClosingBalance: closing,
		Rows:           rows,
	}, nil
}

// RecomputeBalance replays an account's full posted history and compares
// the result against the cached balance. A mismatch means the cache has
// drifted from the source of truth and is surfaced as an integrity
// error, never silently repaired.
func (s *LedgerService) RecomputeBalance(ctx context.Context, tenantID string, accountID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if !account.AllowPosting {
		return decimal.Zero, fmt.Errorf("%w: account %s is a summary account", apperrors.ErrAccountNotPostable, account.Code)
	}

	total, err := s.reportingRepo.PostedMovementTotal(ctx, tenantID, accountID)
	if err != nil {
		logger.Error("Failed to load posted history", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	recomputed := account.OpeningBalance.Add(total.Debit).Sub(total.Credit)
	if !recomputed.Equal(account.CurrentBalance) {
		logger.Error("Cached balance diverges from posted history",
			slog.String("account_id", accountID),
			slog.String("cached", account.CurrentBalance.String()),
			slog.String("recomputed", recomputed.String()),
		)
		return recomputed, fmt.Errorf("%w: account %s cached %s, replay %s",
			apperrors.ErrBalanceDivergence, accountID, account.CurrentBalance.String(), recomputed.String())
	}
	return recomputed, nil
}
