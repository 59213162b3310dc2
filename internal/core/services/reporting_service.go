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
	"github.com/fleetvision/fleet_backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type ReportingService struct {
	reportingRepo  portsrepo.ReportingReader
	costCenterRepo portsrepo.CostCenterRepositoryFacade
}

func NewReportingService(reportingRepo portsrepo.ReportingReader, costCenterRepo portsrepo.CostCenterRepositoryFacade) *ReportingService {
	return &ReportingService{
		reportingRepo:  reportingRepo,
		costCenterRepo: costCenterRepo,
	}
}

var _ portssvc.ReportingSvc = (*ReportingService)(nil)

// isOperatingCode reports whether an account code belongs to the
// operating (or "current") sub-range of its class. Codes are structured
// as type digit + segment digit + detail: a second digit of 1 marks
// current assets, current liabilities, operating revenue and operating
// expense respectively.
func isOperatingCode(code string) bool {
	return len(code) >= 2 && code[1] == '1'
}

// TrialBalance places every posting-enabled account's balance into the
// debit or credit column by its sign and totals the columns. Balances
// are raw debit-positive, so a positive balance sits in the debit
// column regardless of account type and the normal-side convention
// falls out naturally. Equal columns are an invariant of double-entry
// history: when they differ the report is still returned, together
// with ErrTrialBalanceMismatch, so callers can inspect the damage.
func (s *ReportingService) TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balances, err := s.reportingRepo.AccountBalancesAsOf(ctx, tenantID, asOf)
	if err != nil {
		logger.Error("Failed to load account balances", slog.String("error", err.Error()))
		return nil, err
	}

	report := &domain.TrialBalance{
		AsOf:        asOf,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, b := range balances {
		if b.Balance.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountCode:   b.AccountCode,
			AccountName:   b.AccountName,
			AccountType:   b.AccountType,
			DebitBalance:  decimal.Zero,
			CreditBalance: decimal.Zero,
		}
		if b.Balance.IsPositive() {
			row.DebitBalance = b.Balance
			report.TotalDebit = report.TotalDebit.Add(b.Balance)
		} else {
			row.CreditBalance = b.Balance.Neg()
			report.TotalCredit = report.TotalCredit.Add(b.Balance.Neg())
		}
		report.Rows = append(report.Rows, row)
	}

	if !report.TotalDebit.Equal(report.TotalCredit) {
		logger.Error("Trial balance columns do not match",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()),
		)
		return report, fmt.Errorf("%w: debit %s, credit %s",
			apperrors.ErrTrialBalanceMismatch, report.TotalDebit.String(), report.TotalCredit.String())
	}
	return report, nil
}

// IncomeStatement aggregates revenue and expense movement within the
// period. Movement, not balance to date: an account's opening balance
// and prior-period activity never leak into the statement.
func (s *ReportingService) IncomeStatement(ctx context.Context, tenantID string, from, to time.Time) (*domain.IncomeStatement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movements, err := s.reportingRepo.AccountMovements(ctx, tenantID, from, to)
	if err != nil {
		logger.Error("Failed to load account movements", slog.String("error", err.Error()))
		return nil, err
	}

	report := &domain.IncomeStatement{
		From:             from,
		To:               to,
		OperatingRevenue: decimal.Zero,
		OtherRevenue:     decimal.Zero,
		OperatingExpense: decimal.Zero,
		OtherExpense:     decimal.Zero,
	}
	for _, m := range movements {
		switch m.AccountType {
		case domain.Revenue:
			// Revenue is credit-normal: credits grow it.
			net := m.Credit.Sub(m.Debit)
			if isOperatingCode(m.AccountCode) {
				report.OperatingRevenue = report.OperatingRevenue.Add(net)
			} else {
				report.OtherRevenue = report.OtherRevenue.Add(net)
			}
		case domain.Expense:
			net := m.Debit.Sub(m.Credit)
			if isOperatingCode(m.AccountCode) {
				report.OperatingExpense = report.OperatingExpense.Add(net)
			} else {
				report.OtherExpense = report.OtherExpense.Add(net)
			}
		}
	}

	report.TotalRevenue = report.OperatingRevenue.Add(report.OtherRevenue)
	report.TotalExpense = report.OperatingExpense.Add(report.OtherExpense)
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpense)
	return report, nil
}

// BalanceSheet aggregates asset, liability and equity balances as of a
// date. The ledger is never closed, so the period's net income rides in
// RetainedEarnings to keep the accounting identity whole. A broken
// identity is corrupted history and comes back as an integrity error
// alongside the report.
func (s *ReportingService) BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balances, err := s.reportingRepo.AccountBalancesAsOf(ctx, tenantID, asOf)
	if err != nil {
		logger.Error("Failed to load account balances", slog.String("error", err.Error()))
		return nil, err
	}

	report := &domain.BalanceSheet{
		AsOf:                asOf,
		CurrentAssets:       decimal.Zero,
		FixedAssets:         decimal.Zero,
		CurrentLiabilities:  decimal.Zero,
		LongTermLiabilities: decimal.Zero,
		RetainedEarnings:    decimal.Zero,
		TotalEquity:         decimal.Zero,
	}
	equityBase := decimal.Zero
	netIncome := decimal.Zero

	for _, b := range balances {
		display := accounting.DisplayBalance(b.AccountType, b.Balance)
		switch b.AccountType {
		case domain.Asset:
			if isOperatingCode(b.AccountCode) {
				report.CurrentAssets = report.CurrentAssets.Add(display)
			} else {
				report.FixedAssets = report.FixedAssets.Add(display)
			}
		case domain.Liability:
			if isOperatingCode(b.AccountCode) {
				report.CurrentLiabilities = report.CurrentLiabilities.Add(display)
			} else {
				report.LongTermLiabilities = report.LongTermLiabilities.Add(display)
			}
		case domain.Equity:
			equityBase = equityBase.Add(display)
		case domain.Revenue:
			netIncome = netIncome.Add(display)
		case domain.Expense:
			netIncome = netIncome.Sub(display)
		}
	}

	report.TotalAssets = report.CurrentAssets.Add(report.FixedAssets)
	report.TotalLiabilities = report.CurrentLiabilities.Add(report.LongTermLiabilities)
	report.RetainedEarnings = netIncome
	report.TotalEquity = equityBase.Add(netIncome)

	if !report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)) {
		logger.Error("Balance sheet identity does not hold",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities", report.TotalLiabilities.String()),
			slog.String("total_equity", report.TotalEquity.String()),
		)
		return report, fmt.Errorf("%w: assets %s, liabilities+equity %s",
			apperrors.ErrBalanceSheetMismatch,
			report.TotalAssets.String(),
			report.TotalLiabilities.Add(report.TotalEquity).String())
	}
	return report, nil
}

// BudgetVariance compares each active cost center's budget with its
// posted expense spend in the period and rolls up the worst offenders.
func (s *ReportingService) BudgetVariance(ctx context.Context, tenantID string, from, to time.Time) (*domain.BudgetVarianceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	centers, err := s.costCenterRepo.ListCostCenters(ctx, tenantID)
	if err != nil {
		logger.Error("Failed to list cost centers", slog.String("error", err.Error()))
		return nil, err
	}
	actuals, err := s.reportingRepo.CostCenterActuals(ctx, tenantID, from, to)
	if err != nil {
		logger.Error("Failed to load cost center actuals", slog.String("error", err.Error()))
		return nil, err
	}

	report := &domain.BudgetVarianceReport{
		Rows:        []domain.BudgetVarianceRow{},
		TotalBudget: decimal.Zero,
		TotalActual: decimal.Zero,
	}
	for _, cc := range centers {
		if !cc.IsActive {
			continue
		}
		// Reuse the domain utilization rule by projecting the period's
		// actual spend onto the cost center.
		cc.ActualSpent = actuals[cc.CostCenterID]
		row := domain.BudgetVarianceRow{
			CostCenterID:       cc.CostCenterID,
			CostCenterName:     cc.Name,
			CostCenterType:     cc.CenterType,
			BudgetAmount:       cc.BudgetAmount,
			ActualSpent:        cc.ActualSpent,
			Variance:           cc.ActualSpent.Sub(cc.BudgetAmount),
			UtilizationPercent: cc.UtilizationPercent(),
		}
		report.Rows = append(report.Rows, row)
		report.TotalBudget = report.TotalBudget.Add(row.BudgetAmount)
		report.TotalActual = report.TotalActual.Add(row.ActualSpent)

		if report.TopVariance == nil || row.Variance.GreaterThan(report.TopVariance.Variance) {
			r := row
			report.TopVariance = &r
		}
		if report.TopSpending == nil || row.ActualSpent.GreaterThan(report.TopSpending.ActualSpent) {
			r := row
			report.TopSpending = &r
		}
	}
	return report, nil
}
