package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportingService() (*services.ReportingService, *MockReportingReader, *MockCostCenterRepository) {
	mockReporting := new(MockReportingReader)
	mockCostCenters := new(MockCostCenterRepository)
	return services.NewReportingService(mockReporting, mockCostCenters), mockReporting, mockCostCenters
}

func TestTrialBalance_PlacesBalancesBySign(t *testing.T) {
	ctx := context.Background()
	svc, mockReporting, _ := newReportingService()
	tenantID := uuid.NewString()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	mockReporting.On("AccountBalancesAsOf", ctx, tenantID, asOf).Return([]domain.AccountBalance{
		{AccountCode: "1101", AccountName: "Cash", AccountType: domain.Asset, Balance: d("500.000")},
		{AccountCode: "2101", AccountName: "Payables", AccountType: domain.Liability, Balance: d("-200.000")},
		{AccountCode: "4101", AccountName: "Rental Revenue", AccountType: domain.Revenue, Balance: d("-300.000")},
		{AccountCode: "1102", AccountName: "Dormant", AccountType: domain.Asset, Balance: decimal.Zero},
	}, nil).Once()

	report, err := svc.TrialBalance(ctx, tenantID, asOf)

	require.NoError(t, err)
	// Zero-balance accounts are skipped.
	require.Len(t, report.Rows, 3)
	assert.True(t, report.Rows[0].DebitBalance.Equal(d("500")))
	assert.True(t, report.Rows[0].CreditBalance.IsZero())
	assert.True(t, report.Rows[1].CreditBalance.Equal(d("200")))
	assert.True(t, report.TotalDebit.Equal(d("500")))
	assert.True(t, report.TotalCredit.Equal(d("500")))
}

func TestTrialBalance_MismatchReturnsReportAndError(t *testing.T) {
	ctx := context.Background()
	svc, mockReporting, _ := newReportingService()
	tenantID := uuid.NewString()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	// Corrupted history: the raw balances do not sum to zero.
	mockReporting.On("AccountBalancesAsOf", ctx, tenantID, asOf).Return([]domain.AccountBalance{
		{AccountCode: "1101", AccountType: domain.Asset, Balance: d("500.000")},
		{AccountCode: "4101", AccountType: domain.Revenue, Balance: d("-499.999")},
	}, nil).Once()

	report, err := svc.TrialBalance(ctx, tenantID, asOf)

	require.ErrorIs(t, err, apperrors.ErrTrialBalanceMismatch)
	require.NotNil(t, report, "the report comes back alongside the error for inspection")
	assert.True(t, report.TotalDebit.Equal(d("500")))
	assert.True(t, report.TotalCredit.Equal(d("499.999")))
}

func TestIncomeStatement_MovementSplitByOperatingCode(t *testing.T) {
	ctx := context.Background()
	svc, mockReporting, _ := newReportingService()
	tenantID := uuid.NewString()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	mockReporting.On("AccountMovements", ctx, tenantID, from, to).Return([]domain.AccountMovement{
		// Operating revenue (second digit 1): credit-normal.
		{AccountCode: "4101", AccountType: domain.Revenue, Debit: d("10.000"), Credit: d("510.000")},
		// Other revenue.
		{AccountCode: "4201", AccountType: domain.Revenue, Debit: decimal.Zero, Credit: d("40.000")},
		// Operating expense: debit-normal.
		{AccountCode: "5101", AccountType: domain.Expense, Debit: d("200.000"), Credit: d("20.000")},
		// Other expense.
		{AccountCode: "5201", AccountType: domain.Expense, Debit: d("30.000"), Credit: decimal.Zero},
		// Balance sheet accounts never appear in the statement.
		{AccountCode: "1101", AccountType: domain.Asset, Debit: d("999.000"), Credit: decimal.Zero},
	}, nil).Once()

	report, err := svc.IncomeStatement(ctx, tenantID, from, to)

	require.NoError(t, err)
	assert.True(t, report.OperatingRevenue.Equal(d("500")))
	assert.True(t, report.OtherRevenue.Equal(d("40")))
	assert.True(t, report.TotalRevenue.Equal(d("540")))
	assert.True(t, report.OperatingExpense.Equal(d("180")))
	assert.True(t, report.OtherExpense.Equal(d("30")))
	assert.True(t, report.TotalExpense.Equal(d("210")))
	assert.True(t, report.NetIncome.Equal(d("330")))
}

func TestBalanceSheet_IdentityHoldsWithNetIncomeInRetainedEarnings(t *testing.T) {
	ctx := context.Background()
	svc, mockReporting, _ := newReportingService()
	tenantID := uuid.NewString()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	// Raw (debit-positive) balances that net to zero, as posted history
	// guarantees: assets 1000, liabilities -300, equity -500, revenue
	// -400, expense 200.
	mockReporting.On("AccountBalancesAsOf", ctx, tenantID, asOf).Return([]domain.AccountBalance{
		{AccountCode: "1101", AccountType: domain.Asset, Balance: d("700.000")},
		{AccountCode: "1201", AccountType: domain.Asset, Balance: d("300.000")},
		{AccountCode: "2101", AccountType: domain.Liability, Balance: d("-300.000")},
		{AccountCode: "3101", AccountType: domain.Equity, Balance: d("-500.000")},
		{AccountCode: "4101", AccountType: domain.Revenue, Balance: d("-400.000")},
		{AccountCode: "5101", AccountType: domain.Expense, Balance: d("200.000")},
	}, nil).Once()

	report, err := svc.BalanceSheet(ctx, tenantID, asOf)

	require.NoError(t, err)
	assert.True(t, report.CurrentAssets.Equal(d("700")))
	assert.True(t, report.FixedAssets.Equal(d("300")))
	assert.True(t, report.TotalAssets.Equal(d("1000")))
	assert.True(t, report.CurrentLiabilities.Equal(d("300")))
	assert.True(t, report.TotalLiabilities.Equal(d("300")))
	// Net income 400 - 200 = 200 rides in retained earnings.
	assert.True(t, report.RetainedEarnings.Equal(d("200")))
	assert.True(t, report.TotalEquity.Equal(d("700")))
	assert.True(t, report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)))
}

func TestBalanceSheet_BrokenIdentityReturnsReportAndError(t *testing.T) {
	ctx := context.Background()
	svc, mockReporting, _ := newReportingService()
	tenantID := uuid.NewString()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	mockReporting.On("AccountBalancesAsOf", ctx, tenantID, asOf).Return([]domain.AccountBalance{
		{AccountCode: "1101", AccountType: domain.Asset, Balance: d("1000.000")},
		{AccountCode: "2101", AccountType: domain.Liability, Balance: d("-999.000")},
	}, nil).Once()

	report, err := svc.BalanceSheet(ctx, tenantID, asOf)

	require.ErrorIs(t, err, apperrors.ErrBalanceSheetMismatch)
	require.NotNil(t, report)
}

func TestBudgetVariance(t *testing.T) {
	ctx := context.Background()
	svc, mockReporting, mockCostCenters := newReportingService()
	tenantID := uuid.NewString()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	ops := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		Name:         "Vehicle Operations",
		CenterType:   domain.CostCenterOperations,
		BudgetAmount: d("1000.000"),
		IsActive:     true,
	}
	maint := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		Name:         "Workshop",
		CenterType:   domain.CostCenterMaintenance,
		BudgetAmount: d("400.000"),
		IsActive:     true,
	}
	closed := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		Name:         "Retired Project",
		CenterType:   domain.CostCenterProject,
		BudgetAmount: d("999.000"),
		IsActive:     false,
	}

	mockCostCenters.On("ListCostCenters", ctx, tenantID).Return([]domain.CostCenter{ops, maint, closed}, nil).Once()
	mockReporting.On("CostCenterActuals", ctx, tenantID, from, to).Return(map[string]decimal.Decimal{
		ops.CostCenterID:   d("250.000"),
		maint.CostCenterID: d("600.000"),
	}, nil).Once()

	report, err := svc.BudgetVariance(ctx, tenantID, from, to)

	require.NoError(t, err)
	// Inactive centers are excluded.
	require.Len(t, report.Rows, 2)

	opsRow := report.Rows[0]
	assert.True(t, opsRow.Variance.Equal(d("-750")), "under budget is negative variance")
	assert.True(t, opsRow.UtilizationPercent.Equal(d("25")))

	maintRow := report.Rows[1]
	assert.True(t, maintRow.Variance.Equal(d("200")), "over budget is positive variance")
	assert.True(t, maintRow.UtilizationPercent.Equal(d("150")))

	assert.True(t, report.TotalBudget.Equal(d("1400")))
	assert.True(t, report.TotalActual.Equal(d("850")))

	require.NotNil(t, report.TopVariance)
	assert.Equal(t, maint.CostCenterID, report.TopVariance.CostCenterID)
	require.NotNil(t, report.TopSpending)
	assert.Equal(t, maint.CostCenterID, report.TopSpending.CostCenterID)
}
