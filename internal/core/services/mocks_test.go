package services_test

import (
	"context"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, tenantID, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, tenantID, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, tenantID string, changes map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, tenantID, changes, userID, now)
	return args.Error(0)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, tenantID string, filter portsrepo.JournalListFilter, limit int, paginationToken string) ([]domain.JournalEntry, string, error) {
	args := m.Called(ctx, tenantID, filter, limit, paginationToken)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.String(1), args.Error(2)
}

func (m *MockJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteDraftEntry(ctx context.Context, tenantID, entryID string) error {
	args := m.Called(ctx, tenantID, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) NextEntryNumberInTx(ctx context.Context, tx pgx.Tx, tenantID string) (int64, error) {
	args := m.Called(ctx, tx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) MarkEntryPostedInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string, entryNumber int64, userID string, now time.Time) error {
	args := m.Called(ctx, tx, tenantID, entryID, entryNumber, userID, now)
	return args.Error(0)
}

func (m *MockJournalRepository) SavePostedEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) LinkReversalInTx(ctx context.Context, tx pgx.Tx, tenantID, originalEntryID, reversingEntryID string, userID string, now time.Time) error {
	args := m.Called(ctx, tx, tenantID, originalEntryID, reversingEntryID, userID, now)
	return args.Error(0)
}

// --- Mock CostCenterRepository ---

type MockCostCenterRepository struct {
	mock.Mock
}

var _ portsrepo.CostCenterRepositoryFacade = (*MockCostCenterRepository)(nil)

func (m *MockCostCenterRepository) FindCostCenterByID(ctx context.Context, tenantID, costCenterID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, tenantID, costCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) FindCostCenterByCode(ctx context.Context, tenantID, code string) (*domain.CostCenter, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	args := m.Called(ctx, costCenter)
	return args.Error(0)
}

func (m *MockCostCenterRepository) UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	args := m.Called(ctx, costCenter)
	return args.Error(0)
}

func (m *MockCostCenterRepository) DeactivateCostCenter(ctx context.Context, tenantID, costCenterID string, userID string, now time.Time) error {
	args := m.Called(ctx, tenantID, costCenterID, userID, now)
	return args.Error(0)
}

func (m *MockCostCenterRepository) SetBudget(ctx context.Context, tenantID, costCenterID string, amount decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tenantID, costCenterID, amount, userID, now)
	return args.Error(0)
}

// --- Mock ReportingReader ---

type MockReportingReader struct {
	mock.Mock
}

var _ portsrepo.ReportingReader = (*MockReportingReader)(nil)

func (m *MockReportingReader) AccountBalancesAsOf(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockReportingReader) AccountMovements(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AccountMovement, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountMovement), args.Error(1)
}

func (m *MockReportingReader) LedgerRows(ctx context.Context, tenantID, accountID string, from, to time.Time, referenceType string) ([]domain.GeneralLedgerRow, error) {
	args := m.Called(ctx, tenantID, accountID, from, to, referenceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerRow), args.Error(1)
}

func (m *MockReportingReader) PostedMovementBefore(ctx context.Context, tenantID, accountID string, from time.Time) (domain.AccountMovement, error) {
	args := m.Called(ctx, tenantID, accountID, from)
	return args.Get(0).(domain.AccountMovement), args.Error(1)
}

func (m *MockReportingReader) PostedMovementTotal(ctx context.Context, tenantID, accountID string) (domain.AccountMovement, error) {
	args := m.Called(ctx, tenantID, accountID)
	return args.Get(0).(domain.AccountMovement), args.Error(1)
}

func (m *MockReportingReader) CostCenterActuals(ctx context.Context, tenantID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Mock TransactionManager ---

// MockTxManager satisfies the transaction manager with a nil pgx.Tx; the
// repositories under it are mocks too, so no real transaction is needed.
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
