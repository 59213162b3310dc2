package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/core/services"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	mockTxManager   *MockTxManager
	service         portssvc.JournalSvcFacade
	tenantID        string
	userID          string
	cashAccount     domain.Account
	revenueAccount  domain.Account
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockTxManager = new(MockTxManager)
	s.service = services.NewJournalService(s.mockJournalRepo, s.mockAccountRepo, s.mockTxManager)

	s.tenantID = uuid.NewString()
	s.userID = uuid.NewString()

	s.cashAccount = domain.Account{
		AccountID:    uuid.NewString(),
		TenantID:     s.tenantID,
		Code:         "1101",
		Name:         "Cash",
		AccountType:  domain.Asset,
		AllowPosting: true,
		IsActive:     true,
	}
	s.revenueAccount = domain.Account{
		AccountID:    uuid.NewString(),
		TenantID:     s.tenantID,
		Code:         "4101",
		Name:         "Rental Revenue",
		AccountType:  domain.Revenue,
		AllowPosting: true,
		IsActive:     true,
	}
}

func (s *JournalServiceTestSuite) accountsMap() map[string]domain.Account {
	return map[string]domain.Account{
		s.cashAccount.AccountID:    s.cashAccount,
		s.revenueAccount.AccountID: s.revenueAccount,
	}
}

func (s *JournalServiceTestSuite) draftEntry() *domain.JournalEntry {
	entryID := uuid.NewString()
	return &domain.JournalEntry{
		EntryID:     entryID,
		TenantID:    s.tenantID,
		EntryDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: "Monthly rental billing",
		Status:      domain.Draft,
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountID: s.cashAccount.AccountID, Debit: d("40.000"), Credit: decimal.Zero},
			{LineID: uuid.NewString(), EntryID: entryID, AccountID: s.revenueAccount.AccountID, Debit: decimal.Zero, Credit: d("40.000")},
		},
	}
}

func (s *JournalServiceTestSuite) expectTx() {
	s.mockTxManager.On("Begin", mock.Anything).Return(nil, nil).Once()
	s.mockTxManager.On("Rollback", mock.Anything, nil).Return(nil).Maybe()
}

// --- CreateEntry ---

func (s *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: "Fuel purchase",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: s.cashAccount.AccountID, Credit: "25.500"},
			{AccountID: s.revenueAccount.AccountID, Debit: "25.500"},
		},
	}

	s.mockJournalRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := s.service.CreateEntry(ctx, s.tenantID, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(entry)
	s.Equal(domain.Draft, entry.Status)
	s.Equal(int64(0), entry.EntryNumber)
	s.Len(entry.Lines, 2)
	s.True(entry.Lines[0].Credit.Equal(d("25.5")))
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestCreateEntry_UnbalancedDraftIsAccepted() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: "Half-entered invoice",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: s.cashAccount.AccountID, Debit: "100.000"},
			{AccountID: s.revenueAccount.AccountID, Credit: "60.000"},
		},
	}

	s.mockJournalRepo.On("SaveDraftEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := s.service.CreateEntry(ctx, s.tenantID, req, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.Draft, entry.Status)
}

func (s *JournalServiceTestSuite) TestCreateEntry_OverPreciseAmountRejected() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: "Bad precision",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: s.cashAccount.AccountID, Debit: "10.0001"},
			{AccountID: s.revenueAccount.AccountID, Credit: "10.0001"},
		},
	}

	entry, err := s.service.CreateEntry(ctx, s.tenantID, req, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(entry)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveDraftEntry", mock.Anything, mock.Anything)
}

// --- UpdateDraftEntry / DeleteDraftEntry ---

func (s *JournalServiceTestSuite) TestUpdateDraftEntry_PostedEntryRejected() {
	ctx := context.Background()
	posted := s.draftEntry()
	posted.Status = domain.Posted

	s.mockJournalRepo.On("FindEntryByID", ctx, s.tenantID, posted.EntryID).Return(posted, nil).Once()

	_, err := s.service.UpdateDraftEntry(ctx, s.tenantID, posted.EntryID, dto.CreateJournalEntryRequest{
		EntryDate:   time.Now(),
		Description: "attempted edit",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: s.cashAccount.AccountID, Debit: "1.000"},
			{AccountID: s.revenueAccount.AccountID, Credit: "1.000"},
		},
	}, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrAlreadyPosted)
	s.mockJournalRepo.AssertNotCalled(s.T(), "UpdateDraftEntry", mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestDeleteDraftEntry_Success() {
	ctx := context.Background()
	draft := s.draftEntry()

	s.mockJournalRepo.On("FindEntryByID", ctx, s.tenantID, draft.EntryID).Return(draft, nil).Once()
	s.mockJournalRepo.On("DeleteDraftEntry", ctx, s.tenantID, draft.EntryID).Return(nil).Once()

	err := s.service.DeleteDraftEntry(ctx, s.tenantID, draft.EntryID, s.userID)

	s.Require().NoError(err)
	s.mockJournalRepo.AssertExpectations(s.T())
}

// --- PostEntry ---

func (s *JournalServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	draft := s.draftEntry()

	s.expectTx()
	s.mockJournalRepo.On("FindEntryByIDForUpdate", ctx, nil, s.tenantID, draft.EntryID).Return(draft, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, s.tenantID, mock.AnythingOfType("[]string")).Return(s.accountsMap(), nil).Once()
	s.mockJournalRepo.On("NextEntryNumberInTx", ctx, nil, s.tenantID).Return(int64(7), nil).Once()
	s.mockJournalRepo.On("MarkEntryPostedInTx", ctx, nil, s.tenantID, draft.EntryID, int64(7), s.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockAccountRepo.On("ApplyBalanceChangesInTx", ctx, nil, s.tenantID, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[s.cashAccount.AccountID].Equal(d("40")) &&
			changes[s.revenueAccount.AccountID].Equal(d("-40"))
	}), s.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockTxManager.On("Commit", mock.Anything, nil).Return(nil).Once()

	posted, err := s.service.PostEntry(ctx, s.tenantID, draft.EntryID, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(posted)
	s.Equal(domain.Posted, posted.Status)
	s.Equal(int64(7), posted.EntryNumber)
	s.mockJournalRepo.AssertExpectations(s.T())
	s.mockAccountRepo.AssertExpectations(s.T())
	s.mockTxManager.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestPostEntry_AlreadyPosted() {
	ctx := context.Background()
	posted := s.draftEntry()
	posted.Status = domain.Posted

	s.expectTx()
	s.mockJournalRepo.On("FindEntryByIDForUpdate", ctx, nil, s.tenantID, posted.EntryID).Return(posted, nil).Once()

	_, err := s.service.PostEntry(ctx, s.tenantID, posted.EntryID, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrAlreadyPosted)
	s.mockTxManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestPostEntry_ValidationFailureReportsViolations() {
	ctx := context.Background()
	draft := s.draftEntry()
	// One minor unit short on the credit side.
	draft.Lines[1].Credit = d("39.999")

	s.expectTx()
	s.mockJournalRepo.On("FindEntryByIDForUpdate", ctx, nil, s.tenantID, draft.EntryID).Return(draft, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, s.tenantID, mock.AnythingOfType("[]string")).Return(s.accountsMap(), nil).Once()

	_, err := s.service.PostEntry(ctx, s.tenantID, draft.EntryID, s.userID)

	s.Require().Error(err)
	var validationErr *apperrors.JournalValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Require().Len(validationErr.Violations, 1)
	s.Equal(domain.ViolationUnbalancedEntry, validationErr.Violations[0].Code)
	s.mockJournalRepo.AssertNotCalled(s.T(), "NextEntryNumberInTx", mock.Anything, mock.Anything, mock.Anything)
	s.mockTxManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

// --- ReverseEntry ---

func (s *JournalServiceTestSuite) TestReverseEntry_Success() {
	ctx := context.Background()
	original := s.draftEntry()
	original.Status = domain.Posted
	original.EntryNumber = 7

	s.expectTx()
	s.mockJournalRepo.On("FindEntryByIDForUpdate", ctx, nil, s.tenantID, original.EntryID).Return(original, nil).Once()
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, s.tenantID, mock.AnythingOfType("[]string")).Return(s.accountsMap(), nil).Once()
	s.mockJournalRepo.On("NextEntryNumberInTx", ctx, nil, s.tenantID).Return(int64(8), nil).Once()
	s.mockJournalRepo.On("SavePostedEntryInTx", ctx, nil, mock.MatchedBy(func(e domain.JournalEntry) bool {
		if e.Status != domain.Posted || e.OriginalEntryID == nil || *e.OriginalEntryID != original.EntryID {
			return false
		}
		// Debit and credit must be swapped per line.
		return len(e.Lines) == 2 &&
			e.Lines[0].Credit.Equal(original.Lines[0].Debit) &&
			e.Lines[0].Debit.Equal(original.Lines[0].Credit) &&
			e.Lines[1].Credit.Equal(original.Lines[1].Debit) &&
			e.Lines[1].Debit.Equal(original.Lines[1].Credit)
	})).Return(nil).Once()
	s.mockJournalRepo.On("LinkReversalInTx", ctx, nil, s.tenantID, original.EntryID, mock.AnythingOfType("string"), s.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockAccountRepo.On("ApplyBalanceChangesInTx", ctx, nil, s.tenantID, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[s.cashAccount.AccountID].Equal(d("-40")) &&
			changes[s.revenueAccount.AccountID].Equal(d("40"))
	}), s.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockTxManager.On("Commit", mock.Anything, nil).Return(nil).Once()

	reversal, err := s.service.ReverseEntry(ctx, s.tenantID, original.EntryID, dto.ReverseJournalEntryRequest{}, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(reversal)
	s.Equal(domain.Posted, reversal.Status)
	s.Equal(int64(8), reversal.EntryNumber)
	s.Equal("Reversal of: "+original.Description, reversal.Description)
	s.mockJournalRepo.AssertExpectations(s.T())
	s.mockTxManager.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestReverseEntry_DraftRejected() {
	ctx := context.Background()
	draft := s.draftEntry()

	s.expectTx()
	s.mockJournalRepo.On("FindEntryByIDForUpdate", ctx, nil, s.tenantID, draft.EntryID).Return(draft, nil).Once()

	_, err := s.service.ReverseEntry(ctx, s.tenantID, draft.EntryID, dto.ReverseJournalEntryRequest{}, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrNotDraft)
}

func (s *JournalServiceTestSuite) TestReverseEntry_ReversalOfReversalRejected() {
	ctx := context.Background()
	reversal := s.draftEntry()
	reversal.Status = domain.Posted
	origID := uuid.NewString()
	reversal.OriginalEntryID = &origID

	s.expectTx()
	s.mockJournalRepo.On("FindEntryByIDForUpdate", ctx, nil, s.tenantID, reversal.EntryID).Return(reversal, nil).Once()

	_, err := s.service.ReverseEntry(ctx, s.tenantID, reversal.EntryID, dto.ReverseJournalEntryRequest{}, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (s *JournalServiceTestSuite) TestReverseEntry_AlreadyReversedRejected() {
	ctx := context.Background()
	original := s.draftEntry()
	original.Status = domain.Posted
	reversingID := uuid.NewString()
	original.ReversingEntryID = &reversingID

	s.expectTx()
	s.mockJournalRepo.On("FindEntryByIDForUpdate", ctx, nil, s.tenantID, original.EntryID).Return(original, nil).Once()

	_, err := s.service.ReverseEntry(ctx, s.tenantID, original.EntryID, dto.ReverseJournalEntryRequest{}, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrConflict)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SavePostedEntryInTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
