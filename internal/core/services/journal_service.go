package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
	"github.com/fleetvision/fleet_backoffice/internal/middleware"
	"github.com/fleetvision/fleet_backoffice/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type JournalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}

var _ portssvc.JournalSvcFacade = (*JournalService)(nil)

// buildLines parses the request lines into domain lines. Amount parsing
// rejects malformed values and anything finer than the minor unit; all
// other rules are checked by the validator, which reports rather than
// aborts.
func buildLines(entryID string, reqLines []dto.CreateJournalLineRequest, userID string, now time.Time) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, len(reqLines))
	for i, rl := range reqLines {
		debit := decimal.Zero
		credit := decimal.Zero
		var err error
		if rl.Debit != "" {
			debit, err = domain.ParseAmount(rl.Debit)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d debit: %s", apperrors.ErrValidation, i+1, err.Error())
			}
		}
		if rl.Credit != "" {
			credit, err = domain.ParseAmount(rl.Credit)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d credit: %s", apperrors.ErrValidation, i+1, err.Error())
			}
		}
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountID:    rl.AccountID,
			Debit:        debit,
			Credit:       credit,
			Description:  rl.Description,
			CostCenterID: rl.CostCenterID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return lines, nil
}

// CreateEntry persists a new draft entry. Drafts may be unbalanced or
// otherwise invalid; the full rule set is enforced at posting time.
func (s *JournalService) CreateEntry(ctx context.Context, tenantID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	entryID := uuid.NewString()
	lines, err := buildLines(entryID, req.Lines, userID, now)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:       entryID,
		TenantID:      tenantID,
		EntryDate:     req.EntryDate,
		Description:   req.Description,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Status:        domain.Draft,
		Lines:         lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.journalRepo.SaveDraftEntry(ctx, entry); err != nil {
		logger.Error("Failed to save draft entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	logger.Info("Draft journal entry created", slog.String("entry_id", entryID))
	return &entry, nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *JournalService) GetEntryByID(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entry, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a page of entries matching the filter.
func (s *JournalService) ListEntries(ctx context.Context, tenantID string, filter portsrepo.JournalListFilter, limit int, paginationToken string) ([]domain.JournalEntry, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entries, nextToken, err := s.journalRepo.ListEntries(ctx, tenantID, filter, limit, paginationToken)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		return nil, "", err
	}
	return entries, nextToken, nil
}

// UpdateDraftEntry replaces a draft entry's fields and lines.
func (s *JournalService) UpdateDraftEntry(ctx context.Context, tenantID string, entryID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}
	if existing.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyPosted, entryID)
	}

	now := time.Now()
	lines, err := buildLines(entryID, req.Lines, userID, now)
	if err != nil {
		return nil, err
	}

	entry := *existing
	entry.EntryDate = req.EntryDate
	entry.Description = req.Description
	entry.ReferenceType = req.ReferenceType
	entry.ReferenceID = req.ReferenceID
	entry.Lines = lines
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	if err := s.journalRepo.UpdateDraftEntry(ctx, entry); err != nil {
		logger.Error("Failed to update draft entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	logger.Info("Draft journal entry updated", slog.String("entry_id", entryID))
	return &entry, nil
}

// DeleteDraftEntry removes a draft entry. Posted entries are immutable
// and can only be neutralized by a reversal.
func (s *JournalService) DeleteDraftEntry(ctx context.Context, tenantID string, entryID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return err
	}
	if existing.Status != domain.Draft {
		return fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyPosted, entryID)
	}

	if err := s.journalRepo.DeleteDraftEntry(ctx, tenantID, entryID); err != nil {
		logger.Error("Failed to delete draft entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return err
	}
	logger.Info("Draft journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// PostEntry makes a draft entry part of the ledger: it revalidates the
// entry against the current chart, allocates the tenant's next entry
// number, stamps the entry posted and folds each line's effect into its
// account's cached balance. Everything happens in one transaction with
// the touched account rows locked, so concurrent postings to the same
// accounts serialize and the cache never drifts.
func (s *JournalService) PostEntry(ctx context.Context, tenantID string, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	entry, err := s.journalRepo.FindEntryByIDForUpdate(ctx, tx, tenantID, entryID)
	if err != nil {
		return nil, err
	}
	switch entry.Status {
	case domain.Draft:
		// proceed
	case domain.Posted:
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyPosted, entryID)
	default:
		return nil, fmt.Errorf("%w: entry %s has status %s", apperrors.ErrNotDraft, entryID, entry.Status)
	}

	accountIDs := distinctAccountIDs(entry.Lines)
	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, tenantID, accountIDs)
	if err != nil {
		return nil, err
	}

	if violations := ValidateJournalEntry(*entry, accounts); len(violations) > 0 {
		logger.Warn("Posting blocked by validation", slog.String("entry_id", entryID), slog.Int("violations", len(violations)))
		return nil, &apperrors.JournalValidationError{Violations: violations}
	}

	now := time.Now()
	entryNumber, err := s.journalRepo.NextEntryNumberInTx(ctx, tx, tenantID)
	if err != nil {
		return nil, err
	}
	if err := s.journalRepo.MarkEntryPostedInTx(ctx, tx, tenantID, entryID, entryNumber, userID, now); err != nil {
		return nil, err
	}

	changes := accounting.BalanceChanges(entry.Lines)
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, tenantID, changes, userID, now); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	entry.EntryNumber = entryNumber
	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	logger.Info("Journal entry posted",
		slog.String("entry_id", entryID),
		slog.Int64("entry_number", entryNumber),
	)
	return entry, nil
}

// ReverseEntry creates and posts a brand-new entry mirroring the
// original with debit and credit swapped per line, then links the two.
// The original stays POSTED and untouched apart from the linkage; a
// second reversal and a reversal of a reversal are both rejected.
func (s *JournalService) ReverseEntry(ctx context.Context, tenantID string, entryID string, req dto.ReverseJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	original, err := s.journalRepo.FindEntryByIDForUpdate(ctx, tx, tenantID, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: only posted entries can be reversed, entry %s is %s", apperrors.ErrNotDraft, entryID, original.Status)
	}
	if original.OriginalEntryID != nil {
		return nil, fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrConflict, entryID)
	}
	if original.ReversingEntryID != nil {
		return nil, fmt.Errorf("%w: entry %s already reversed by %s", apperrors.ErrConflict, entryID, *original.ReversingEntryID)
	}

	now := time.Now()
	entryDate := now
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}
	description := req.Description
	if description == "" {
		description = "Reversal of: " + original.Description
	}

	reversalID := uuid.NewString()
	lines := make([]domain.JournalLine, len(original.Lines))
	for i, l := range original.Lines {
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      reversalID,
			AccountID:    l.AccountID,
			Debit:        l.Credit,
			Credit:       l.Debit,
			Description:  l.Description,
			CostCenterID: l.CostCenterID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	// Lock the touched accounts before applying the inverse effects.
	accountIDs := distinctAccountIDs(lines)
	if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, tenantID, accountIDs); err != nil {
		return nil, err
	}

	entryNumber, err := s.journalRepo.NextEntryNumberInTx(ctx, tx, tenantID)
	if err != nil {
		return nil, err
	}

	originalID := original.EntryID
	reversal := domain.JournalEntry{
		EntryID:         reversalID,
		TenantID:        tenantID,
		EntryNumber:     entryNumber,
		EntryDate:       entryDate,
		Description:     description,
		ReferenceType:   original.ReferenceType,
		ReferenceID:     original.ReferenceID,
		Status:          domain.Posted,
		OriginalEntryID: &originalID,
		Lines:           lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.journalRepo.SavePostedEntryInTx(ctx, tx, reversal); err != nil {
		return nil, err
	}
	if err := s.journalRepo.LinkReversalInTx(ctx, tx, tenantID, originalID, reversalID, userID, now); err != nil {
		return nil, err
	}

	changes := accounting.BalanceChanges(lines)
	if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, tenantID, changes, userID, now); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Journal entry reversed",
		slog.String("original_entry_id", originalID),
		slog.String("reversing_entry_id", reversalID),
		slog.Int64("entry_number", entryNumber),
	)
	return &reversal, nil
}

// distinctAccountIDs returns the sorted set of account IDs the lines
// touch. Sorted order keeps lock acquisition deterministic across
// concurrent postings.
func distinctAccountIDs(lines []domain.JournalLine) []string {
	set := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		set[l.AccountID] = struct{}{}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
