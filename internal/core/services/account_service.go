package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	"github.com/fleetvision/fleet_backoffice/internal/core/accounttree"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
	"github.com/fleetvision/fleet_backoffice/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewAccountService(repo portsrepo.AccountRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// CreateAccount validates the request against the existing chart and
// persists a new account. The level is derived from the parent, never
// taken from the client.
func (s *AccountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	openingBalance := decimal.Zero
	if req.OpeningBalance != "" {
		parsed, err := domain.ParseAmount(req.OpeningBalance)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		openingBalance = parsed
	}

	level := 1
	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, tenantID, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, *req.ParentAccountID)
			}
			return nil, err
		}
		if parent.AccountType != req.AccountType {
			return nil, fmt.Errorf("%w: parent account %s has type %s, child must match", apperrors.ErrValidation, parent.Code, parent.AccountType)
		}
		parentID = parent.AccountID
		level = parent.Level + 1
	}

	allowPosting := true
	if req.AllowPosting != nil {
		allowPosting = *req.AllowPosting
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		TenantID:        tenantID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		ParentAccountID: parentID,
		Level:           level,
		AllowPosting:    allowPosting,
		IsActive:        true,
		OpeningBalance:  openingBalance,
		CurrentBalance:  openingBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_code", account.Code))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves an account by its unique identifier.
func (s *AccountService) GetAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByCode retrieves an account by its code.
func (s *AccountService) GetAccountByCode(ctx context.Context, tenantID string, code string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by code", slog.String("error", err.Error()), slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves every account of the tenant in code order.
func (s *AccountService) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, err
	}
	return accounts, nil
}

// GetAccountTree loads the whole chart and builds its hierarchy. Build
// failures mean the stored chart is corrupted (a cycle or a dangling
// parent), which is an internal fault, not a user error.
func (s *AccountService) GetAccountTree(ctx context.Context, tenantID string) (*accounttree.Tree[domain.Account], error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		logger.Error("Failed to list accounts for tree", slog.String("error", err.Error()))
		return nil, err
	}
	tree, err := accounttree.Build(accounts)
	if err != nil {
		logger.Error("Chart of accounts hierarchy is corrupted", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
	}
	return tree, nil
}

// UpdateAccount applies the provided field updates to an account.
func (s *AccountService) UpdateAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AllowPosting != nil {
		account.AllowPosting = *req.AllowPosting
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount marks an account inactive. History stays intact;
// only new postings are rejected.
func (s *AccountService) DeactivateAccount(ctx context.Context, tenantID string, accountID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.accountRepo.DeactivateAccount(ctx, tenantID, accountID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}
	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
