package services

import (
	"context"

	"github.com/fleetvision/fleet_backoffice/internal/core/accounttree"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
)

// AccountReaderSvc defines read operations for chart-of-accounts data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account by its code within a tenant.
	GetAccountByCode(ctx context.Context, tenantID string, code string) (*domain.Account, error)

	// ListAccounts retrieves every account of a tenant in code order.
	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)

	// GetAccountTree builds the full chart-of-accounts hierarchy.
	GetAccountTree(ctx context.Context, tenantID string) (*accounttree.Tree[domain.Account], error)
}

// AccountWriterSvc defines write operations for chart-of-accounts data
type AccountWriterSvc interface {
	// CreateAccount persists a new account. Level is derived from the
	// parent; root accounts get level 1.
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive. Inactive accounts
	// reject new postings but keep their history.
	DeactivateAccount(ctx context.Context, tenantID string, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
