package repositories

import (
	"context"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CostCenterReader defines read operations for cost centers.
type CostCenterReader interface {
	// FindCostCenterByID retrieves a cost center by its identifier.
	FindCostCenterByID(ctx context.Context, tenantID, costCenterID string) (*domain.CostCenter, error)

	// FindCostCenterByCode retrieves a cost center by code within a tenant.
	FindCostCenterByCode(ctx context.Context, tenantID, code string) (*domain.CostCenter, error)

	// ListCostCenters retrieves every cost center of a tenant in code order.
	ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error)
}

// CostCenterWriter defines write operations for cost centers.
type CostCenterWriter interface {
	// SaveCostCenter persists a new cost center.
	SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error

	// UpdateCostCenter updates a cost center's mutable details.
	UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) error

	// DeactivateCostCenter marks a cost center as inactive.
	DeactivateCostCenter(ctx context.Context, tenantID, costCenterID string, userID string, now time.Time) error

	// SetBudget replaces a cost center's budget amount.
	SetBudget(ctx context.Context, tenantID, costCenterID string, amount decimal.Decimal, userID string, now time.Time) error
}

// CostCenterRepositoryFacade combines all cost center repository interfaces.
type CostCenterRepositoryFacade interface {
	CostCenterReader
	CostCenterWriter
}
