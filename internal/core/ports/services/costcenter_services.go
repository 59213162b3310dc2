package services

import (
	"context"

	"github.com/fleetvision/fleet_backoffice/internal/core/accounttree"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
)

// CostCenterReaderSvc defines read operations for cost centers
type CostCenterReaderSvc interface {
	// GetCostCenterByID retrieves a cost center by its identifier.
	GetCostCenterByID(ctx context.Context, tenantID string, costCenterID string) (*domain.CostCenter, error)

	// ListCostCenters retrieves every cost center of a tenant in code order.
	ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error)

	// GetCostCenterTree builds the cost center hierarchy.
	GetCostCenterTree(ctx context.Context, tenantID string) (*accounttree.Tree[domain.CostCenter], error)
}

// CostCenterWriterSvc defines write operations for cost centers
type CostCenterWriterSvc interface {
	// CreateCostCenter persists a new cost center.
	CreateCostCenter(ctx context.Context, tenantID string, req dto.CreateCostCenterRequest, userID string) (*domain.CostCenter, error)

	// UpdateCostCenter updates a cost center's details.
	UpdateCostCenter(ctx context.Context, tenantID string, costCenterID string, req dto.UpdateCostCenterRequest, userID string) (*domain.CostCenter, error)

	// DeactivateCostCenter marks a cost center as inactive.
	DeactivateCostCenter(ctx context.Context, tenantID string, costCenterID string, userID string) error

	// SetBudget replaces a cost center's budget amount.
	SetBudget(ctx context.Context, tenantID string, costCenterID string, req dto.SetBudgetRequest, userID string) (*domain.CostCenter, error)
}

// CostCenterSvcFacade combines all cost center service interfaces
type CostCenterSvcFacade interface {
	CostCenterReaderSvc
	CostCenterWriterSvc
}
