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

type CostCenterService struct {
	costCenterRepo portsrepo.CostCenterRepositoryFacade
}

func NewCostCenterService(repo portsrepo.CostCenterRepositoryFacade) *CostCenterService {
	return &CostCenterService{costCenterRepo: repo}
}

var _ portssvc.CostCenterSvcFacade = (*CostCenterService)(nil)

// CreateCostCenter persists a new cost center.
func (s *CostCenterService) CreateCostCenter(ctx context.Context, tenantID string, req dto.CreateCostCenterRequest, userID string) (*domain.CostCenter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budget := decimal.Zero
	if req.BudgetAmount != "" {
		parsed, err := domain.ParseAmount(req.BudgetAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		budget = parsed
	}

	parentID := ""
	if req.ParentID != nil && *req.ParentID != "" {
		parent, err := s.costCenterRepo.FindCostCenterByID(ctx, tenantID, *req.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent cost center %s not found", apperrors.ErrValidation, *req.ParentID)
			}
			return nil, err
		}
		parentID = parent.CostCenterID
	}

	now := time.Now()
	costCenter := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		TenantID:     tenantID,
		Code:         req.Code,
		Name:         req.Name,
		CenterType:   req.CenterType,
		ParentID:     parentID,
		BudgetAmount: budget,
		ActualSpent:  decimal.Zero,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.costCenterRepo.SaveCostCenter(ctx, costCenter); err != nil {
		logger.Error("Failed to save cost center", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, err
	}

	logger.Info("Cost center created", slog.String("cost_center_id", costCenter.CostCenterID), slog.String("code", costCenter.Code))
	return &costCenter, nil
}

// GetCostCenterByID retrieves a cost center by its identifier.
func (s *CostCenterService) GetCostCenterByID(ctx context.Context, tenantID string, costCenterID string) (*domain.CostCenter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	costCenter, err := s.costCenterRepo.FindCostCenterByID(ctx, tenantID, costCenterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find cost center", slog.String("error", err.Error()), slog.String("cost_center_id", costCenterID))
		}
		return nil, err
	}
	return costCenter, nil
}

// ListCostCenters retrieves every cost center of the tenant in code order.
func (s *CostCenterService) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	centers, err := s.costCenterRepo.ListCostCenters(ctx, tenantID)
	if err != nil {
		logger.Error("Failed to list cost centers", slog.String("error", err.Error()))
		return nil, err
	}
	return centers, nil
}

// GetCostCenterTree builds the cost center hierarchy.
func (s *CostCenterService) GetCostCenterTree(ctx context.Context, tenantID string) (*accounttree.Tree[domain.CostCenter], error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	centers, err := s.costCenterRepo.ListCostCenters(ctx, tenantID)
	if err != nil {
		logger.Error("Failed to list cost centers for tree", slog.String("error", err.Error()))
		return nil, err
	}
	tree, err := accounttree.Build(centers)
	if err != nil {
		logger.Error("Cost center hierarchy is corrupted", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
	}
	return tree, nil
}

// UpdateCostCenter applies the provided field updates.
func (s *CostCenterService) UpdateCostCenter(ctx context.Context, tenantID string, costCenterID string, req dto.UpdateCostCenterRequest, userID string) (*domain.CostCenter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	costCenter, err := s.costCenterRepo.FindCostCenterByID(ctx, tenantID, costCenterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		costCenter.Name = *req.Name
	}
	if req.CenterType != nil {
		costCenter.CenterType = *req.CenterType
	}
	if req.IsActive != nil {
		costCenter.IsActive = *req.IsActive
	}
	costCenter.LastUpdatedAt = time.Now()
	costCenter.LastUpdatedBy = userID

	if err := s.costCenterRepo.UpdateCostCenter(ctx, *costCenter); err != nil {
		logger.Error("Failed to update cost center", slog.String("error", err.Error()), slog.String("cost_center_id", costCenterID))
		return nil, err
	}

	logger.Info("Cost center updated", slog.String("cost_center_id", costCenterID))
	return costCenter, nil
}

// DeactivateCostCenter marks a cost center inactive.
func (s *CostCenterService) DeactivateCostCenter(ctx context.Context, tenantID string, costCenterID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.costCenterRepo.DeactivateCostCenter(ctx, tenantID, costCenterID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate cost center", slog.String("error", err.Error()), slog.String("cost_center_id", costCenterID))
		}
		return err
	}
	logger.Info("Cost center deactivated", slog.String("cost_center_id", costCenterID))
	return nil
}

// SetBudget replaces a cost center's budget amount.
func (s *CostCenterService) SetBudget(ctx context.Context, tenantID string, costCenterID string, req dto.SetBudgetRequest, userID string) (*domain.CostCenter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budget, err := domain.ParseAmount(req.BudgetAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if budget.IsNegative() {
		return nil, fmt.Errorf("%w: budget amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	if err := s.costCenterRepo.SetBudget(ctx, tenantID, costCenterID, budget, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to set budget", slog.String("error", err.Error()), slog.String("cost_center_id", costCenterID))
		}
		return nil, err
	}

	costCenter, err := s.costCenterRepo.FindCostCenterByID(ctx, tenantID, costCenterID)
	if err != nil {
		return nil, err
	}
	logger.Info("Budget updated", slog.String("cost_center_id", costCenterID), slog.String("budget", budget.String()))
	return costCenter, nil
}
