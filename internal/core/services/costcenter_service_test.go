package services_test

import (
	"context"
	"testing"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/core/services"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCostCenter_DefaultsToZeroBudget(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCostCenterRepository)
	svc := services.NewCostCenterService(mockRepo)
	tenantID := uuid.NewString()

	mockRepo.On("SaveCostCenter", ctx, mock.MatchedBy(func(cc domain.CostCenter) bool {
		return cc.BudgetAmount.IsZero() && cc.ActualSpent.IsZero() && cc.IsActive
	})).Return(nil).Once()

	cc, err := svc.CreateCostCenter(ctx, tenantID, dto.CreateCostCenterRequest{
		Code:       "OPS-01",
		Name:       "Vehicle Operations",
		CenterType: domain.CostCenterOperations,
	}, uuid.NewString())

	require.NoError(t, err)
	assert.True(t, cc.BudgetAmount.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestCreateCostCenter_MissingParentRejected(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCostCenterRepository)
	svc := services.NewCostCenterService(mockRepo)
	tenantID := uuid.NewString()
	parentID := uuid.NewString()

	mockRepo.On("FindCostCenterByID", ctx, tenantID, parentID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.CreateCostCenter(ctx, tenantID, dto.CreateCostCenterRequest{
		Code:       "OPS-02",
		Name:       "Sub Fleet",
		CenterType: domain.CostCenterOperations,
		ParentID:   &parentID,
	}, uuid.NewString())

	require.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "SaveCostCenter", mock.Anything, mock.Anything)
}

func TestSetBudget_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCostCenterRepository)
	svc := services.NewCostCenterService(mockRepo)
	tenantID := uuid.NewString()
	ccID := uuid.NewString()

	updated := &domain.CostCenter{
		CostCenterID: ccID,
		BudgetAmount: decimal.RequireFromString("1500"),
	}
	mockRepo.On("SetBudget", ctx, tenantID, ccID, mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(decimal.RequireFromString("1500"))
	}), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	mockRepo.On("FindCostCenterByID", ctx, tenantID, ccID).Return(updated, nil).Once()

	cc, err := svc.SetBudget(ctx, tenantID, ccID, dto.SetBudgetRequest{BudgetAmount: "1500.000"}, uuid.NewString())

	require.NoError(t, err)
	assert.True(t, cc.BudgetAmount.Equal(decimal.RequireFromString("1500")))
	mockRepo.AssertExpectations(t)
}

func TestSetBudget_NegativeRejected(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCostCenterRepository)
	svc := services.NewCostCenterService(mockRepo)

	_, err := svc.SetBudget(ctx, uuid.NewString(), uuid.NewString(), dto.SetBudgetRequest{BudgetAmount: "-10.000"}, uuid.NewString())

	require.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "SetBudget", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetBudget_OverPreciseRejected(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCostCenterRepository)
	svc := services.NewCostCenterService(mockRepo)

	_, err := svc.SetBudget(ctx, uuid.NewString(), uuid.NewString(), dto.SetBudgetRequest{BudgetAmount: "10.00001"}, uuid.NewString())

	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateCostCenter_AppliesPartialFields(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCostCenterRepository)
	svc := services.NewCostCenterService(mockRepo)
	tenantID := uuid.NewString()

	existing := &domain.CostCenter{
		CostCenterID: uuid.NewString(),
		Name:         "Workshop",
		CenterType:   domain.CostCenterMaintenance,
		IsActive:     true,
	}
	mockRepo.On("FindCostCenterByID", ctx, tenantID, existing.CostCenterID).Return(existing, nil).Once()
	mockRepo.On("UpdateCostCenter", ctx, mock.MatchedBy(func(cc domain.CostCenter) bool {
		return cc.Name == "Main Workshop" && cc.CenterType == domain.CostCenterMaintenance
	})).Return(nil).Once()

	newName := "Main Workshop"
	cc, err := svc.UpdateCostCenter(ctx, tenantID, existing.CostCenterID, dto.UpdateCostCenterRequest{Name: &newName}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, "Main Workshop", cc.Name)
	mockRepo.AssertExpectations(t)
}
