package dto

import (
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/accounttree"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCostCenterRequest defines the data needed to create a cost center.
type CreateCostCenterRequest struct {
	Code         string                `json:"code" binding:"required"`
	Name         string                `json:"name" binding:"required"`
	CenterType   domain.CostCenterType `json:"centerType" binding:"required,oneof=OPERATIONS MAINTENANCE ADMIN PROJECT"`
	ParentID     *string               `json:"parentID"`
	BudgetAmount string                `json:"budgetAmount"` // Optional, defaults to "0"
}

// UpdateCostCenterRequest defines the data allowed for updating a cost center.
type UpdateCostCenterRequest struct {
	Name       *string                `json:"name"`
	CenterType *domain.CostCenterType `json:"centerType" binding:"omitempty,oneof=OPERATIONS MAINTENANCE ADMIN PROJECT"`
	IsActive   *bool                  `json:"isActive"`
}

// SetBudgetRequest replaces a cost center's budget.
type SetBudgetRequest struct {
	BudgetAmount string `json:"budgetAmount" binding:"required"`
}

// CostCenterResponse defines the data returned for a cost center.
type CostCenterResponse struct {
	CostCenterID       string                `json:"costCenterID"`
	Code               string                `json:"code"`
	Name               string                `json:"name"`
	CenterType         domain.CostCenterType `json:"centerType"`
	ParentID           string                `json:"parentID"`
	BudgetAmount       decimal.Decimal       `json:"budgetAmount"`
	ActualSpent        decimal.Decimal       `json:"actualSpent"`
	UtilizationPercent decimal.Decimal       `json:"budgetUtilizationPercentage"`
	IsActive           bool                  `json:"isActive"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
	LastUpdatedAt      time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy      string                `json:"lastUpdatedBy"`
}

// CostCenterTreeNodeResponse is one node of the cost center hierarchy.
type CostCenterTreeNodeResponse struct {
	CostCenterResponse
	Children []CostCenterTreeNodeResponse `json:"children,omitempty"`
}

// ToCostCenterResponse converts a domain.CostCenter to its DTO.
func ToCostCenterResponse(cc *domain.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		CostCenterID:       cc.CostCenterID,
		Code:               cc.Code,
		Name:               cc.Name,
		CenterType:         cc.CenterType,
		ParentID:           cc.ParentID,
		BudgetAmount:       cc.BudgetAmount,
		ActualSpent:        cc.ActualSpent,
		UtilizationPercent: cc.UtilizationPercent(),
		IsActive:           cc.IsActive,
		CreatedAt:          cc.CreatedAt,
		CreatedBy:          cc.CreatedBy,
		LastUpdatedAt:      cc.LastUpdatedAt,
		LastUpdatedBy:      cc.LastUpdatedBy,
	}
}

// ToCostCenterResponses converts a slice of cost centers to DTOs.
func ToCostCenterResponses(centers []domain.CostCenter) []CostCenterResponse {
	responses := make([]CostCenterResponse, len(centers))
	for i, cc := range centers {
		responses[i] = ToCostCenterResponse(&cc)
	}
	return responses
}

// ToCostCenterTreeResponse converts a built tree into its nested response form.
func ToCostCenterTreeResponse(tree *accounttree.Tree[domain.CostCenter]) []CostCenterTreeNodeResponse {
	roots := tree.Roots()
	out := make([]CostCenterTreeNodeResponse, len(roots))
	for i, n := range roots {
		out[i] = toCostCenterTreeNode(n)
	}
	return out
}

func toCostCenterTreeNode(n *accounttree.Node[domain.CostCenter]) CostCenterTreeNodeResponse {
	cc := n.Value
	node := CostCenterTreeNodeResponse{CostCenterResponse: ToCostCenterResponse(&cc)}
	if len(n.Children) > 0 {
		node.Children = make([]CostCenterTreeNodeResponse, len(n.Children))
		for i, c := range n.Children {
			node.Children[i] = toCostCenterTreeNode(c)
		}
	}
	return node
}
