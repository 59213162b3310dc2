package dto

import (
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/accounttree"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// OpeningBalance is a string so the 3-decimal scale check happens before
// any float conversion could round it.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentAccountID *string            `json:"parentAccountID"` // Optional, use pointer for nullability
	AllowPosting    *bool              `json:"allowPosting"`    // Defaults to true when omitted
	OpeningBalance  string             `json:"openingBalance"`  // Optional, defaults to "0"
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name         *string `json:"name"`
	AllowPosting *bool   `json:"allowPosting"`
	IsActive     *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	ParentAccountID string             `json:"parentAccountID"` // Empty string if null in DB
	Level           int                `json:"level"`
	AllowPosting    bool               `json:"allowPosting"`
	IsActive        bool               `json:"isActive"`
	OpeningBalance  decimal.Decimal    `json:"openingBalance"`
	CurrentBalance  decimal.Decimal    `json:"currentBalance"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy   string             `json:"lastUpdatedBy"`
}

// AccountTreeNodeResponse is one node of the chart-of-accounts hierarchy.
type AccountTreeNodeResponse struct {
	AccountResponse
	Children []AccountTreeNodeResponse `json:"children,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		ParentAccountID: acc.ParentAccountID,
		Level:           acc.Level,
		AllowPosting:    acc.AllowPosting,
		IsActive:        acc.IsActive,
		OpeningBalance:  acc.OpeningBalance,
		CurrentBalance:  acc.CurrentBalance,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		responses[i] = ToAccountResponse(&acc)
	}
	return responses
}

// ToAccountTreeResponse converts a built tree into its nested response form.
func ToAccountTreeResponse(tree *accounttree.Tree[domain.Account]) []AccountTreeNodeResponse {
	roots := tree.Roots()
	out := make([]AccountTreeNodeResponse, len(roots))
	for i, n := range roots {
		out[i] = toAccountTreeNode(n)
	}
	return out
}

func toAccountTreeNode(n *accounttree.Node[domain.Account]) AccountTreeNodeResponse {
	acc := n.Value
	node := AccountTreeNodeResponse{AccountResponse: ToAccountResponse(&acc)}
	if len(n.Children) > 0 {
		node.Children = make([]AccountTreeNodeResponse, len(n.Children))
		for i, c := range n.Children {
			node.Children[i] = toAccountTreeNode(c)
		}
	}
	return node
}
