package dto

import (
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportDateQuery holds the asOf parameter shared by snapshot reports.
// It defaults to today when omitted.
type ReportDateQuery struct {
	AsOf *time.Time `form:"asOf" time_format:"2006-01-02"`
}

// ReportRangeQuery holds the period parameters shared by range reports.
type ReportRangeQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// LedgerQuery holds the general ledger parameters.
type LedgerQuery struct {
	From          time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To            time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
	ReferenceType string    `form:"referenceType"`
}

// GeneralLedgerResponse is the running-balance ledger of one account.
type GeneralLedgerResponse struct {
	AccountID      string                    `json:"accountID"`
	AccountCode    string                    `json:"accountCode"`
	AccountName    string                    `json:"accountName"`
	OpeningBalance decimal.Decimal           `json:"openingBalance"`
	ClosingBalance decimal.Decimal           `json:"closingBalance"`
	Rows           []domain.GeneralLedgerRow `json:"rows"`
}

// ToGeneralLedgerResponse converts the domain ledger view to its DTO.
func ToGeneralLedgerResponse(gl *domain.GeneralLedger) GeneralLedgerResponse {
	return GeneralLedgerResponse{
		AccountID:      gl.AccountID,
		AccountCode:    gl.AccountCode,
		AccountName:    gl.AccountName,
		OpeningBalance: gl.OpeningBalance,
		ClosingBalance: gl.ClosingBalance,
		Rows:           gl.Rows,
	}
}
