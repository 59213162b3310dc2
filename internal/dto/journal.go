package dto

import (
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit or credit leg of a new entry.
// Amounts are strings so scale validation happens before parsing.
type CreateJournalLineRequest struct {
	AccountID    string `json:"accountID" binding:"required"`
	Debit        string `json:"debit"`
	Credit       string `json:"credit"`
	Description  string `json:"description"`
	CostCenterID string `json:"costCenterID"`
}

// CreateJournalEntryRequest defines the data needed to create a draft
// journal entry.
type CreateJournalEntryRequest struct {
	EntryDate     time.Time                  `json:"entryDate" binding:"required"`
	Description   string                     `json:"description" binding:"required"`
	ReferenceType string                     `json:"referenceType"`
	ReferenceID   string                     `json:"referenceID"`
	Lines         []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ReverseJournalEntryRequest carries the optional overrides for a
// reversing entry. When Description is empty a default is derived from
// the original's.
type ReverseJournalEntryRequest struct {
	EntryDate   *time.Time `json:"entryDate"`
	Description string     `json:"description"`
}

// ListJournalEntriesRequest holds the query parameters of the list endpoint.
type ListJournalEntriesRequest struct {
	Status        string     `form:"status" binding:"omitempty,oneof=DRAFT POSTED REVERSED"`
	ReferenceType string     `form:"referenceType"`
	ReferenceID   string     `form:"referenceID"`
	DateFrom      *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo        *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit         int        `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken     string     `form:"nextToken"`
}

// JournalLineResponse defines the data returned for one line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
	CostCenterID string          `json:"costCenterID,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID          string                `json:"entryID"`
	EntryNumber      int64                 `json:"entryNumber,omitempty"`
	EntryDate        time.Time             `json:"entryDate"`
	Description      string                `json:"description"`
	ReferenceType    string                `json:"referenceType,omitempty"`
	ReferenceID      string                `json:"referenceID,omitempty"`
	Status           domain.JournalStatus  `json:"status"`
	OriginalEntryID  *string               `json:"originalEntryID,omitempty"`
	ReversingEntryID *string               `json:"reversingEntryID,omitempty"`
	Lines            []JournalLineResponse `json:"lines"`
	CreatedAt        time.Time             `json:"createdAt"`
	CreatedBy        string                `json:"createdBy"`
}

// ListJournalEntriesResponse is one page of entries plus the cursor for
// the next page.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken string                 `json:"nextToken,omitempty"`
}

// ValidationFailureResponse reports the violations that blocked posting.
type ValidationFailureResponse struct {
	Error      string             `json:"error"`
	Violations []domain.Violation `json:"violations"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       l.LineID,
		AccountID:    l.AccountID,
		Debit:        l.Debit,
		Credit:       l.Credit,
		Description:  l.Description,
		CostCenterID: l.CostCenterID,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = ToJournalLineResponse(&l)
	}
	return JournalEntryResponse{
		EntryID:          e.EntryID,
		EntryNumber:      e.EntryNumber,
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		ReferenceType:    e.ReferenceType,
		ReferenceID:      e.ReferenceID,
		Status:           e.Status,
		OriginalEntryID:  e.OriginalEntryID,
		ReversingEntryID: e.ReversingEntryID,
		Lines:            lines,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
	}
}

// ToJournalEntryResponses converts a slice of entries to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return responses
}
