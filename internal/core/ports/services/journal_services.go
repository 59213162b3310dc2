package services

import (
	"context"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	portsrepo "github.com/fleetvision/fleet_backoffice/internal/core/ports/repositories"
	"github.com/fleetvision/fleet_backoffice/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetEntryByID retrieves a journal entry with its lines.
	GetEntryByID(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves journal entries matching the filter, ordered
	// by (entry date, entry number, entry id), with keyset pagination.
	ListEntries(ctx context.Context, tenantID string, filter portsrepo.JournalListFilter, limit int, paginationToken string) ([]domain.JournalEntry, string, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateEntry validates and persists a new draft entry.
	CreateEntry(ctx context.Context, tenantID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// UpdateDraftEntry replaces a draft entry's fields and lines. Posted
	// entries are immutable.
	UpdateDraftEntry(ctx context.Context, tenantID string, entryID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// DeleteDraftEntry removes a draft entry. Posted entries cannot be
	// deleted, only reversed.
	DeleteDraftEntry(ctx context.Context, tenantID string, entryID string, userID string) error

	// PostEntry revalidates a draft entry, allocates its entry number
	// and marks it posted, applying balance changes atomically.
	PostEntry(ctx context.Context, tenantID string, entryID string, userID string) (*domain.JournalEntry, error)

	// ReverseEntry creates and posts a new entry mirroring the original
	// with debit and credit swapped, linking the two.
	ReverseEntry(ctx context.Context, tenantID string, entryID string, req dto.ReverseJournalEntryRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
