package repositories

import (
	"context"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalListFilter narrows ListEntries results. Zero values mean "no
// constraint" for that field.
type JournalListFilter struct {
	Status        domain.JournalStatus
	ReferenceType string
	ReferenceID   string
	DateFrom      *time.Time
	DateTo        *time.Time
}

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry with its lines.
	FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves journal entries matching the filter, ordered
	// by (entry date, entry number), using keyset pagination. nextToken
	// is empty when no further page exists.
	ListEntries(ctx context.Context, tenantID string, filter JournalListFilter, limit int, paginationToken string) (entries []domain.JournalEntry, nextToken string, err error)
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	// SaveDraftEntry persists a new entry and its lines with draft
	// status. Draft entries have no entry number yet.
	SaveDraftEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateDraftEntry replaces a draft entry's header fields and lines.
	UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteDraftEntry removes a draft entry and its lines.
	DeleteDraftEntry(ctx context.Context, tenantID, entryID string) error
}

// JournalTransactionSupport defines operations used inside the posting
// and reversal transactions.
type JournalTransactionSupport interface {
	// FindEntryByIDForUpdate retrieves an entry with its lines and locks
	// the entry row within a transaction.
	FindEntryByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, entryID string) (*domain.JournalEntry, error)

	// NextEntryNumberInTx allocates the tenant's next entry number
	// within a transaction. The allocation row is locked so numbers are
	// gapless and strictly increasing per tenant.
	NextEntryNumberInTx(ctx context.Context, tx pgx.Tx, tenantID string) (int64, error)

	// MarkEntryPostedInTx stamps an entry with its number and posted
	// status within a transaction.
	MarkEntryPostedInTx(ctx context.Context, tx pgx.Tx, tenantID, entryID string, entryNumber int64, userID string, now time.Time) error

	// SavePostedEntryInTx inserts an entry and its lines already in
	// posted status within a transaction. Reversal uses this to create
	// the reversing entry atomically with the original's linkage update.
	SavePostedEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error

	// LinkReversalInTx records the reversing entry's id on the original
	// within a transaction, guarding against double reversal.
	LinkReversalInTx(ctx context.Context, tx pgx.Tx, tenantID, originalEntryID, reversingEntryID string, userID string, now time.Time) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	JournalTransactionSupport
}
