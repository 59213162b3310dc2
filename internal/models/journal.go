package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft    JournalStatus = "DRAFT"
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// JournalEntry represents a single balanced financial event. EntryNumber
// is null until the entry is posted; posting allocates the tenant's next
// number inside the posting transaction.
type JournalEntry struct {
	EntryID          string         `db:"entry_id"`
	TenantID         string         `db:"tenant_id"`
	EntryNumber      sql.NullInt64  `db:"entry_number"`
	EntryDate        time.Time      `db:"entry_date"`
	Description      string         `db:"description"`
	ReferenceType    sql.NullString `db:"reference_type"`
	ReferenceID      sql.NullString `db:"reference_id"`
	Status           JournalStatus  `db:"status"`
	OriginalEntryID  sql.NullString `db:"original_entry_id"`
	ReversingEntryID sql.NullString `db:"reversing_entry_id"`
	AuditFields
}

// JournalLine is one debit or credit leg of an entry. Exactly one of
// Debit and Credit is non-zero on a valid line.
type JournalLine struct {
	LineID       string          `db:"line_id"`
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	Description  sql.NullString  `db:"description"`
	CostCenterID sql.NullString  `db:"cost_center_id"`
	AuditFields
}
