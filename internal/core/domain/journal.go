package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the lifecycle state of a journal entry.
// The only forward transition is DRAFT -> POSTED; nothing leads back.
// A reversal creates a brand-new entry, it never mutates the original.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
	// Reversed marks entries imported from systems that flag originals
	// in place. Entries in this state are immutable and cannot be
	// posted or reversed again.
	Reversed JournalStatus = "REVERSED"
)

// JournalEntry represents a single, balanced financial event composed of
// debit and credit lines. EntryNumber is assigned at posting time from a
// per-tenant sequence and is strictly increasing, which makes
// (EntryDate, EntryNumber) a deterministic ordering for ledger replay.
type JournalEntry struct {
	EntryID       string        `json:"entryID"`     // Primary key (UUID)
	TenantID      string        `json:"tenantID"`    // FK -> tenants.tenant_id (NON-NULL)
	EntryNumber   int64         `json:"entryNumber"` // 0 while draft; monotonic per tenant once posted
	EntryDate     time.Time     `json:"entryDate"`
	Description   string        `json:"description"`
	ReferenceType string        `json:"referenceType"` // Originating document type (invoice, contract, ...)
	ReferenceID   string        `json:"referenceID"`   // Originating document id
	Status        JournalStatus `json:"status"`
	// OriginalEntryID links a reversing entry back to the entry it
	// reverses. The original entry is never touched.
	OriginalEntryID *string `json:"originalEntryID,omitempty"`
	// ReversingEntryID is set on the original once a reversal exists and
	// guards against reversing the same entry twice.
	ReversingEntryID *string       `json:"reversingEntryID,omitempty"`
	Lines            []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// IsPosted reports whether the entry's effects are part of the ledger.
func (e JournalEntry) IsPosted() bool { return e.Status == Posted }

// JournalLine is a single debit or credit within a journal entry.
// Exactly one of Debit and Credit is nonzero on a valid line.
type JournalLine struct {
	LineID       string          `json:"lineID"`  // Primary key (UUID)
	EntryID      string          `json:"entryID"` // FK -> journal_entries.entry_id
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`  // >= 0
	Credit       decimal.Decimal `json:"credit"` // >= 0
	Description  string          `json:"description"`
	CostCenterID string          `json:"costCenterID,omitempty"` // Optional budget tag
	AuditFields
}

// Effect is the line's contribution to its account balance: debit minus
// credit, in minor units. Balances are debit-positive for every account
// type; presentation applies the normal-side convention separately.
func (l JournalLine) Effect() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}
