package mapping

import (
	"database/sql"

	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/fleetvision/fleet_backoffice/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	var num sql.NullInt64
	if d.EntryNumber != 0 {
		num = sql.NullInt64{Int64: d.EntryNumber, Valid: true}
	}
	return models.JournalEntry{
		EntryID:          d.EntryID,
		TenantID:         d.TenantID,
		EntryNumber:      num,
		EntryDate:        d.EntryDate,
		Description:      d.Description,
		ReferenceType:    nullString(d.ReferenceType),
		ReferenceID:      nullString(d.ReferenceID),
		Status:           models.JournalStatus(d.Status),
		OriginalEntryID:  nullStringPtr(d.OriginalEntryID),
		ReversingEntryID: nullStringPtr(d.ReversingEntryID),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:          m.EntryID,
		TenantID:         m.TenantID,
		EntryNumber:      m.EntryNumber.Int64,
		EntryDate:        m.EntryDate,
		Description:      m.Description,
		ReferenceType:    fromNullString(m.ReferenceType),
		ReferenceID:      fromNullString(m.ReferenceID),
		Status:           domain.JournalStatus(m.Status),
		OriginalEntryID:  fromNullStringPtr(m.OriginalEntryID),
		ReversingEntryID: fromNullStringPtr(m.ReversingEntryID),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		Description:  nullString(d.Description),
		CostCenterID: nullString(d.CostCenterID),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		Description:  fromNullString(m.Description),
		CostCenterID: fromNullString(m.CostCenterID),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
