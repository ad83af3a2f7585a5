package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to its model.
// Lines are mapped separately because they live in their own table.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID: d.JournalEntryID,
		EntryDate:      d.EntryDate,
		Description:    d.Description,
		SourceDocument: d.SourceDocument,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry header to its domain.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalEntryID: m.JournalEntryID,
		EntryDate:      m.EntryDate,
		Description:    m.Description,
		SourceDocument: m.SourceDocument,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to its domain.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		AccountID: m.AccountID,
		Side:      domain.EntrySide(m.Side),
		Amount:    m.Amount,
		Memo:      m.Memo,
	}
}
