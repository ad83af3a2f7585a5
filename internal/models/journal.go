package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of a GL journal entry header.
type JournalEntry struct {
	JournalEntryID string    `db:"journal_entry_id"`
	EntryDate      time.Time `db:"entry_date"`
	Description    string    `db:"description"`
	SourceDocument string    `db:"source_document"`
	AuditFields
}

// JournalLine is one leg of a journal entry.
type JournalLine struct {
	LineID         string          `db:"line_id"`
	JournalEntryID string          `db:"journal_entry_id"`
	AccountID      string          `db:"account_id"`
	Side           string          `db:"side"`
	Amount         decimal.Decimal `db:"amount"`
	Memo           string          `db:"memo"`
	LineOrder      int             `db:"line_order"`
}
