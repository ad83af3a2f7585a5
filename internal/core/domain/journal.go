package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide marks a journal line as a debit or credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalLine is one leg of a journal entry created by a posting operation.
type JournalLine struct {
	AccountID string          `json:"accountID"`
	Side      EntrySide       `json:"side"`
	Amount    decimal.Decimal `json:"amount"` // Always positive; sign is carried by Side
	Memo      string          `json:"memo,omitempty"`
}

// JournalEntry is the record handed to the GL posting collaborator. Every
// posted document stores the returned JournalEntryID as its GL reference.
type JournalEntry struct {
	JournalEntryID string        `json:"journalEntryID"`
	EntryDate      time.Time     `json:"entryDate"`
	Description    string        `json:"description"`
	SourceDocument string        `json:"sourceDocument"` // e.g. entry/sale/depreciation document number
	Lines          []JournalLine `json:"lines"`
	AuditFields
}
