package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse is one leg of a posted journal entry.
type JournalLineResponse struct {
	AccountID string          `json:"accountID"`
	Side      domain.EntrySide `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
	Memo      string          `json:"memo,omitempty"`
}

// JournalEntryResponse is the API representation of a GL journal entry.
type JournalEntryResponse struct {
	JournalEntryID string                `json:"journalEntryID"`
	EntryDate      time.Time             `json:"entryDate"`
	Description    string                `json:"description"`
	SourceDocument string                `json:"sourceDocument,omitempty"`
	Lines          []JournalLineResponse `json:"lines"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// AccountResponse is the API representation of a chart-of-accounts entry.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	AccountCode string `json:"accountCode"`
	Name        string `json:"name"`
	IsActive    bool   `json:"isActive"`
}

// ToJournalEntryResponse converts a domain JournalEntry to its API
// representation.
func ToJournalEntryResponse(je *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(je.Lines))
	for i, l := range je.Lines {
		lines[i] = JournalLineResponse{
			AccountID: l.AccountID,
			Side:      l.Side,
			Amount:    l.Amount,
			Memo:      l.Memo,
		}
	}
	return JournalEntryResponse{
		JournalEntryID: je.JournalEntryID,
		EntryDate:      je.EntryDate,
		Description:    je.Description,
		SourceDocument: je.SourceDocument,
		Lines:          lines,
		CreatedAt:      je.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain journal entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return out
}

// ToAccountResponse converts a domain ChartOfAccount to its API representation.
func ToAccountResponse(a *domain.ChartOfAccount) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		AccountCode: a.AccountCode,
		Name:        a.Name,
		IsActive:    a.IsActive,
	}
}
