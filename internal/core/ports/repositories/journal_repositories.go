package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// JournalReader defines read operations for GL journal entries.
type JournalReader interface {
	// FindJournalEntryByID retrieves a journal entry with its lines.
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ListJournalEntriesBySource retrieves entries created for a source
	// document number.
	ListJournalEntriesBySource(ctx context.Context, sourceDocument string) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for GL journal entries. Journal
// entries are only ever written inside a posting transaction so the document
// flag, the asset balances and the GL entry commit or roll back together.
type JournalWriter interface {
	// SaveJournalEntryInTx persists a journal entry and its lines within the
	// posting transaction.
	SaveJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
