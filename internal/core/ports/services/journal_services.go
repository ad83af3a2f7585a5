package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// JournalReaderSvc defines read operations for GL journal entries
type JournalReaderSvc interface {
	// GetJournalEntryByID retrieves a journal entry with its lines.
	GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ListJournalEntriesBySource retrieves entries for a source document.
	ListJournalEntriesBySource(ctx context.Context, sourceDocument string) ([]domain.JournalEntry, error)
}

// JournalWriterSvc is the GL posting collaborator used by the document
// services. It validates that the lines balance before persisting.
type JournalWriterSvc interface {
	// CreateJournalEntryInTx writes a balanced journal entry within the
	// caller's posting transaction and returns its identifier.
	CreateJournalEntryInTx(ctx context.Context, tx pgx.Tx, entryDate time.Time, description string, sourceDocument string, lines []domain.JournalLine, userID string) (string, error)
}

// JournalSvcFacade combines all journal service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
