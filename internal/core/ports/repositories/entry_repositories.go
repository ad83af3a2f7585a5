package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// EntryReader defines read operations for asset entry documents.
type EntryReader interface {
	// FindEntryByID retrieves an entry document by its identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.AssetEntry, error)

	// ListEntriesByAsset retrieves all entry documents for an asset.
	ListEntriesByAsset(ctx context.Context, assetID string) ([]domain.AssetEntry, error)

	// ListUnpostedEntries retrieves entry documents not yet posted.
	ListUnpostedEntries(ctx context.Context) ([]domain.AssetEntry, error)
}

// EntryWriter defines write operations for asset entry documents.
type EntryWriter interface {
	// SaveEntry persists a new entry document.
	SaveEntry(ctx context.Context, entry domain.AssetEntry) error

	// MarkEntryPostedInTx flips the posting flag and stores the GL reference
	// within the posting transaction.
	MarkEntryPostedInTx(ctx context.Context, tx pgx.Tx, entryID string, journalEntryID string, postedBy string, postedAt time.Time) error
}

// EntryRepositoryFacade combines entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
