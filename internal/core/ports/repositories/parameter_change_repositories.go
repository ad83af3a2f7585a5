package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// ParameterChangeReader defines read operations for parameter change documents.
type ParameterChangeReader interface {
	// FindParameterChangeByID retrieves a parameter change by its identifier.
	FindParameterChangeByID(ctx context.Context, changeID string) (*domain.ParameterChange, error)

	// ListParameterChangesByAsset retrieves all parameter changes for an asset.
	ListParameterChangesByAsset(ctx context.Context, assetID string) ([]domain.ParameterChange, error)

	// ListUnpostedParameterChanges retrieves parameter changes not yet posted.
	ListUnpostedParameterChanges(ctx context.Context) ([]domain.ParameterChange, error)
}

// ParameterChangeWriter defines write operations for parameter change documents.
type ParameterChangeWriter interface {
	// SaveParameterChange persists a new parameter change document.
	SaveParameterChange(ctx context.Context, change domain.ParameterChange) error

	// MarkParameterChangePostedInTx flips the posting flag and stores the GL
	// reference within the posting transaction.
	MarkParameterChangePostedInTx(ctx context.Context, tx pgx.Tx, changeID string, journalEntryID string, postedBy string, postedAt time.Time) error
}

// ParameterChangeRepositoryFacade combines parameter change repository interfaces.
type ParameterChangeRepositoryFacade interface {
	ParameterChangeReader
	ParameterChangeWriter
}
