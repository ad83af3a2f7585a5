package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// CapitalImprovementReader defines read operations for improvement documents.
type CapitalImprovementReader interface {
	// FindImprovementByID retrieves an improvement document by its identifier.
	FindImprovementByID(ctx context.Context, improvementID string) (*domain.CapitalImprovement, error)

	// ListImprovementsByAsset retrieves all improvement documents for an asset.
	ListImprovementsByAsset(ctx context.Context, assetID string) ([]domain.CapitalImprovement, error)

	// ListUnpostedImprovements retrieves improvement documents not yet posted.
	ListUnpostedImprovements(ctx context.Context) ([]domain.CapitalImprovement, error)
}

// CapitalImprovementWriter defines write operations for improvement documents.
type CapitalImprovementWriter interface {
	// SaveImprovement persists a new improvement document.
	SaveImprovement(ctx context.Context, improvement domain.CapitalImprovement) error

	// MarkImprovementPostedInTx flips the posting flag and stores the GL
	// reference within the posting transaction.
	MarkImprovementPostedInTx(ctx context.Context, tx pgx.Tx, improvementID string, journalEntryID string, postedBy string, postedAt time.Time) error
}

// CapitalImprovementRepositoryFacade combines improvement repository interfaces.
type CapitalImprovementRepositoryFacade interface {
	CapitalImprovementReader
	CapitalImprovementWriter
}
