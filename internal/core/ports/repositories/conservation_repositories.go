package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// ConservationReader defines read operations for conservation documents.
type ConservationReader interface {
	// FindConservationByID retrieves a conservation document by its identifier.
	FindConservationByID(ctx context.Context, conservationID string) (*domain.Conservation, error)

	// FindActiveConservationByAsset retrieves the posted, non-cancelled
	// conservation for an asset, if any.
	FindActiveConservationByAsset(ctx context.Context, assetID string) (*domain.Conservation, error)

	// ListConservationsByAsset retrieves all conservation documents for an asset.
	ListConservationsByAsset(ctx context.Context, assetID string) ([]domain.Conservation, error)

	// ListActiveConservations retrieves all posted, non-cancelled conservations.
	ListActiveConservations(ctx context.Context) ([]domain.Conservation, error)

	// ListUnpostedConservations retrieves conservation documents not yet posted.
	ListUnpostedConservations(ctx context.Context) ([]domain.Conservation, error)
}

// ConservationWriter defines write operations for conservation documents.
type ConservationWriter interface {
	// SaveConservation persists a new conservation document.
	SaveConservation(ctx context.Context, conservation domain.Conservation) error

	// MarkConservationPostedInTx flips the posting flag and stores the GL
	// reference within the posting transaction.
	MarkConservationPostedInTx(ctx context.Context, tx pgx.Tx, conservationID string, journalEntryID string, postedBy string, postedAt time.Time) error

	// MarkConservationCancelledInTx records cancellation fields within the
	// cancellation transaction.
	MarkConservationCancelledInTx(ctx context.Context, tx pgx.Tx, conservation domain.Conservation) error
}

// ConservationRepositoryFacade combines conservation repository interfaces.
type ConservationRepositoryFacade interface {
	ConservationReader
	ConservationWriter
}
