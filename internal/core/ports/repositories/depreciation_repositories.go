package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// DepreciationReader defines read operations for depreciation records.
type DepreciationReader interface {
	// FindDepreciationByID retrieves a depreciation record by its identifier.
	FindDepreciationByID(ctx context.Context, depreciationID string) (*domain.DepreciationRecord, error)

	// FindDepreciationByAssetAndPeriod retrieves the record for one asset and
	// one normalized period, if any.
	FindDepreciationByAssetAndPeriod(ctx context.Context, assetID string, period time.Time) (*domain.DepreciationRecord, error)

	// ListDepreciationByAsset retrieves the depreciation history for an asset,
	// ordered by period.
	ListDepreciationByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error)

	// ListDepreciationByPeriod retrieves all records for a normalized period.
	ListDepreciationByPeriod(ctx context.Context, period time.Time) ([]domain.DepreciationRecord, error)

	// ListUnpostedDepreciation retrieves records not yet posted to the GL.
	ListUnpostedDepreciation(ctx context.Context) ([]domain.DepreciationRecord, error)
}

// DepreciationWriter defines write operations for depreciation records.
type DepreciationWriter interface {
	// SaveDepreciationInTx persists a new record inside the calculation's transaction.
	SaveDepreciationInTx(ctx context.Context, tx pgx.Tx, record domain.DepreciationRecord) error

	// MarkDepreciationPostedInTx flips the posting flag and stores the GL
	// reference within the posting transaction.
	MarkDepreciationPostedInTx(ctx context.Context, tx pgx.Tx, depreciationID string, journalEntryID string, postedBy string, postedAt time.Time) error
}

// DepreciationRepositoryFacade combines depreciation repository interfaces.
type DepreciationRepositoryFacade interface {
	DepreciationReader
	DepreciationWriter
}
