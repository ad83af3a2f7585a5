package repositories

import (
	"context"
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// MonthlyUsageReader defines read operations for monthly usage records.
type MonthlyUsageReader interface {
	// FindUsageByID retrieves a usage record by its identifier.
	FindUsageByID(ctx context.Context, usageID string) (*domain.MonthlyUsage, error)

	// FindUsageByAssetAndPeriod retrieves the usage record for one asset and
	// one normalized period, if any.
	FindUsageByAssetAndPeriod(ctx context.Context, assetID string, period time.Time) (*domain.MonthlyUsage, error)

	// ListUsageByAsset retrieves the usage history for an asset.
	ListUsageByAsset(ctx context.Context, assetID string) ([]domain.MonthlyUsage, error)

	// ListUnprocessedUsage retrieves usage records not yet processed.
	ListUnprocessedUsage(ctx context.Context) ([]domain.MonthlyUsage, error)
}

// MonthlyUsageWriter defines write operations for monthly usage records.
type MonthlyUsageWriter interface {
	// SaveUsage persists a new usage record.
	SaveUsage(ctx context.Context, usage domain.MonthlyUsage) error

	// UpdateUsage updates an existing usage record.
	UpdateUsage(ctx context.Context, usage domain.MonthlyUsage) error
}

// MonthlyUsageRepositoryFacade combines usage repository interfaces.
type MonthlyUsageRepositoryFacade interface {
	MonthlyUsageReader
	MonthlyUsageWriter
}
