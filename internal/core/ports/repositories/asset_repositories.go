package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// AssetReader defines read operations for fixed asset data.
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// FindAssetByNumber retrieves an asset by its unique user-facing number.
	FindAssetByNumber(ctx context.Context, assetNumber string) (*domain.FixedAsset, error)

	// ListAssets retrieves a paginated list of assets using token-based pagination.
	ListAssets(ctx context.Context, limit int, nextToken *string) ([]domain.FixedAsset, *string, error)

	// ListAssetsByStatus retrieves all assets in a given lifecycle status.
	ListAssetsByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.FixedAsset, error)

	// FindAssetsNeedingDepreciation retrieves ACTIVE assets whose last
	// depreciation date is unset or before the target period.
	FindAssetsNeedingDepreciation(ctx context.Context, period time.Time) ([]domain.FixedAsset, error)
}

// AssetWriter defines write operations for fixed asset data.
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.FixedAsset) error

	// UpdateAsset updates an existing asset's fields.
	UpdateAsset(ctx context.Context, asset domain.FixedAsset) error

	// DeleteAsset removes an asset. Services only allow this while the asset is NEW.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetTransactionSupport defines asset operations usable inside an open transaction.
type AssetTransactionSupport interface {
	// FindAssetByIDForUpdate selects an asset and locks its row for the
	// duration of the transaction. All posting read-modify-write sequences
	// go through this.
	FindAssetByIDForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.FixedAsset, error)

	// UpdateAssetInTx updates an asset within the given transaction.
	UpdateAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.FixedAsset) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssetTransactionSupport
}

// AssetRepositoryWithTx extends AssetRepositoryFacade with transaction capabilities.
type AssetRepositoryWithTx interface {
	AssetRepositoryFacade
	TransactionManager
}
