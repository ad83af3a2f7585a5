package services

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

// AssetReaderSvc defines read operations for fixed asset data
type AssetReaderSvc interface {
	// GetAssetByID retrieves a specific asset by its unique identifier.
	GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// GetAssetByNumber retrieves an asset by its business document number.
	GetAssetByNumber(ctx context.Context, assetNumber string) (*domain.FixedAsset, error)

	// ListAssets retrieves a paginated list of assets.
	ListAssets(ctx context.Context, params dto.ListAssetsParams) (*dto.ListAssetsResponse, error)

	// ListAssetsByStatus retrieves all assets in a given lifecycle status.
	ListAssetsByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.FixedAsset, error)

	// GetAssetSummary aggregates balances and counts across the register.
	GetAssetSummary(ctx context.Context) (*dto.AssetSummaryResponse, error)
}

// AssetWriterSvc defines write operations for fixed asset data
type AssetWriterSvc interface {
	// CreateAsset registers a new asset with zero balances.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.FixedAsset, error)

	// UpdateAsset updates descriptive fields of an existing asset.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.FixedAsset, error)

	// ChangeStatus moves an asset through the lifecycle state machine.
	ChangeStatus(ctx context.Context, assetID string, target domain.AssetStatus, userID string) (*domain.FixedAsset, error)

	// DeleteAsset removes an asset that has no financial history.
	DeleteAsset(ctx context.Context, assetID string, userID string) error
}

// AssetSvcFacade combines all asset-related service interfaces
// This is a facade for clients that need access to all operations
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
