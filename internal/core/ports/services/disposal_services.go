package services

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

// SalePreparationReaderSvc defines read operations for sale preparations
type SalePreparationReaderSvc interface {
	// GetSalePreparationByID retrieves a preparation by its identifier.
	GetSalePreparationByID(ctx context.Context, preparationID string) (*domain.SalePreparation, error)

	// ListSalePreparationsByAsset retrieves all preparations for an asset.
	ListSalePreparationsByAsset(ctx context.Context, assetID string) ([]domain.SalePreparation, error)

	// ListPendingSales retrieves posted preparations without a linked sale.
	ListPendingSales(ctx context.Context) ([]domain.SalePreparation, error)
}

// SalePreparationWriterSvc defines write operations for sale preparations
type SalePreparationWriterSvc interface {
	// CreateSalePreparation persists a new preparation document.
	CreateSalePreparation(ctx context.Context, req dto.CreateSalePreparationRequest, userID string) (*domain.SalePreparation, error)

	// PostSalePreparation reclassifies the asset as held for sale.
	PostSalePreparation(ctx context.Context, preparationID string, userID string) (*domain.SalePreparation, error)

	// CancelSalePreparation reverts an unsold preparation, returning the asset
	// to active service.
	CancelSalePreparation(ctx context.Context, preparationID string, userID string) (*domain.SalePreparation, error)
}

// SalePreparationSvcFacade combines all sale-preparation service interfaces
type SalePreparationSvcFacade interface {
	SalePreparationReaderSvc
	SalePreparationWriterSvc
}

// SaleReaderSvc defines read operations for sale documents
type SaleReaderSvc interface {
	// GetSaleByID retrieves a sale document by its identifier.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSalesByAsset retrieves all sale documents for an asset.
	ListSalesByAsset(ctx context.Context, assetID string) ([]domain.Sale, error)

	// ListUnpostedSales retrieves sale documents not yet posted.
	ListUnpostedSales(ctx context.Context) ([]domain.Sale, error)
}

// SaleWriterSvc defines write operations for sale documents
type SaleWriterSvc interface {
	// CreateSale persists a sale document for a held-for-sale asset.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error)

	// PostSale disposes of the asset and records the gain or loss in the GL.
	PostSale(ctx context.Context, saleID string, userID string) (*domain.Sale, error)
}

// SaleSvcFacade combines all sale service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}

// WriteOffReaderSvc defines read operations for write-off documents
type WriteOffReaderSvc interface {
	// GetWriteOffByID retrieves a write-off document by its identifier.
	GetWriteOffByID(ctx context.Context, writeOffID string) (*domain.WriteOff, error)

	// ListWriteOffsByAsset retrieves all write-off documents for an asset.
	ListWriteOffsByAsset(ctx context.Context, assetID string) ([]domain.WriteOff, error)

	// ListUnpostedWriteOffs retrieves write-off documents not yet posted.
	ListUnpostedWriteOffs(ctx context.Context) ([]domain.WriteOff, error)
}

// WriteOffWriterSvc defines write operations for write-off documents
type WriteOffWriterSvc interface {
	// CreateWriteOff persists a write-off document with the loss snapshotted
	// from the asset.
	CreateWriteOff(ctx context.Context, req dto.CreateWriteOffRequest, userID string) (*domain.WriteOff, error)

	// PostWriteOff removes the asset from the books and records the loss.
	PostWriteOff(ctx context.Context, writeOffID string, userID string) (*domain.WriteOff, error)
}

// WriteOffSvcFacade combines all write-off service interfaces
type WriteOffSvcFacade interface {
	WriteOffReaderSvc
	WriteOffWriterSvc
}
