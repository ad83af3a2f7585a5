package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// SalePreparationReader defines read operations for sale preparation documents.
type SalePreparationReader interface {
	// FindSalePreparationByID retrieves a sale preparation by its identifier.
	FindSalePreparationByID(ctx context.Context, preparationID string) (*domain.SalePreparation, error)

	// ListSalePreparationsByAsset retrieves all sale preparations for an asset.
	ListSalePreparationsByAsset(ctx context.Context, assetID string) ([]domain.SalePreparation, error)

	// ListPendingSales retrieves posted preparations without a linked actual sale.
	ListPendingSales(ctx context.Context) ([]domain.SalePreparation, error)
}

// SalePreparationWriter defines write operations for sale preparation documents.
type SalePreparationWriter interface {
	// SaveSalePreparation persists a new sale preparation document.
	SaveSalePreparation(ctx context.Context, preparation domain.SalePreparation) error

	// MarkSalePreparationPostedInTx flips the posting flag and stores the GL
	// reference within the posting transaction.
	MarkSalePreparationPostedInTx(ctx context.Context, tx pgx.Tx, preparationID string, journalEntryID string, postedBy string, postedAt time.Time) error

	// MarkSalePreparationCancelledInTx reverts a preparation within the
	// cancellation transaction.
	MarkSalePreparationCancelledInTx(ctx context.Context, tx pgx.Tx, preparationID string, updatedBy string, updatedAt time.Time) error

	// LinkActualSale stores the id of the sale created from this preparation.
	LinkActualSale(ctx context.Context, preparationID string, saleID string, updatedBy string, updatedAt time.Time) error
}

// SalePreparationRepositoryFacade combines sale preparation repository interfaces.
type SalePreparationRepositoryFacade interface {
	SalePreparationReader
	SalePreparationWriter
}

// SaleReader defines read operations for sale documents.
type SaleReader interface {
	// FindSaleByID retrieves a sale document by its identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSalesByAsset retrieves all sale documents for an asset.
	ListSalesByAsset(ctx context.Context, assetID string) ([]domain.Sale, error)

	// ListUnpostedSales retrieves sale documents not yet posted.
	ListUnpostedSales(ctx context.Context) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale documents.
type SaleWriter interface {
	// SaveSale persists a new sale document.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// MarkSalePostedInTx flips the posting flag and stores the GL reference
	// within the posting transaction.
	MarkSalePostedInTx(ctx context.Context, tx pgx.Tx, saleID string, journalEntryID string, postedBy string, postedAt time.Time) error
}

// SaleRepositoryFacade combines sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// WriteOffReader defines read operations for write-off documents.
type WriteOffReader interface {
	// FindWriteOffByID retrieves a write-off document by its identifier.
	FindWriteOffByID(ctx context.Context, writeOffID string) (*domain.WriteOff, error)

	// ListWriteOffsByAsset retrieves all write-off documents for an asset.
	ListWriteOffsByAsset(ctx context.Context, assetID string) ([]domain.WriteOff, error)

	// ListUnpostedWriteOffs retrieves write-off documents not yet posted.
	ListUnpostedWriteOffs(ctx context.Context) ([]domain.WriteOff, error)
}

// WriteOffWriter defines write operations for write-off documents.
type WriteOffWriter interface {
	// SaveWriteOff persists a new write-off document.
	SaveWriteOff(ctx context.Context, writeOff domain.WriteOff) error

	// MarkWriteOffPostedInTx flips the posting flag and stores the GL
	// reference within the posting transaction.
	MarkWriteOffPostedInTx(ctx context.Context, tx pgx.Tx, writeOffID string, journalEntryID string, postedBy string, postedAt time.Time) error
}

// WriteOffRepositoryFacade combines write-off repository interfaces.
type WriteOffRepositoryFacade interface {
	WriteOffReader
	WriteOffWriter
}
