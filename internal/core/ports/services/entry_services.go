package services

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

// EntryReaderSvc defines read operations for asset entry documents
type EntryReaderSvc interface {
	// GetEntryByID retrieves an entry document by its identifier.
	GetEntryByID(ctx context.Context, entryID string) (*domain.AssetEntry, error)

	// ListEntriesByAsset retrieves all entry documents for an asset.
	ListEntriesByAsset(ctx context.Context, assetID string) ([]domain.AssetEntry, error)

	// ListUnpostedEntries retrieves entry documents not yet posted.
	ListUnpostedEntries(ctx context.Context) ([]domain.AssetEntry, error)
}

// EntryWriterSvc defines write operations for asset entry documents
type EntryWriterSvc interface {
	// CreateEntry persists a new entry document without touching balances.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.AssetEntry, error)

	// PostEntry posts the entry: applies the financial setup to the asset,
	// activates it and writes the GL journal entry.
	PostEntry(ctx context.Context, entryID string, userID string) (*domain.AssetEntry, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
