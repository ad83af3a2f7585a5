package services

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

// ParameterChangeReaderSvc defines read operations for parameter change documents
type ParameterChangeReaderSvc interface {
	// GetParameterChangeByID retrieves a parameter change by its identifier.
	GetParameterChangeByID(ctx context.Context, changeID string) (*domain.ParameterChange, error)

	// ListParameterChangesByAsset retrieves all parameter changes for an asset.
	ListParameterChangesByAsset(ctx context.Context, assetID string) ([]domain.ParameterChange, error)

	// ListUnpostedParameterChanges retrieves parameter changes not yet posted.
	ListUnpostedParameterChanges(ctx context.Context) ([]domain.ParameterChange, error)
}

// ParameterChangeWriterSvc defines write operations for parameter change documents
type ParameterChangeWriterSvc interface {
	// CreateParameterChange persists a new reassessment document with the old
	// values snapshotted from the asset.
	CreateParameterChange(ctx context.Context, req dto.CreateParameterChangeRequest, userID string) (*domain.ParameterChange, error)

	// PostParameterChange applies the reassessment to the asset and writes the
	// GL journal entry.
	PostParameterChange(ctx context.Context, changeID string, userID string) (*domain.ParameterChange, error)
}

// ParameterChangeSvcFacade combines all parameter-change service interfaces
type ParameterChangeSvcFacade interface {
	ParameterChangeReaderSvc
	ParameterChangeWriterSvc
}
