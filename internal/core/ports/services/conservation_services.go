package services

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

// ConservationReaderSvc defines read operations for conservation documents
type ConservationReaderSvc interface {
	// GetConservationByID retrieves a conservation document by its identifier.
	GetConservationByID(ctx context.Context, conservationID string) (*domain.Conservation, error)

	// ListConservationsByAsset retrieves all conservations for an asset.
	ListConservationsByAsset(ctx context.Context, assetID string) ([]domain.Conservation, error)

	// ListActiveConservations retrieves all posted, non-cancelled conservations.
	ListActiveConservations(ctx context.Context) ([]domain.Conservation, error)

	// ListUnpostedConservations retrieves conservations not yet posted.
	ListUnpostedConservations(ctx context.Context) ([]domain.Conservation, error)
}

// ConservationWriterSvc defines write operations for conservation documents
type ConservationWriterSvc interface {
	// StartConservation creates a conservation document with a financial
	// snapshot of the asset.
	StartConservation(ctx context.Context, req dto.StartConservationRequest, userID string) (*domain.Conservation, error)

	// PostConservation posts the document and suspends the asset.
	PostConservation(ctx context.Context, conservationID string, userID string) (*domain.Conservation, error)

	// CancelConservation ends the conservation and reactivates the asset.
	CancelConservation(ctx context.Context, conservationID string, req dto.CancelConservationRequest, userID string) (*domain.Conservation, error)
}

// ConservationSvcFacade combines all conservation-related service interfaces
type ConservationSvcFacade interface {
	ConservationReaderSvc
	ConservationWriterSvc
}
