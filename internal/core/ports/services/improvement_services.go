package services

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

// CapitalImprovementReaderSvc defines read operations for improvement documents
type CapitalImprovementReaderSvc interface {
	// GetImprovementByID retrieves an improvement document by its identifier.
	GetImprovementByID(ctx context.Context, improvementID string) (*domain.CapitalImprovement, error)

	// ListImprovementsByAsset retrieves all improvements for an asset.
	ListImprovementsByAsset(ctx context.Context, assetID string) ([]domain.CapitalImprovement, error)

	// ListUnpostedImprovements retrieves improvements not yet posted.
	ListUnpostedImprovements(ctx context.Context) ([]domain.CapitalImprovement, error)
}

// CapitalImprovementWriterSvc defines write operations for improvement documents
type CapitalImprovementWriterSvc interface {
	// CreateImprovement persists a new improvement document.
	CreateImprovement(ctx context.Context, req dto.CreateImprovementRequest, userID string) (*domain.CapitalImprovement, error)

	// PostImprovement posts the improvement: capitalizes the cost onto the
	// asset and writes the GL journal entry.
	PostImprovement(ctx context.Context, improvementID string, userID string) (*domain.CapitalImprovement, error)
}

// CapitalImprovementSvcFacade combines all improvement-related service interfaces
type CapitalImprovementSvcFacade interface {
	CapitalImprovementReaderSvc
	CapitalImprovementWriterSvc
}
