package services

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

// MonthlyUsageReaderSvc defines read operations for usage records
type MonthlyUsageReaderSvc interface {
	// GetUsageByID retrieves a usage record by its identifier.
	GetUsageByID(ctx context.Context, usageID string) (*domain.MonthlyUsage, error)

	// ListUsageByAsset retrieves all usage records for an asset.
	ListUsageByAsset(ctx context.Context, assetID string) ([]domain.MonthlyUsage, error)

	// ListUnprocessedUsage retrieves usage records not yet applied to the
	// asset's remaining units.
	ListUnprocessedUsage(ctx context.Context) ([]domain.MonthlyUsage, error)
}

// MonthlyUsageWriterSvc defines write operations for usage records
type MonthlyUsageWriterSvc interface {
	// RecordUsage persists a usage record for a units-of-production asset.
	RecordUsage(ctx context.Context, req dto.RecordUsageRequest, userID string) (*domain.MonthlyUsage, error)

	// ProcessUsage decrements the asset's remaining units exactly once.
	ProcessUsage(ctx context.Context, usageID string, userID string) (*domain.MonthlyUsage, error)
}

// MonthlyUsageSvcFacade combines all usage service interfaces
type MonthlyUsageSvcFacade interface {
	MonthlyUsageReaderSvc
	MonthlyUsageWriterSvc
}
