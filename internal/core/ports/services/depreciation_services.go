package services

import (
	"context"
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/dto"
)

// DepreciationReaderSvc defines read operations for depreciation records
type DepreciationReaderSvc interface {
	// GetDepreciationByID retrieves a depreciation record by its identifier.
	GetDepreciationByID(ctx context.Context, depreciationID string) (*domain.DepreciationRecord, error)

	// ListDepreciationByAsset retrieves the depreciation history of one asset.
	ListDepreciationByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error)

	// ListDepreciationByPeriod retrieves all records for a period.
	ListDepreciationByPeriod(ctx context.Context, period time.Time) ([]domain.DepreciationRecord, error)

	// ListUnpostedDepreciation retrieves calculated records not yet posted.
	ListUnpostedDepreciation(ctx context.Context) ([]domain.DepreciationRecord, error)
}

// DepreciationCalculatorSvc defines the periodic depreciation calculations
type DepreciationCalculatorSvc interface {
	// CalculateDepreciation runs depreciation for one asset and one period,
	// persisting the resulting record and updating the asset balances.
	CalculateDepreciation(ctx context.Context, req dto.CalculateDepreciationRequest, userID string) (*domain.DepreciationRecord, error)

	// RunMonthlyDepreciation depreciates every eligible asset for the period.
	// Failures on individual assets are collected, not fatal.
	RunMonthlyDepreciation(ctx context.Context, req dto.BatchDepreciationRequest, userID string) (*dto.BatchDepreciationResponse, error)
}

// DepreciationWriterSvc defines posting operations for depreciation records
type DepreciationWriterSvc interface {
	// PostDepreciation posts a calculated record to the general ledger.
	PostDepreciation(ctx context.Context, depreciationID string, userID string) (*domain.DepreciationRecord, error)
}

// DepreciationSvcFacade combines all depreciation-related service interfaces
type DepreciationSvcFacade interface {
	DepreciationReaderSvc
	DepreciationCalculatorSvc
	DepreciationWriterSvc
}
