package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

var (
	ErrNotUnitsOfProduction  = errors.New("asset does not use the units-of-production method")
	ErrUsageAssetNotActive   = errors.New("asset must be ACTIVE to record usage")
	ErrDuplicateUsagePeriod  = errors.New("usage already recorded for this period")
	ErrUsageExceedsRemaining = errors.New("units used exceed the asset's remaining units")
	ErrUsageAlreadyProcessed = errors.New("usage record is already processed")
)

// monthlyUsageService tracks per-period unit consumption for assets on the
// units-of-production method.
type monthlyUsageService struct {
	usageRepo portsrepo.MonthlyUsageRepositoryFacade
	assetRepo portsrepo.AssetRepositoryWithTx
}

// NewMonthlyUsageService creates a new usage tracking service.
func NewMonthlyUsageService(usageRepo portsrepo.MonthlyUsageRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx) portssvc.MonthlyUsageSvcFacade {
	return &monthlyUsageService{
		usageRepo: usageRepo,
		assetRepo: assetRepo,
	}
}

var _ portssvc.MonthlyUsageSvcFacade = (*monthlyUsageService)(nil)

func (s *monthlyUsageService) GetUsageByID(ctx context.Context, usageID string) (*domain.MonthlyUsage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	usage, err := s.usageRepo.FindUsageByID(ctx, usageID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find usage record", slog.String("error", err.Error()), slog.String("usage_id", usageID))
		}
		return nil, err
	}
	return usage, nil
}

func (s *monthlyUsageService) ListUsageByAsset(ctx context.Context, assetID string) ([]domain.MonthlyUsage, error) {
	usage, err := s.usageRepo.ListUsageByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return []domain.MonthlyUsage{}, nil
	}
	return usage, nil
}

func (s *monthlyUsageService) ListUnprocessedUsage(ctx context.Context) ([]domain.MonthlyUsage, error) {
	usage, err := s.usageRepo.ListUnprocessedUsage(ctx)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return []domain.MonthlyUsage{}, nil
	}
	return usage, nil
}

// RecordUsage persists one period's unit consumption. Usage is unique per
// (asset, period).
func (s *monthlyUsageService) RecordUsage(ctx context.Context, req dto.RecordUsageRequest, userID string) (*domain.MonthlyUsage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	period := domain.NormalizePeriod(req.Period)

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: asset %s is %s", ErrUsageAssetNotActive, asset.AssetID, asset.Status)
	}
	if asset.DepreciationMethod != domain.UnitsOfProduction {
		return nil, fmt.Errorf("%w: asset %s", ErrNotUnitsOfProduction, asset.AssetID)
	}
	if req.UnitsUsed > asset.RemainingUnits {
		return nil, fmt.Errorf("%w: %d used, %d remaining", ErrUsageExceedsRemaining, req.UnitsUsed, asset.RemainingUnits)
	}

	if existing, err := s.usageRepo.FindUsageByAssetAndPeriod(ctx, req.AssetID, period); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: asset %s period %s", ErrDuplicateUsagePeriod, req.AssetID, period.Format("2006-01"))
	}

	now := time.Now().UTC()
	usage := domain.MonthlyUsage{
		UsageID:   uuid.NewString(),
		AssetID:   req.AssetID,
		Period:    period,
		UsageDate: req.UsageDate,
		UnitsUsed: req.UnitsUsed,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.usageRepo.SaveUsage(ctx, usage); err != nil {
		logger.Error("Failed to save usage record", slog.String("error", err.Error()), slog.String("asset_id", req.AssetID))
		return nil, err
	}

	logger.Info("Usage recorded", slog.String("usage_id", usage.UsageID), slog.String("asset_id", req.AssetID), slog.Int("units", req.UnitsUsed))
	return &usage, nil
}

// ProcessUsage deducts the recorded units from the asset's remaining units.
// A record is processed exactly once; depreciation requires the processed
// record and never consumes units itself.
func (s *monthlyUsageService) ProcessUsage(ctx context.Context, usageID string, userID string) (*domain.MonthlyUsage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	usage, err := s.usageRepo.FindUsageByID(ctx, usageID)
	if err != nil {
		return nil, err
	}
	if usage.IsProcessed {
		return nil, fmt.Errorf("%w: usage %s", ErrUsageAlreadyProcessed, usageID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, usage.AssetID)
	if err != nil {
		return nil, err
	}
	if usage.UnitsUsed > asset.RemainingUnits {
		return nil, fmt.Errorf("%w: %d used, %d remaining", ErrUsageExceedsRemaining, usage.UnitsUsed, asset.RemainingUnits)
	}

	now := time.Now().UTC()
	asset.RemainingUnits -= usage.UnitsUsed
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to update asset remaining units", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit usage processing: %w", err)
	}

	usage.IsProcessed = true
	usage.ProcessedDate = &now
	usage.LastUpdatedAt = now
	usage.LastUpdatedBy = userID
	if err := s.usageRepo.UpdateUsage(ctx, *usage); err != nil {
		logger.Error("Failed to mark usage processed", slog.String("error", err.Error()), slog.String("usage_id", usageID))
		return nil, err
	}

	logger.Info("Usage processed", slog.String("usage_id", usageID), slog.String("asset_id", usage.AssetID))
	return usage, nil
}
