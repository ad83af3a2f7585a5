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
	ErrConservationExists       = errors.New("asset already has an active conservation")
	ErrConservationNotPosted    = errors.New("conservation must be posted before cancellation")
	ErrConservationCancelled    = errors.New("conservation is already cancelled")
	ErrConservationDateTooEarly = errors.New("cancellation date cannot precede the conservation date")
)

// conservationService manages conservation documents. Posting suspends
// depreciation by moving the asset to IN_CONSERVATION; cancellation returns it
// to ACTIVE. Depreciation tracking dates are left untouched in both directions.
type conservationService struct {
	conservationRepo portsrepo.ConservationRepositoryFacade
	assetRepo        portsrepo.AssetRepositoryWithTx
}

// NewConservationService creates a new conservation document service.
func NewConservationService(conservationRepo portsrepo.ConservationRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx) portssvc.ConservationSvcFacade {
	return &conservationService{
		conservationRepo: conservationRepo,
		assetRepo:        assetRepo,
	}
}

var _ portssvc.ConservationSvcFacade = (*conservationService)(nil)

func (s *conservationService) GetConservationByID(ctx context.Context, conservationID string) (*domain.Conservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	conservation, err := s.conservationRepo.FindConservationByID(ctx, conservationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find conservation", slog.String("error", err.Error()), slog.String("conservation_id", conservationID))
		}
		return nil, err
	}
	return conservation, nil
}

func (s *conservationService) ListConservationsByAsset(ctx context.Context, assetID string) ([]domain.Conservation, error) {
	conservations, err := s.conservationRepo.ListConservationsByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if conservations == nil {
		return []domain.Conservation{}, nil
	}
	return conservations, nil
}

func (s *conservationService) ListActiveConservations(ctx context.Context) ([]domain.Conservation, error) {
	conservations, err := s.conservationRepo.ListActiveConservations(ctx)
	if err != nil {
		return nil, err
	}
	if conservations == nil {
		return []domain.Conservation{}, nil
	}
	return conservations, nil
}

func (s *conservationService) ListUnpostedConservations(ctx context.Context) ([]domain.Conservation, error) {
	conservations, err := s.conservationRepo.ListUnpostedConservations(ctx)
	if err != nil {
		return nil, err
	}
	if conservations == nil {
		return []domain.Conservation{}, nil
	}
	return conservations, nil
}

// StartConservation creates a conservation document with a snapshot of the
// asset's balances at suspension time.
func (s *conservationService) StartConservation(ctx context.Context, req dto.StartConservationRequest, userID string) (*domain.Conservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: asset %s is %s, conservation requires ACTIVE", apperrors.ErrValidation, asset.AssetID, asset.Status)
	}

	if existing, err := s.conservationRepo.FindActiveConservationByAsset(ctx, req.AssetID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: asset %s (conservation %s)", ErrConservationExists, req.AssetID, existing.ConservationNumber)
	}

	now := time.Now().UTC()
	conservation := domain.Conservation{
		ConservationID:     uuid.NewString(),
		ConservationNumber: req.ConservationNumber,
		AssetID:            req.AssetID,
		ConservationDate:   req.ConservationDate,
		Reason:             req.Reason,
		Responsible:        req.Responsible,
		PlannedEndDate:     req.PlannedEndDate,

		GrossCostAtConservation:               asset.GrossCost(),
		SalvageValueAtConservation:            asset.SalvageValue,
		AccumulatedDepreciationAtConservation: asset.AccumulatedDepreciation,
		NetBookValueAtConservation:            asset.NetBookValue(),
		UsefulLifeMonthsAtConservation:        asset.UsefulLifeMonths,
		DepreciationMethodAtConservation:      asset.DepreciationMethod,

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.conservationRepo.SaveConservation(ctx, conservation); err != nil {
		logger.Error("Failed to save conservation", slog.String("error", err.Error()), slog.String("conservation_number", req.ConservationNumber))
		return nil, err
	}

	logger.Info("Conservation created", slog.String("conservation_id", conservation.ConservationID), slog.String("asset_id", req.AssetID))
	return &conservation, nil
}

// PostConservation suspends the asset. Conservation moves no balances, so no
// journal entry is produced; the posting only records the status change.
func (s *conservationService) PostConservation(ctx context.Context, conservationID string, userID string) (*domain.Conservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	conservation, err := s.conservationRepo.FindConservationByID(ctx, conservationID)
	if err != nil {
		return nil, err
	}
	if conservation.IsPosted {
		return nil, fmt.Errorf("%w: conservation %s", ErrAlreadyPosted, conservationID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, conservation.AssetID)
	if err != nil {
		return nil, err
	}
	if err := asset.Transition(domain.StatusInConservation); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	if err := s.conservationRepo.MarkConservationPostedInTx(ctx, tx, conservation.ConservationID, "", userID, now); err != nil {
		logger.Error("Failed to mark conservation posted", slog.String("error", err.Error()), slog.String("conservation_id", conservationID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to suspend asset", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit conservation posting: %w", err)
	}

	conservation.IsPosted = true
	conservation.PostedDate = &now
	conservation.PostedBy = userID

	logger.Info("Conservation posted", slog.String("conservation_id", conservationID), slog.String("asset_id", asset.AssetID))
	return conservation, nil
}

// CancelConservation returns the asset to active service. The cancellation
// number is derived from the original. The asset's depreciation tracking
// dates are deliberately not adjusted.
func (s *conservationService) CancelConservation(ctx context.Context, conservationID string, req dto.CancelConservationRequest, userID string) (*domain.Conservation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	conservation, err := s.conservationRepo.FindConservationByID(ctx, conservationID)
	if err != nil {
		return nil, err
	}
	if !conservation.IsPosted {
		return nil, fmt.Errorf("%w: conservation %s", ErrConservationNotPosted, conservationID)
	}
	if conservation.IsCancelled {
		return nil, fmt.Errorf("%w: conservation %s", ErrConservationCancelled, conservationID)
	}
	if req.CancellationDate.Before(conservation.ConservationDate) {
		return nil, fmt.Errorf("%w: conservation %s", ErrConservationDateTooEarly, conservationID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, conservation.AssetID)
	if err != nil {
		return nil, err
	}
	if err := asset.Transition(domain.StatusActive); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	cancellationDate := req.CancellationDate
	conservation.IsCancelled = true
	conservation.CancellationDate = &cancellationDate
	conservation.CancellationNumber = "CANCEL-" + conservation.ConservationNumber
	conservation.CancellationReason = req.Reason
	conservation.LastUpdatedAt = now
	conservation.LastUpdatedBy = userID

	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	if err := s.conservationRepo.MarkConservationCancelledInTx(ctx, tx, *conservation); err != nil {
		logger.Error("Failed to mark conservation cancelled", slog.String("error", err.Error()), slog.String("conservation_id", conservationID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to reactivate asset", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit conservation cancellation: %w", err)
	}

	logger.Info("Conservation cancelled", slog.String("conservation_id", conservationID), slog.String("cancellation_number", conservation.CancellationNumber))
	return conservation, nil
}
