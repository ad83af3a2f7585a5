package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/dto"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

var (
	ErrHeldForSaleAcctMissing = errors.New("held-for-sale account is required to post a sale preparation")
	ErrPreparationSold        = errors.New("sale preparation already has a linked sale")
	ErrPreparationNotPosted   = errors.New("sale preparation must be posted before cancellation")
)

// salePreparationService manages held-for-sale reclassification documents.
type salePreparationService struct {
	preparationRepo portsrepo.SalePreparationRepositoryFacade
	assetRepo       portsrepo.AssetRepositoryWithTx
	journalSvc      portssvc.JournalSvcFacade
}

// NewSalePreparationService creates a new sale preparation service.
func NewSalePreparationService(preparationRepo portsrepo.SalePreparationRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx, journalSvc portssvc.JournalSvcFacade) portssvc.SalePreparationSvcFacade {
	return &salePreparationService{
		preparationRepo: preparationRepo,
		assetRepo:       assetRepo,
		journalSvc:      journalSvc,
	}
}

var _ portssvc.SalePreparationSvcFacade = (*salePreparationService)(nil)

func (s *salePreparationService) GetSalePreparationByID(ctx context.Context, preparationID string) (*domain.SalePreparation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	preparation, err := s.preparationRepo.FindSalePreparationByID(ctx, preparationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find sale preparation", slog.String("error", err.Error()), slog.String("preparation_id", preparationID))
		}
		return nil, err
	}
	return preparation, nil
}

func (s *salePreparationService) ListSalePreparationsByAsset(ctx context.Context, assetID string) ([]domain.SalePreparation, error) {
	preparations, err := s.preparationRepo.ListSalePreparationsByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if preparations == nil {
		return []domain.SalePreparation{}, nil
	}
	return preparations, nil
}

func (s *salePreparationService) ListPendingSales(ctx context.Context) ([]domain.SalePreparation, error) {
	preparations, err := s.preparationRepo.ListPendingSales(ctx)
	if err != nil {
		return nil, err
	}
	if preparations == nil {
		return []domain.SalePreparation{}, nil
	}
	return preparations, nil
}

// CreateSalePreparation snapshots the asset's NBV and persists the document.
func (s *salePreparationService) CreateSalePreparation(ctx context.Context, req dto.CreateSalePreparationRequest, userID string) (*domain.SalePreparation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusActive && asset.Status != domain.StatusFullyDepreciated {
		return nil, fmt.Errorf("%w: asset %s is %s, sale preparation requires ACTIVE or FULLY_DEPRECIATED", apperrors.ErrValidation, asset.AssetID, asset.Status)
	}

	now := time.Now().UTC()
	preparation := domain.SalePreparation{
		PreparationID:     uuid.NewString(),
		PreparationNumber: req.PreparationNumber,
		AssetID:           req.AssetID,
		PreparationDate:   req.PreparationDate,
		Reason:            req.Reason,

		NetBookValueAtReclassification: asset.NetBookValue(),

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.preparationRepo.SaveSalePreparation(ctx, preparation); err != nil {
		logger.Error("Failed to save sale preparation", slog.String("error", err.Error()), slog.String("preparation_number", req.PreparationNumber))
		return nil, err
	}

	logger.Info("Sale preparation created", slog.String("preparation_id", preparation.PreparationID), slog.String("asset_id", req.AssetID))
	return &preparation, nil
}

// PostSalePreparation reclassifies the asset: cost and accumulated
// depreciation come off their accounts and the NBV moves to held-for-sale.
func (s *salePreparationService) PostSalePreparation(ctx context.Context, preparationID string, userID string) (*domain.SalePreparation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	preparation, err := s.preparationRepo.FindSalePreparationByID(ctx, preparationID)
	if err != nil {
		return nil, err
	}
	if preparation.IsPosted {
		return nil, fmt.Errorf("%w: sale preparation %s", ErrAlreadyPosted, preparationID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, preparation.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.GLAccounts.HeldForSaleAccountID == "" {
		return nil, fmt.Errorf("%w: asset %s", ErrHeldForSaleAcctMissing, asset.AssetID)
	}
	if err := asset.Transition(domain.StatusHeldForSale); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	// Dr held-for-sale (NBV), Dr accumulated depreciation, Cr asset at cost.
	// Zero-amount legs are dropped to keep every line positive.
	lines := make([]domain.JournalLine, 0, 3)
	if asset.NetBookValue().GreaterThan(decimal.Zero) {
		lines = append(lines, domain.JournalLine{AccountID: asset.GLAccounts.HeldForSaleAccountID, Side: domain.Debit, Amount: asset.NetBookValue(), Memo: "asset held for sale"})
	}
	if asset.AccumulatedDepreciation.GreaterThan(decimal.Zero) {
		lines = append(lines, domain.JournalLine{AccountID: asset.GLAccounts.DepreciationAccountID, Side: domain.Debit, Amount: asset.AccumulatedDepreciation, Memo: "accumulated depreciation cleared"})
	}
	if asset.GrossCost().GreaterThan(decimal.Zero) {
		lines = append(lines, domain.JournalLine{AccountID: asset.GLAccounts.AssetAccountID, Side: domain.Credit, Amount: asset.GrossCost(), Memo: "asset at cost cleared"})
	}

	journalEntryID := ""
	if len(lines) >= 2 {
		journalEntryID, err = s.journalSvc.CreateJournalEntryInTx(ctx, tx, preparation.PreparationDate, "Sale preparation "+preparation.PreparationNumber, preparation.PreparationNumber, lines, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.preparationRepo.MarkSalePreparationPostedInTx(ctx, tx, preparation.PreparationID, journalEntryID, userID, now); err != nil {
		logger.Error("Failed to mark sale preparation posted", slog.String("error", err.Error()), slog.String("preparation_id", preparationID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to reclassify asset", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit sale preparation posting: %w", err)
	}

	preparation.IsPosted = true
	preparation.PostedDate = &now
	preparation.PostedBy = userID
	preparation.JournalEntryID = journalEntryID

	logger.Info("Sale preparation posted", slog.String("preparation_id", preparationID), slog.String("asset_id", asset.AssetID))
	return preparation, nil
}

// CancelSalePreparation reverts an unsold preparation and reactivates the
// asset.
func (s *salePreparationService) CancelSalePreparation(ctx context.Context, preparationID string, userID string) (*domain.SalePreparation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	preparation, err := s.preparationRepo.FindSalePreparationByID(ctx, preparationID)
	if err != nil {
		return nil, err
	}
	if !preparation.IsPosted {
		return nil, fmt.Errorf("%w: sale preparation %s", ErrPreparationNotPosted, preparationID)
	}
	if preparation.SaleID != "" {
		return nil, fmt.Errorf("%w: sale preparation %s (sale %s)", ErrPreparationSold, preparationID, preparation.SaleID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, preparation.AssetID)
	if err != nil {
		return nil, err
	}
	if err := asset.Transition(domain.StatusActive); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	if err := s.preparationRepo.MarkSalePreparationCancelledInTx(ctx, tx, preparation.PreparationID, userID, now); err != nil {
		logger.Error("Failed to mark sale preparation cancelled", slog.String("error", err.Error()), slog.String("preparation_id", preparationID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to reactivate asset", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit sale preparation cancellation: %w", err)
	}

	logger.Info("Sale preparation cancelled", slog.String("preparation_id", preparationID), slog.String("asset_id", asset.AssetID))
	return preparation, nil
}
