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
	ErrSalePriceNegative  = errors.New("sale price must not be negative")
	ErrSaleRequiresHFS    = errors.New("sale requires the asset to be held for sale")
	ErrPreparationInvalid = errors.New("linked preparation is not posted for this asset")
)

// saleService manages actual sale documents for held-for-sale assets.
// Posting disposes of the asset and fully depreciates it.
type saleService struct {
	saleRepo        portsrepo.SaleRepositoryFacade
	preparationRepo portsrepo.SalePreparationRepositoryFacade
	assetRepo       portsrepo.AssetRepositoryWithTx
	journalSvc      portssvc.JournalSvcFacade
}

// NewSaleService creates a new sale document service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, preparationRepo portsrepo.SalePreparationRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx, journalSvc portssvc.JournalSvcFacade) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:        saleRepo,
		preparationRepo: preparationRepo,
		assetRepo:       assetRepo,
		journalSvc:      journalSvc,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find sale", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		}
		return nil, err
	}
	return sale, nil
}

func (s *saleService) ListSalesByAsset(ctx context.Context, assetID string) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSalesByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

func (s *saleService) ListUnpostedSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListUnpostedSales(ctx)
	if err != nil {
		return nil, err
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

// CreateSale snapshots the asset's balances and persists the sale document.
// When a preparation is given the sale is linked back to it.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.SalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrSalePriceNegative, req.SalePrice.String())
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusHeldForSale {
		return nil, fmt.Errorf("%w: asset %s is %s", ErrSaleRequiresHFS, asset.AssetID, asset.Status)
	}

	if req.PreparationID != "" {
		preparation, err := s.preparationRepo.FindSalePreparationByID(ctx, req.PreparationID)
		if err != nil {
			return nil, err
		}
		if !preparation.IsPosted || preparation.AssetID != req.AssetID {
			return nil, fmt.Errorf("%w: preparation %s", ErrPreparationInvalid, req.PreparationID)
		}
		if preparation.SaleID != "" {
			return nil, fmt.Errorf("%w: preparation %s (sale %s)", ErrPreparationSold, req.PreparationID, preparation.SaleID)
		}
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		SaleNumber:    req.SaleNumber,
		AssetID:       req.AssetID,
		PreparationID: req.PreparationID,
		SaleDate:      req.SaleDate,
		BuyerName:     req.BuyerName,

		SalePrice:                     req.SalePrice,
		GrossCostAtSale:               asset.GrossCost(),
		AccumulatedDepreciationAtSale: asset.AccumulatedDepreciation,
		NetBookValueAtSale:            asset.NetBookValue(),

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		logger.Error("Failed to save sale", slog.String("error", err.Error()), slog.String("sale_number", req.SaleNumber))
		return nil, err
	}

	if req.PreparationID != "" {
		if err := s.preparationRepo.LinkActualSale(ctx, req.PreparationID, sale.SaleID, userID, now); err != nil {
			logger.Error("Failed to link sale to preparation", slog.String("error", err.Error()), slog.String("preparation_id", req.PreparationID))
			return nil, err
		}
	}

	logger.Info("Sale created", slog.String("sale_id", sale.SaleID), slog.String("asset_id", req.AssetID))
	return &sale, nil
}

// PostSale disposes of the asset. The asset record is fully depreciated on
// disposal; the journal clears the held-for-sale balance.
func (s *saleService) PostSale(ctx context.Context, saleID string, userID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.IsPosted {
		return nil, fmt.Errorf("%w: sale %s", ErrAlreadyPosted, saleID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, sale.AssetID)
	if err != nil {
		return nil, err
	}
	if err := asset.Transition(domain.StatusDisposed); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	disposalDate := sale.SaleDate
	asset.AccumulatedDepreciation = asset.GrossCost()
	asset.DisposalDate = &disposalDate
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	// The preparation already cleared cost and accumulated depreciation; this
	// entry writes the remaining NBV out of held-for-sale.
	journalEntryID := ""
	if sale.NetBookValueAtSale.GreaterThan(decimal.Zero) {
		lines := []domain.JournalLine{
			{AccountID: asset.GLAccounts.DepreciationAccountID, Side: domain.Debit, Amount: sale.NetBookValueAtSale, Memo: "disposal depreciation"},
			{AccountID: asset.GLAccounts.HeldForSaleAccountID, Side: domain.Credit, Amount: sale.NetBookValueAtSale, Memo: "held-for-sale cleared"},
		}
		journalEntryID, err = s.journalSvc.CreateJournalEntryInTx(ctx, tx, sale.SaleDate, "Asset sale "+sale.SaleNumber, sale.SaleNumber, lines, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.MarkSalePostedInTx(ctx, tx, sale.SaleID, journalEntryID, userID, now); err != nil {
		logger.Error("Failed to mark sale posted", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to dispose asset", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit sale posting: %w", err)
	}

	sale.IsPosted = true
	sale.PostedDate = &now
	sale.PostedBy = userID
	sale.JournalEntryID = journalEntryID

	logger.Info("Sale posted",
		slog.String("sale_id", saleID),
		slog.String("asset_id", asset.AssetID),
		slog.String("gain_loss", sale.GainLoss().String()),
	)
	return sale, nil
}
