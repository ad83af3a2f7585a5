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
	ErrAssetNotDeletable = errors.New("only assets without financial history can be deleted")
)

// allStatuses enumerates every lifecycle status for summary aggregation.
var allStatuses = []domain.AssetStatus{
	domain.StatusNew,
	domain.StatusConstructionInProgress,
	domain.StatusConstructionCompleted,
	domain.StatusActive,
	domain.StatusInConservation,
	domain.StatusFullyDepreciated,
	domain.StatusHeldForSale,
	domain.StatusDisposed,
	domain.StatusWrittenOff,
}

// assetService owns the asset register. Balance-bearing fields are never
// touched here; they only move through posted documents.
type assetService struct {
	assetRepo  portsrepo.AssetRepositoryWithTx
	accountSvc portssvc.AccountSvcFacade
}

// NewAssetService creates a new asset register service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryWithTx, accountSvc portssvc.AccountSvcFacade) portssvc.AssetSvcFacade {
	return &assetService{
		assetRepo:  assetRepo,
		accountSvc: accountSvc,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status := req.Status
	if status == "" {
		status = domain.StatusNew
	}

	if existing, err := s.assetRepo.FindAssetByNumber(ctx, req.AssetNumber); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: asset number %s", apperrors.ErrDuplicate, req.AssetNumber)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	glAccounts := domain.GLAccountRefs{
		AssetAccountID:                  req.AssetAccountID,
		DepreciationAccountID:           req.DepreciationAccountID,
		ExpenseAccountID:                req.ExpenseAccountID,
		HeldForSaleAccountID:            req.HeldForSaleAccountID,
		ConstructionInProgressAccountID: req.ConstructionInProgressAccountID,
		CapitalImprovementsAccountID:    req.CapitalImprovementsAccountID,
	}
	if err := s.accountSvc.ValidateAccountsActive(ctx, []string{
		glAccounts.AssetAccountID,
		glAccounts.DepreciationAccountID,
		glAccounts.ExpenseAccountID,
		glAccounts.HeldForSaleAccountID,
		glAccounts.ConstructionInProgressAccountID,
		glAccounts.CapitalImprovementsAccountID,
	}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	asset := domain.FixedAsset{
		AssetID:     uuid.NewString(),
		AssetNumber: req.AssetNumber,
		Description: req.Description,
		ClassID:     req.ClassID,
		Category:    req.Category,
		Location:    req.Location,
		Department:  req.Department,

		InitialCost:             decimal.Zero,
		CostAdjustment:          decimal.Zero,
		AccumulatedDepreciation: decimal.Zero,
		SalvageValue:            decimal.Zero,

		GLAccounts:      glAccounts,
		AcquisitionDate: req.AcquisitionDate,
		Status:          status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		logger.Error("Failed to save asset", slog.String("error", err.Error()), slog.String("asset_number", req.AssetNumber))
		return nil, err
	}

	logger.Info("Asset created", slog.String("asset_id", asset.AssetID), slog.String("asset_number", asset.AssetNumber))
	return &asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find asset by ID", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) GetAssetByNumber(ctx context.Context, assetNumber string) (*domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	asset, err := s.assetRepo.FindAssetByNumber(ctx, assetNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find asset by number", slog.String("error", err.Error()), slog.String("asset_number", assetNumber))
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, params dto.ListAssetsParams) (*dto.ListAssetsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	assets, nextToken, err := s.assetRepo.ListAssets(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list assets", slog.String("error", err.Error()), slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return &dto.ListAssetsResponse{
		Assets:    dto.ToAssetResponses(assets),
		NextToken: nextToken,
	}, nil
}

func (s *assetService) ListAssetsByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	assets, err := s.assetRepo.ListAssetsByStatus(ctx, status)
	if err != nil {
		logger.Error("Failed to list assets by status", slog.String("error", err.Error()), slog.String("status", string(status)))
		return nil, err
	}
	if assets == nil {
		return []domain.FixedAsset{}, nil
	}
	return assets, nil
}

// GetAssetSummary aggregates balances and counts across the whole register.
func (s *assetService) GetAssetSummary(ctx context.Context) (*dto.AssetSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary := dto.AssetSummaryResponse{
		TotalGrossCost:       decimal.Zero,
		TotalAccumulatedDepr: decimal.Zero,
		TotalNetBookValue:    decimal.Zero,
		CountByStatus:        make(map[domain.AssetStatus]int, len(allStatuses)),
	}

	for _, status := range allStatuses {
		assets, err := s.assetRepo.ListAssetsByStatus(ctx, status)
		if err != nil {
			logger.Error("Failed to aggregate assets for summary", slog.String("error", err.Error()), slog.String("status", string(status)))
			return nil, fmt.Errorf("failed to build asset summary: %w", err)
		}
		if len(assets) == 0 {
			continue
		}
		summary.CountByStatus[status] = len(assets)
		summary.TotalAssets += len(assets)
		for i := range assets {
			summary.TotalGrossCost = summary.TotalGrossCost.Add(assets[i].GrossCost())
			summary.TotalAccumulatedDepr = summary.TotalAccumulatedDepr.Add(assets[i].AccumulatedDepreciation)
			summary.TotalNetBookValue = summary.TotalNetBookValue.Add(assets[i].NetBookValue())
		}
	}

	return &summary, nil
}

// UpdateAsset updates descriptive fields only.
func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.Category != nil {
		asset.Category = *req.Category
	}
	if req.Location != nil {
		asset.Location = *req.Location
	}
	if req.Department != nil {
		asset.Department = *req.Department
	}
	asset.LastUpdatedAt = time.Now().UTC()
	asset.LastUpdatedBy = userID

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		logger.Error("Failed to update asset", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, err
	}

	logger.Info("Asset updated", slog.String("asset_id", assetID))
	return asset, nil
}

// ChangeStatus moves an asset through the lifecycle state machine. Posting
// workflows drive most transitions; this handles the administrative ones such
// as completing construction.
func (s *assetService) ChangeStatus(ctx context.Context, assetID string, target domain.AssetStatus, userID string) (*domain.FixedAsset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, assetID)
	if err != nil {
		return nil, err
	}

	if err := asset.Transition(target); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	if target == domain.StatusActive && asset.ActivationDate == nil {
		asset.ActivationDate = &now
	}
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to update asset status", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit status change: %w", err)
	}

	logger.Info("Asset status changed", slog.String("asset_id", assetID), slog.String("status", string(target)))
	return asset, nil
}

// DeleteAsset removes an asset that never entered service.
func (s *assetService) DeleteAsset(ctx context.Context, assetID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if asset.Status != domain.StatusNew {
		return fmt.Errorf("%w: %s is %s", ErrAssetNotDeletable, assetID, asset.Status)
	}

	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		logger.Error("Failed to delete asset", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return err
	}

	logger.Info("Asset deleted", slog.String("asset_id", assetID), slog.String("deleted_by", userID))
	return nil
}
