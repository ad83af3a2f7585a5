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
	ErrImprovementCostNotPositive = errors.New("improvement cost must be positive")
	ErrImprovementAcctMissing     = errors.New("capital improvements account is required to post an improvement")
)

// capitalImprovementService manages improvement documents. Posting capitalizes
// the cost onto the asset as a cost adjustment.
type capitalImprovementService struct {
	improvementRepo portsrepo.CapitalImprovementRepositoryFacade
	assetRepo       portsrepo.AssetRepositoryWithTx
	journalSvc      portssvc.JournalSvcFacade
}

// NewCapitalImprovementService creates a new improvement document service.
func NewCapitalImprovementService(improvementRepo portsrepo.CapitalImprovementRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx, journalSvc portssvc.JournalSvcFacade) portssvc.CapitalImprovementSvcFacade {
	return &capitalImprovementService{
		improvementRepo: improvementRepo,
		assetRepo:       assetRepo,
		journalSvc:      journalSvc,
	}
}

var _ portssvc.CapitalImprovementSvcFacade = (*capitalImprovementService)(nil)

func (s *capitalImprovementService) GetImprovementByID(ctx context.Context, improvementID string) (*domain.CapitalImprovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	improvement, err := s.improvementRepo.FindImprovementByID(ctx, improvementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find improvement", slog.String("error", err.Error()), slog.String("improvement_id", improvementID))
		}
		return nil, err
	}
	return improvement, nil
}

func (s *capitalImprovementService) ListImprovementsByAsset(ctx context.Context, assetID string) ([]domain.CapitalImprovement, error) {
	improvements, err := s.improvementRepo.ListImprovementsByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if improvements == nil {
		return []domain.CapitalImprovement{}, nil
	}
	return improvements, nil
}

func (s *capitalImprovementService) ListUnpostedImprovements(ctx context.Context) ([]domain.CapitalImprovement, error) {
	improvements, err := s.improvementRepo.ListUnpostedImprovements(ctx)
	if err != nil {
		return nil, err
	}
	if improvements == nil {
		return []domain.CapitalImprovement{}, nil
	}
	return improvements, nil
}

func (s *capitalImprovementService) CreateImprovement(ctx context.Context, req dto.CreateImprovementRequest, userID string) (*domain.CapitalImprovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: asset %s is %s, improvements require ACTIVE", apperrors.ErrValidation, asset.AssetID, asset.Status)
	}
	if req.ImprovementCost.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrImprovementCostNotPositive.Error())
	}
	if req.IncreasesSalvageValue.IsNegative() || req.ExtendsUsefulLifeMonths < 0 {
		return nil, fmt.Errorf("%w: improvement adjustments must be non-negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	improvement := domain.CapitalImprovement{
		ImprovementID:     uuid.NewString(),
		ImprovementNumber: req.ImprovementNumber,
		AssetID:           req.AssetID,
		ImprovementDate:   req.ImprovementDate,
		Description:       req.Description,

		ImprovementCost:         req.ImprovementCost,
		ExtendsUsefulLifeMonths: req.ExtendsUsefulLifeMonths,
		IncreasesSalvageValue:   req.IncreasesSalvageValue,

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.improvementRepo.SaveImprovement(ctx, improvement); err != nil {
		logger.Error("Failed to save improvement", slog.String("error", err.Error()), slog.String("improvement_number", req.ImprovementNumber))
		return nil, err
	}

	logger.Info("Improvement created", slog.String("improvement_id", improvement.ImprovementID), slog.String("asset_id", req.AssetID))
	return &improvement, nil
}

// PostImprovement capitalizes the cost onto the asset and writes the
// capitalization journal entry. Posting happens at most once.
func (s *capitalImprovementService) PostImprovement(ctx context.Context, improvementID string, userID string) (*domain.CapitalImprovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	improvement, err := s.improvementRepo.FindImprovementByID(ctx, improvementID)
	if err != nil {
		return nil, err
	}
	if improvement.IsPosted {
		return nil, fmt.Errorf("%w: improvement %s", ErrAlreadyPosted, improvementID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, improvement.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: asset %s is %s, improvements require ACTIVE", apperrors.ErrValidation, asset.AssetID, asset.Status)
	}
	if asset.GLAccounts.CapitalImprovementsAccountID == "" {
		return nil, fmt.Errorf("%w: asset %s", ErrImprovementAcctMissing, asset.AssetID)
	}

	now := time.Now().UTC()
	asset.CostAdjustment = asset.CostAdjustment.Add(improvement.ImprovementCost)
	asset.UsefulLifeMonths += improvement.ExtendsUsefulLifeMonths
	asset.SalvageValue = asset.SalvageValue.Add(improvement.IncreasesSalvageValue)
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	lines := []domain.JournalLine{
		{AccountID: asset.GLAccounts.AssetAccountID, Side: domain.Debit, Amount: improvement.ImprovementCost, Memo: "capitalized improvement"},
		{AccountID: asset.GLAccounts.CapitalImprovementsAccountID, Side: domain.Credit, Amount: improvement.ImprovementCost, Memo: "improvement settlement"},
	}
	journalEntryID, err := s.journalSvc.CreateJournalEntryInTx(ctx, tx, improvement.ImprovementDate, "Capital improvement "+improvement.ImprovementNumber, improvement.ImprovementNumber, lines, userID)
	if err != nil {
		return nil, err
	}

	if err := s.improvementRepo.MarkImprovementPostedInTx(ctx, tx, improvement.ImprovementID, journalEntryID, userID, now); err != nil {
		logger.Error("Failed to mark improvement posted", slog.String("error", err.Error()), slog.String("improvement_id", improvementID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to update asset from improvement", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit improvement posting: %w", err)
	}

	improvement.IsPosted = true
	improvement.PostedDate = &now
	improvement.PostedBy = userID
	improvement.JournalEntryID = journalEntryID

	logger.Info("Improvement posted", slog.String("improvement_id", improvementID), slog.String("journal_entry_id", journalEntryID))
	return improvement, nil
}
