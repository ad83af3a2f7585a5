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
	ErrImpairmentNotNegative  = errors.New("impairment adjustment must be negative")
	ErrRevaluationNotPositive = errors.New("revaluation adjustment must be positive")
	ErrImpairmentBelowSalvage = errors.New("impairment would drive net book value below salvage value")
	ErrRevaluationAcctMissing = errors.New("capital improvements account is required to post a revaluation")
)

// parameterChangeService manages reassessment documents. The old values are
// snapshotted at creation; posting applies the change according to its type.
type parameterChangeService struct {
	changeRepo portsrepo.ParameterChangeRepositoryFacade
	assetRepo  portsrepo.AssetRepositoryWithTx
	journalSvc portssvc.JournalSvcFacade
}

// NewParameterChangeService creates a new parameter change service.
func NewParameterChangeService(changeRepo portsrepo.ParameterChangeRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx, journalSvc portssvc.JournalSvcFacade) portssvc.ParameterChangeSvcFacade {
	return &parameterChangeService{
		changeRepo: changeRepo,
		assetRepo:  assetRepo,
		journalSvc: journalSvc,
	}
}

var _ portssvc.ParameterChangeSvcFacade = (*parameterChangeService)(nil)

func (s *parameterChangeService) GetParameterChangeByID(ctx context.Context, changeID string) (*domain.ParameterChange, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	change, err := s.changeRepo.FindParameterChangeByID(ctx, changeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find parameter change", slog.String("error", err.Error()), slog.String("change_id", changeID))
		}
		return nil, err
	}
	return change, nil
}

func (s *parameterChangeService) ListParameterChangesByAsset(ctx context.Context, assetID string) ([]domain.ParameterChange, error) {
	changes, err := s.changeRepo.ListParameterChangesByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if changes == nil {
		return []domain.ParameterChange{}, nil
	}
	return changes, nil
}

func (s *parameterChangeService) ListUnpostedParameterChanges(ctx context.Context) ([]domain.ParameterChange, error) {
	changes, err := s.changeRepo.ListUnpostedParameterChanges(ctx)
	if err != nil {
		return nil, err
	}
	if changes == nil {
		return []domain.ParameterChange{}, nil
	}
	return changes, nil
}

// CreateParameterChange snapshots the asset's current values and persists the
// reassessment document.
func (s *parameterChangeService) CreateParameterChange(ctx context.Context, req dto.CreateParameterChangeRequest, userID string) (*domain.ParameterChange, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusActive && asset.Status != domain.StatusFullyDepreciated {
		return nil, fmt.Errorf("%w: asset %s is %s, reassessment requires ACTIVE or FULLY_DEPRECIATED", apperrors.ErrValidation, asset.AssetID, asset.Status)
	}
	if err := validateChangeRequest(req, asset); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	change := domain.ParameterChange{
		ChangeID:     uuid.NewString(),
		ChangeNumber: req.ChangeNumber,
		AssetID:      req.AssetID,
		ChangeDate:   req.ChangeDate,
		ChangeType:   req.ChangeType,
		Reason:       req.Reason,

		OldGrossCost:               asset.GrossCost(),
		OldSalvageValue:            asset.SalvageValue,
		OldUsefulLifeMonths:        asset.UsefulLifeMonths,
		OldAccumulatedDepreciation: asset.AccumulatedDepreciation,

		AdjustmentAmount:    req.AdjustmentAmount,
		NewUsefulLifeMonths: req.NewUsefulLifeMonths,
		NewSalvageValue:     req.NewSalvageValue,

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.changeRepo.SaveParameterChange(ctx, change); err != nil {
		logger.Error("Failed to save parameter change", slog.String("error", err.Error()), slog.String("change_number", req.ChangeNumber))
		return nil, err
	}

	logger.Info("Parameter change created", slog.String("change_id", change.ChangeID), slog.String("change_type", string(change.ChangeType)))
	return &change, nil
}

// PostParameterChange applies the reassessment to the asset. Impairments and
// revaluations move balances and write a journal entry; life and salvage
// changes only update the schedule parameters.
func (s *parameterChangeService) PostParameterChange(ctx context.Context, changeID string, userID string) (*domain.ParameterChange, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	change, err := s.changeRepo.FindParameterChangeByID(ctx, changeID)
	if err != nil {
		return nil, err
	}
	if change.IsPosted {
		return nil, fmt.Errorf("%w: parameter change %s", ErrAlreadyPosted, changeID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, change.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusActive && asset.Status != domain.StatusFullyDepreciated {
		return nil, fmt.Errorf("%w: asset %s is %s, reassessment requires ACTIVE or FULLY_DEPRECIATED", apperrors.ErrValidation, asset.AssetID, asset.Status)
	}

	now := time.Now().UTC()
	var lines []domain.JournalLine

	switch change.ChangeType {
	case domain.Impairment:
		if !change.AdjustmentAmount.IsNegative() {
			return nil, fmt.Errorf("%w: change %s", ErrImpairmentNotNegative, changeID)
		}
		loss := change.AdjustmentAmount.Abs()
		newNBV := asset.NetBookValue().Sub(loss)
		if newNBV.LessThan(asset.SalvageValue) {
			return nil, fmt.Errorf("%w: change %s", ErrImpairmentBelowSalvage, changeID)
		}
		asset.CostAdjustment = asset.CostAdjustment.Add(change.AdjustmentAmount)
		lines = []domain.JournalLine{
			{AccountID: asset.GLAccounts.ExpenseAccountID, Side: domain.Debit, Amount: loss, Memo: "impairment loss"},
			{AccountID: asset.GLAccounts.AssetAccountID, Side: domain.Credit, Amount: loss, Memo: "asset impairment"},
		}

	case domain.Revaluation:
		if change.AdjustmentAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: change %s", ErrRevaluationNotPositive, changeID)
		}
		if asset.GLAccounts.CapitalImprovementsAccountID == "" {
			return nil, fmt.Errorf("%w: asset %s", ErrRevaluationAcctMissing, asset.AssetID)
		}
		asset.CostAdjustment = asset.CostAdjustment.Add(change.AdjustmentAmount)
		lines = []domain.JournalLine{
			{AccountID: asset.GLAccounts.AssetAccountID, Side: domain.Debit, Amount: change.AdjustmentAmount, Memo: "asset revaluation"},
			{AccountID: asset.GLAccounts.CapitalImprovementsAccountID, Side: domain.Credit, Amount: change.AdjustmentAmount, Memo: "revaluation surplus"},
		}

	case domain.UsefulLifeChange:
		if change.NewUsefulLifeMonths <= 0 {
			return nil, fmt.Errorf("%w: new useful life must be positive", apperrors.ErrValidation)
		}
		asset.UsefulLifeMonths = change.NewUsefulLifeMonths

	case domain.SalvageValueChange:
		if change.NewSalvageValue.IsNegative() || change.NewSalvageValue.GreaterThanOrEqual(asset.GrossCost()) {
			return nil, fmt.Errorf("%w: new salvage value must be non-negative and below gross cost", apperrors.ErrValidation)
		}
		asset.SalvageValue = change.NewSalvageValue

	default:
		return nil, fmt.Errorf("%w: unknown change type %q", apperrors.ErrValidation, change.ChangeType)
	}

	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	// Salvage raises and impairments can land NBV on the floor.
	if asset.IsFullyDepreciated() && asset.Status == domain.StatusActive {
		if err := asset.Transition(domain.StatusFullyDepreciated); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
		}
	}

	journalEntryID := ""
	if len(lines) > 0 {
		journalEntryID, err = s.journalSvc.CreateJournalEntryInTx(ctx, tx, change.ChangeDate, "Parameter change "+change.ChangeNumber, change.ChangeNumber, lines, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.changeRepo.MarkParameterChangePostedInTx(ctx, tx, change.ChangeID, journalEntryID, userID, now); err != nil {
		logger.Error("Failed to mark parameter change posted", slog.String("error", err.Error()), slog.String("change_id", changeID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to update asset from parameter change", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit parameter change posting: %w", err)
	}

	change.IsPosted = true
	change.PostedDate = &now
	change.PostedBy = userID
	change.JournalEntryID = journalEntryID

	logger.Info("Parameter change posted", slog.String("change_id", changeID), slog.String("change_type", string(change.ChangeType)))
	return change, nil
}

func validateChangeRequest(req dto.CreateParameterChangeRequest, asset *domain.FixedAsset) error {
	switch req.ChangeType {
	case domain.Impairment:
		if !req.AdjustmentAmount.IsNegative() {
			return ErrImpairmentNotNegative
		}
	case domain.Revaluation:
		if req.AdjustmentAmount.LessThanOrEqual(decimal.Zero) {
			return ErrRevaluationNotPositive
		}
	case domain.UsefulLifeChange:
		if req.NewUsefulLifeMonths <= 0 {
			return errors.New("new useful life must be positive")
		}
	case domain.SalvageValueChange:
		if req.NewSalvageValue.IsNegative() || req.NewSalvageValue.GreaterThanOrEqual(asset.GrossCost()) {
			return errors.New("new salvage value must be non-negative and below gross cost")
		}
	default:
		return fmt.Errorf("unknown change type %q", req.ChangeType)
	}
	return nil
}
