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
	"github.com/opsledger/fixed_asset_app/internal/utils/accounting"
)

var (
	ErrAssetNotDepreciable   = errors.New("asset is not in a depreciable status")
	ErrDepreciationNotSetUp  = errors.New("asset has no depreciation start date")
	ErrPeriodBeforeStart     = errors.New("period is before the depreciation start date")
	ErrPeriodNotAfterLast    = errors.New("period must be after the last depreciated period")
	ErrAssetFullyDepreciated = errors.New("asset is already fully depreciated")
	ErrDuplicatePeriod       = errors.New("depreciation already exists for this period")
	ErrUsageNotRecorded      = errors.New("no usage recorded for this period")
	ErrUsageNotProcessed     = errors.New("usage for this period has not been processed")
)

// depreciationService implements the periodic depreciation engine. Each
// calculation runs in its own transaction with the asset row locked, so the
// (asset, period) uniqueness check and the balance update are atomic.
type depreciationService struct {
	depreciationRepo portsrepo.DepreciationRepositoryFacade
	assetRepo        portsrepo.AssetRepositoryWithTx
	usageRepo        portsrepo.MonthlyUsageRepositoryFacade
	journalSvc       portssvc.JournalSvcFacade
}

// NewDepreciationService creates a new depreciation engine.
func NewDepreciationService(depreciationRepo portsrepo.DepreciationRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx, usageRepo portsrepo.MonthlyUsageRepositoryFacade, journalSvc portssvc.JournalSvcFacade) portssvc.DepreciationSvcFacade {
	return &depreciationService{
		depreciationRepo: depreciationRepo,
		assetRepo:        assetRepo,
		usageRepo:        usageRepo,
		journalSvc:       journalSvc,
	}
}

var _ portssvc.DepreciationSvcFacade = (*depreciationService)(nil)

func (s *depreciationService) GetDepreciationByID(ctx context.Context, depreciationID string) (*domain.DepreciationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	record, err := s.depreciationRepo.FindDepreciationByID(ctx, depreciationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find depreciation record", slog.String("error", err.Error()), slog.String("depreciation_id", depreciationID))
		}
		return nil, err
	}
	return record, nil
}

func (s *depreciationService) ListDepreciationByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error) {
	records, err := s.depreciationRepo.ListDepreciationByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []domain.DepreciationRecord{}, nil
	}
	return records, nil
}

func (s *depreciationService) ListDepreciationByPeriod(ctx context.Context, period time.Time) ([]domain.DepreciationRecord, error) {
	records, err := s.depreciationRepo.ListDepreciationByPeriod(ctx, domain.NormalizePeriod(period))
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []domain.DepreciationRecord{}, nil
	}
	return records, nil
}

func (s *depreciationService) ListUnpostedDepreciation(ctx context.Context) ([]domain.DepreciationRecord, error) {
	records, err := s.depreciationRepo.ListUnpostedDepreciation(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []domain.DepreciationRecord{}, nil
	}
	return records, nil
}

// CalculateDepreciation depreciates one asset for one period. The record and
// the asset balance update commit together; a failure leaves both untouched.
func (s *depreciationService) CalculateDepreciation(ctx context.Context, req dto.CalculateDepreciationRequest, userID string) (*domain.DepreciationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	period := domain.NormalizePeriod(req.Period)

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, req.AssetID)
	if err != nil {
		return nil, err
	}

	if err := checkDepreciationEligibility(asset, period); err != nil {
		return nil, err
	}

	if existing, err := s.depreciationRepo.FindDepreciationByAssetAndPeriod(ctx, asset.AssetID, period); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: asset %s period %s", ErrDuplicatePeriod, asset.AssetID, period.Format("2006-01"))
	}

	amount, err := s.periodAmount(ctx, asset, period)
	if err != nil {
		return nil, err
	}
	amount = accounting.ClampToSalvageFloor(amount, asset.NetBookValue(), asset.SalvageValue)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: asset %s", ErrAssetFullyDepreciated, asset.AssetID)
	}

	now := time.Now().UTC()
	record := domain.DepreciationRecord{
		DepreciationID:     uuid.NewString(),
		DepreciationNumber: fmt.Sprintf("DEP-%s-%s", asset.AssetNumber, period.Format("200601")),
		AssetID:            asset.AssetID,
		Period:             period,
		DepreciationDate:   now,
		Description:        fmt.Sprintf("Depreciation %s for asset %s", period.Format("2006-01"), asset.AssetNumber),

		OpeningGrossCost:               asset.GrossCost(),
		OpeningAccumulatedDepreciation: asset.AccumulatedDepreciation,
		OpeningNetBookValue:            asset.NetBookValue(),
		DepreciationAmount:             amount,

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	asset.AccumulatedDepreciation = asset.AccumulatedDepreciation.Add(amount)
	record.ClosingAccumulatedDepreciation = asset.AccumulatedDepreciation
	record.ClosingNetBookValue = asset.NetBookValue()

	lastDate := period
	nextDate := domain.EndOfNextMonth(period)
	asset.LastDepreciationDate = &lastDate
	asset.NextDepreciationDate = &nextDate
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	// Closing NBV at the salvage floor retires the asset from the schedule.
	if asset.IsFullyDepreciated() && asset.Status == domain.StatusActive {
		if err := asset.Transition(domain.StatusFullyDepreciated); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
		}
	}

	if err := s.depreciationRepo.SaveDepreciationInTx(ctx, tx, record); err != nil {
		logger.Error("Failed to save depreciation record", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to update asset balances", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit depreciation: %w", err)
	}

	logger.Info("Depreciation calculated",
		slog.String("asset_id", asset.AssetID),
		slog.String("period", period.Format("2006-01")),
		slog.String("amount", amount.String()),
	)
	return &record, nil
}

// RunMonthlyDepreciation depreciates every eligible asset for the period.
// Each asset runs in its own transaction; one asset's failure never rolls
// back another's record.
func (s *depreciationService) RunMonthlyDepreciation(ctx context.Context, req dto.BatchDepreciationRequest, userID string) (*dto.BatchDepreciationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	period := domain.NormalizePeriod(req.Period)

	assets, err := s.assetRepo.FindAssetsNeedingDepreciation(ctx, period)
	if err != nil {
		logger.Error("Failed to find assets needing depreciation", slog.String("error", err.Error()), slog.String("period", period.Format("2006-01")))
		return nil, fmt.Errorf("failed to select assets for batch run: %w", err)
	}

	result := dto.BatchDepreciationResponse{
		Period:      period,
		ProcessedAt: time.Now().UTC(),
		TotalAmount: decimal.Zero,
	}

	for i := range assets {
		record, err := s.CalculateDepreciation(ctx, dto.CalculateDepreciationRequest{
			AssetID: assets[i].AssetID,
			Period:  period,
		}, userID)
		if err != nil {
			result.FailureCount++
			result.Failures = append(result.Failures, dto.BatchFailure{
				AssetID:     assets[i].AssetID,
				AssetNumber: assets[i].AssetNumber,
				Reason:      err.Error(),
			})
			logger.Warn("Batch depreciation skipped asset",
				slog.String("asset_id", assets[i].AssetID),
				slog.String("reason", err.Error()),
			)
			continue
		}
		result.SuccessCount++
		result.TotalAmount = result.TotalAmount.Add(record.DepreciationAmount)
		result.Depreciations = append(result.Depreciations, dto.ToDepreciationResponse(record))
	}

	logger.Info("Batch depreciation completed",
		slog.String("period", period.Format("2006-01")),
		slog.Int("succeeded", result.SuccessCount),
		slog.Int("failed", result.FailureCount),
	)
	return &result, nil
}

// PostDepreciation writes the expense journal entry for a calculated record
// and flips its posting flag. Posting happens at most once.
func (s *depreciationService) PostDepreciation(ctx context.Context, depreciationID string, userID string) (*domain.DepreciationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.depreciationRepo.FindDepreciationByID(ctx, depreciationID)
	if err != nil {
		return nil, err
	}
	if record.IsPosted {
		return nil, fmt.Errorf("%w: depreciation %s", ErrAlreadyPosted, depreciationID)
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, record.AssetID)
	if err != nil {
		return nil, err
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	now := time.Now().UTC()
	lines := []domain.JournalLine{
		{AccountID: asset.GLAccounts.ExpenseAccountID, Side: domain.Debit, Amount: record.DepreciationAmount, Memo: "depreciation expense"},
		{AccountID: asset.GLAccounts.DepreciationAccountID, Side: domain.Credit, Amount: record.DepreciationAmount, Memo: "accumulated depreciation"},
	}
	journalEntryID, err := s.journalSvc.CreateJournalEntryInTx(ctx, tx, record.DepreciationDate, "Depreciation "+record.DepreciationNumber, record.DepreciationNumber, lines, userID)
	if err != nil {
		return nil, err
	}

	if err := s.depreciationRepo.MarkDepreciationPostedInTx(ctx, tx, record.DepreciationID, journalEntryID, userID, now); err != nil {
		logger.Error("Failed to mark depreciation posted", slog.String("error", err.Error()), slog.String("depreciation_id", depreciationID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit depreciation posting: %w", err)
	}

	record.IsPosted = true
	record.PostedDate = &now
	record.PostedBy = userID
	record.JournalEntryID = journalEntryID

	logger.Info("Depreciation posted", slog.String("depreciation_id", depreciationID), slog.String("journal_entry_id", journalEntryID))
	return record, nil
}

// periodAmount computes the raw depreciation amount for the asset's method.
// Units-of-production requires the period's usage record to already be
// processed; unit consumption happens in ProcessUsage, never here.
func (s *depreciationService) periodAmount(ctx context.Context, asset *domain.FixedAsset, period time.Time) (decimal.Decimal, error) {
	switch asset.DepreciationMethod {
	case domain.StraightLine:
		amount, err := accounting.StraightLineMonthly(asset.GrossCost(), asset.SalvageValue, asset.UsefulLifeMonths)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		return amount, nil

	case domain.UnitsOfProduction:
		usage, err := s.usageRepo.FindUsageByAssetAndPeriod(ctx, asset.AssetID, period)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return decimal.Zero, fmt.Errorf("%w: asset %s period %s", ErrUsageNotRecorded, asset.AssetID, period.Format("2006-01"))
			}
			return decimal.Zero, err
		}
		if !usage.IsProcessed {
			return decimal.Zero, fmt.Errorf("%w: asset %s period %s", ErrUsageNotProcessed, asset.AssetID, period.Format("2006-01"))
		}
		amount, err := accounting.UnitsOfProductionAmount(asset.GrossCost(), asset.SalvageValue, asset.TotalUnits, usage.UnitsUsed)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		return amount, nil

	default:
		return decimal.Zero, fmt.Errorf("%w: unknown depreciation method %q", apperrors.ErrValidation, asset.DepreciationMethod)
	}
}

// checkDepreciationEligibility enforces the ordering and state rules for one
// calculation. Periods are normalized before comparison.
func checkDepreciationEligibility(asset *domain.FixedAsset, period time.Time) error {
	if asset.Status != domain.StatusActive {
		return fmt.Errorf("%w: asset %s is %s", ErrAssetNotDepreciable, asset.AssetID, asset.Status)
	}
	if asset.DepreciationStartDate == nil {
		return fmt.Errorf("%w: asset %s", ErrDepreciationNotSetUp, asset.AssetID)
	}
	if period.Before(domain.NormalizePeriod(*asset.DepreciationStartDate)) {
		return fmt.Errorf("%w: asset %s period %s", ErrPeriodBeforeStart, asset.AssetID, period.Format("2006-01"))
	}
	if asset.LastDepreciationDate != nil && !period.After(domain.NormalizePeriod(*asset.LastDepreciationDate)) {
		return fmt.Errorf("%w: asset %s period %s", ErrPeriodNotAfterLast, asset.AssetID, period.Format("2006-01"))
	}
	if !asset.NetBookValue().GreaterThan(asset.SalvageValue) {
		return fmt.Errorf("%w: asset %s", ErrAssetFullyDepreciated, asset.AssetID)
	}
	return nil
}
