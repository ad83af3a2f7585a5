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
	ErrAlreadyPosted          = errors.New("document is already posted")
	ErrEntryCostNotPositive   = errors.New("initial cost must be positive")
	ErrEntrySalvageInvalid    = errors.New("salvage value must be non-negative and below initial cost")
	ErrEntryLifeMissing       = errors.New("useful life in months is required for straight-line depreciation")
	ErrEntryUnitsMissing      = errors.New("total units are required for units-of-production depreciation")
	ErrEntryStartDateMissing  = errors.New("depreciation start date is required")
	ErrAcquisitionAcctMissing = errors.New("construction-in-progress account is required to activate a constructed asset")
)

// entryService manages asset entry documents. Posting an entry applies the
// financial setup to the asset and activates it.
type entryService struct {
	entryRepo  portsrepo.EntryRepositoryFacade
	assetRepo  portsrepo.AssetRepositoryWithTx
	accountSvc portssvc.AccountSvcFacade
	journalSvc portssvc.JournalSvcFacade
}

// NewEntryService creates a new entry document service.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx, accountSvc portssvc.AccountSvcFacade, journalSvc portssvc.JournalSvcFacade) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo:  entryRepo,
		assetRepo:  assetRepo,
		accountSvc: accountSvc,
		journalSvc: journalSvc,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.AssetEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) ListEntriesByAsset(ctx context.Context, assetID string) ([]domain.AssetEntry, error) {
	entries, err := s.entryRepo.ListEntriesByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return []domain.AssetEntry{}, nil
	}
	return entries, nil
}

func (s *entryService) ListUnpostedEntries(ctx context.Context) ([]domain.AssetEntry, error) {
	entries, err := s.entryRepo.ListUnpostedEntries(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return []domain.AssetEntry{}, nil
	}
	return entries, nil
}

// CreateEntry validates the financial setup and persists the document without
// touching asset balances.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.AssetEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusNew && asset.Status != domain.StatusConstructionCompleted {
		return nil, fmt.Errorf("%w: asset %s in status %s cannot receive an entry", apperrors.ErrValidation, asset.AssetID, asset.Status)
	}

	if err := validateEntryFinancials(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.accountSvc.ValidateAccountsActive(ctx, []string{req.AssetAccountID, req.DepreciationAccountID, req.ExpenseAccountID}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.AssetEntry{
		EntryID:     uuid.NewString(),
		EntryNumber: req.EntryNumber,
		AssetID:     req.AssetID,
		EntryDate:   req.EntryDate,
		Description: req.Description,

		InitialCost:           req.InitialCost,
		SalvageValue:          req.SalvageValue,
		DepreciationMethod:    req.DepreciationMethod,
		UsefulLifeMonths:      req.UsefulLifeMonths,
		TotalUnits:            req.TotalUnits,
		DepreciationStartDate: *req.DepreciationStartDate,

		AssetAccountID:        req.AssetAccountID,
		DepreciationAccountID: req.DepreciationAccountID,
		ExpenseAccountID:      req.ExpenseAccountID,

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save entry", slog.String("error", err.Error()), slog.String("entry_number", req.EntryNumber))
		return nil, err
	}

	logger.Info("Entry created", slog.String("entry_id", entry.EntryID), slog.String("asset_id", entry.AssetID))
	return &entry, nil
}

// PostEntry applies the financial setup to the asset, activates it and writes
// the acquisition journal entry. Posting happens at most once.
func (s *entryService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.AssetEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsPosted {
		return nil, fmt.Errorf("%w: entry %s", ErrAlreadyPosted, entryID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, entry.AssetID)
	if err != nil {
		return nil, err
	}

	originStatus := asset.Status
	if err := asset.Transition(domain.StatusActive); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	// Apply entry overrides to the asset's GL accounts before building lines.
	if entry.AssetAccountID != "" {
		asset.GLAccounts.AssetAccountID = entry.AssetAccountID
	}
	if entry.DepreciationAccountID != "" {
		asset.GLAccounts.DepreciationAccountID = entry.DepreciationAccountID
	}
	if entry.ExpenseAccountID != "" {
		asset.GLAccounts.ExpenseAccountID = entry.ExpenseAccountID
	}

	now := time.Now().UTC()
	startDate := entry.DepreciationStartDate
	nextDate := domain.EndOfNextMonth(startDate)

	asset.InitialCost = entry.InitialCost
	asset.SalvageValue = entry.SalvageValue
	asset.DepreciationMethod = entry.DepreciationMethod
	asset.UsefulLifeMonths = entry.UsefulLifeMonths
	asset.TotalUnits = entry.TotalUnits
	asset.RemainingUnits = entry.TotalUnits
	asset.DepreciationStartDate = &startDate
	asset.NextDepreciationDate = &nextDate
	asset.ActivationDate = &entry.EntryDate
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	// Activating a constructed asset reclassifies the accumulated CIP balance
	// to the at-cost account. Ordinary acquisitions carry their cost on the
	// entry itself and book no journal here.
	var journalEntryID string
	if originStatus == domain.StatusConstructionCompleted {
		if asset.GLAccounts.ConstructionInProgressAccountID == "" {
			return nil, fmt.Errorf("%w: asset %s", ErrAcquisitionAcctMissing, asset.AssetID)
		}
		lines := []domain.JournalLine{
			{AccountID: asset.GLAccounts.AssetAccountID, Side: domain.Debit, Amount: entry.InitialCost, Memo: "asset at cost"},
			{AccountID: asset.GLAccounts.ConstructionInProgressAccountID, Side: domain.Credit, Amount: entry.InitialCost, Memo: "construction settlement"},
		}
		journalEntryID, err = s.journalSvc.CreateJournalEntryInTx(ctx, tx, entry.EntryDate, "Asset entry "+entry.EntryNumber, entry.EntryNumber, lines, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.entryRepo.MarkEntryPostedInTx(ctx, tx, entry.EntryID, journalEntryID, userID, now); err != nil {
		logger.Error("Failed to mark entry posted", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to update asset from entry", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit entry posting: %w", err)
	}

	entry.IsPosted = true
	entry.PostedDate = &now
	entry.PostedBy = userID
	entry.JournalEntryID = journalEntryID

	logger.Info("Entry posted", slog.String("entry_id", entryID), slog.String("asset_id", asset.AssetID), slog.String("journal_entry_id", journalEntryID))
	return entry, nil
}

func validateEntryFinancials(req dto.CreateEntryRequest) error {
	if req.InitialCost.LessThanOrEqual(decimal.Zero) {
		return ErrEntryCostNotPositive
	}
	if req.SalvageValue.IsNegative() || req.SalvageValue.GreaterThanOrEqual(req.InitialCost) {
		return ErrEntrySalvageInvalid
	}
	if req.DepreciationStartDate == nil {
		return ErrEntryStartDateMissing
	}
	switch req.DepreciationMethod {
	case domain.StraightLine:
		if req.UsefulLifeMonths <= 0 {
			return ErrEntryLifeMissing
		}
	case domain.UnitsOfProduction:
		if req.TotalUnits <= 0 {
			return ErrEntryUnitsMissing
		}
	default:
		return fmt.Errorf("unknown depreciation method %q", req.DepreciationMethod)
	}
	return nil
}
