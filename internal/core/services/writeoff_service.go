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

// writeOffService manages write-off documents. Posting removes the asset from
// the books and recognizes the remaining NBV as a loss.
type writeOffService struct {
	writeOffRepo portsrepo.WriteOffRepositoryFacade
	assetRepo    portsrepo.AssetRepositoryWithTx
	journalSvc   portssvc.JournalSvcFacade
}

// NewWriteOffService creates a new write-off document service.
func NewWriteOffService(writeOffRepo portsrepo.WriteOffRepositoryFacade, assetRepo portsrepo.AssetRepositoryWithTx, journalSvc portssvc.JournalSvcFacade) portssvc.WriteOffSvcFacade {
	return &writeOffService{
		writeOffRepo: writeOffRepo,
		assetRepo:    assetRepo,
		journalSvc:   journalSvc,
	}
}

var _ portssvc.WriteOffSvcFacade = (*writeOffService)(nil)

func (s *writeOffService) GetWriteOffByID(ctx context.Context, writeOffID string) (*domain.WriteOff, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	writeOff, err := s.writeOffRepo.FindWriteOffByID(ctx, writeOffID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find write-off", slog.String("error", err.Error()), slog.String("write_off_id", writeOffID))
		}
		return nil, err
	}
	return writeOff, nil
}

func (s *writeOffService) ListWriteOffsByAsset(ctx context.Context, assetID string) ([]domain.WriteOff, error) {
	writeOffs, err := s.writeOffRepo.ListWriteOffsByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if writeOffs == nil {
		return []domain.WriteOff{}, nil
	}
	return writeOffs, nil
}

func (s *writeOffService) ListUnpostedWriteOffs(ctx context.Context) ([]domain.WriteOff, error) {
	writeOffs, err := s.writeOffRepo.ListUnpostedWriteOffs(ctx)
	if err != nil {
		return nil, err
	}
	if writeOffs == nil {
		return []domain.WriteOff{}, nil
	}
	return writeOffs, nil
}

// CreateWriteOff snapshots the asset's balances and persists the document.
// The loss equals the net book value at write-off time.
func (s *writeOffService) CreateWriteOff(ctx context.Context, req dto.CreateWriteOffRequest, userID string) (*domain.WriteOff, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.StatusActive && asset.Status != domain.StatusFullyDepreciated {
		return nil, fmt.Errorf("%w: asset %s is %s, write-off requires ACTIVE or FULLY_DEPRECIATED", apperrors.ErrValidation, asset.AssetID, asset.Status)
	}

	now := time.Now().UTC()
	writeOff := domain.WriteOff{
		WriteOffID:     uuid.NewString(),
		WriteOffNumber: req.WriteOffNumber,
		AssetID:        req.AssetID,
		WriteOffDate:   req.WriteOffDate,
		Reason:         req.Reason,

		GrossCostAtWriteOff:               asset.GrossCost(),
		AccumulatedDepreciationAtWriteOff: asset.AccumulatedDepreciation,
		NetBookValueAtWriteOff:            asset.NetBookValue(),
		LossAmount:                        asset.NetBookValue(),

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.writeOffRepo.SaveWriteOff(ctx, writeOff); err != nil {
		logger.Error("Failed to save write-off", slog.String("error", err.Error()), slog.String("write_off_number", req.WriteOffNumber))
		return nil, err
	}

	logger.Info("Write-off created", slog.String("write_off_id", writeOff.WriteOffID), slog.String("asset_id", req.AssetID))
	return &writeOff, nil
}

// PostWriteOff removes the asset from the books. The asset record is fully
// depreciated on disposal; the journal clears cost against accumulated
// depreciation and books the remaining NBV as a loss.
func (s *writeOffService) PostWriteOff(ctx context.Context, writeOffID string, userID string) (*domain.WriteOff, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	writeOff, err := s.writeOffRepo.FindWriteOffByID(ctx, writeOffID)
	if err != nil {
		return nil, err
	}
	if writeOff.IsPosted {
		return nil, fmt.Errorf("%w: write-off %s", ErrAlreadyPosted, writeOffID)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, writeOff.AssetID)
	if err != nil {
		return nil, err
	}
	if err := asset.Transition(domain.StatusWrittenOff); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	disposalDate := writeOff.WriteOffDate
	accumulatedAtWriteOff := asset.AccumulatedDepreciation
	asset.AccumulatedDepreciation = asset.GrossCost()
	asset.DisposalDate = &disposalDate
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	// Dr accumulated depreciation, Dr loss for the remaining NBV, Cr asset at
	// cost. Zero-amount legs are dropped to keep every line positive.
	lines := make([]domain.JournalLine, 0, 3)
	if accumulatedAtWriteOff.GreaterThan(decimal.Zero) {
		lines = append(lines, domain.JournalLine{AccountID: asset.GLAccounts.DepreciationAccountID, Side: domain.Debit, Amount: accumulatedAtWriteOff, Memo: "accumulated depreciation cleared"})
	}
	if writeOff.LossAmount.GreaterThan(decimal.Zero) {
		lines = append(lines, domain.JournalLine{AccountID: asset.GLAccounts.ExpenseAccountID, Side: domain.Debit, Amount: writeOff.LossAmount, Memo: "write-off loss"})
	}
	if writeOff.GrossCostAtWriteOff.GreaterThan(decimal.Zero) {
		lines = append(lines, domain.JournalLine{AccountID: asset.GLAccounts.AssetAccountID, Side: domain.Credit, Amount: writeOff.GrossCostAtWriteOff, Memo: "asset at cost cleared"})
	}

	journalEntryID := ""
	if len(lines) >= 2 {
		journalEntryID, err = s.journalSvc.CreateJournalEntryInTx(ctx, tx, writeOff.WriteOffDate, "Asset write-off "+writeOff.WriteOffNumber, writeOff.WriteOffNumber, lines, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.writeOffRepo.MarkWriteOffPostedInTx(ctx, tx, writeOff.WriteOffID, journalEntryID, userID, now); err != nil {
		logger.Error("Failed to mark write-off posted", slog.String("error", err.Error()), slog.String("write_off_id", writeOffID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to write off asset", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return nil, err
	}
	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit write-off posting: %w", err)
	}

	writeOff.IsPosted = true
	writeOff.PostedDate = &now
	writeOff.PostedBy = userID
	writeOff.JournalEntryID = journalEntryID

	logger.Info("Write-off posted",
		slog.String("write_off_id", writeOffID),
		slog.String("asset_id", asset.AssetID),
		slog.String("loss", writeOff.LossAmount.String()),
	)
	return writeOff, nil
}
