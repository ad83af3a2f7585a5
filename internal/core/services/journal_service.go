package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
	"github.com/opsledger/fixed_asset_app/internal/utils/accounting"
)

var ErrJournalDescriptionMissing = errors.New("journal description is required")

// journalService is the GL posting collaborator. Document services hand it a
// set of balanced lines inside their posting transaction; the returned
// identifier becomes the document's GL reference.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry", slog.String("error", err.Error()), slog.String("journal_entry_id", journalEntryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListJournalEntriesBySource(ctx context.Context, sourceDocument string) ([]domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	entries, err := s.journalRepo.ListJournalEntriesBySource(ctx, sourceDocument)
	if err != nil {
		logger.Error("Failed to list journal entries by source", slog.String("error", err.Error()), slog.String("source_document", sourceDocument))
		return nil, err
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}

// CreateJournalEntryInTx validates the lines and persists the entry within the
// caller's posting transaction.
func (s *journalService) CreateJournalEntryInTx(ctx context.Context, tx pgx.Tx, entryDate time.Time, description string, sourceDocument string, lines []domain.JournalLine, userID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if description == "" {
		return "", ErrJournalDescriptionMissing
	}
	if err := accounting.ValidateJournalLines(lines); err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	if err := s.accountSvc.ValidateAccountsActive(ctx, accountIDs); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		EntryDate:      entryDate,
		Description:    description,
		SourceDocument: sourceDocument,
		Lines:          lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.journalRepo.SaveJournalEntryInTx(ctx, tx, entry); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("source_document", sourceDocument))
		return "", err
	}

	logger.Info("Journal entry created", slog.String("journal_entry_id", entry.JournalEntryID), slog.String("source_document", sourceDocument))
	return entry.JournalEntryID, nil
}
