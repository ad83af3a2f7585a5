package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
)

var ErrAccountInactive = errors.New("account is inactive")

// accountService resolves chart-of-account references for the asset core.
// The chart of accounts itself is owned by the general ledger; this service
// only checks presence and active state.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account lookup service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to find accounts by IDs", slog.String("error", err.Error()), slog.Int("count", len(accountIDs)))
		return nil, err
	}
	return accounts, nil
}

// ValidateAccountsActive checks that every given account exists and is active.
// Empty identifiers are skipped so optional GL references validate cleanly.
func (s *accountService) ValidateAccountsActive(ctx context.Context, accountIDs []string) error {
	unique := make([]string, 0, len(accountIDs))
	seen := make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, unique)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for _, id := range unique {
		account, found := accounts[id]
		if !found {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: %s (%s)", ErrAccountInactive, account.AccountCode, id)
		}
	}
	return nil
}
