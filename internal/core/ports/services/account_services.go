package services

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// AccountReaderSvc defines read operations against the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error)

	// GetAccountsByIDs retrieves multiple accounts keyed by identifier.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error)

	// ValidateAccountsActive checks that every given account exists and is
	// active. Empty identifiers are skipped.
	ValidateAccountsActive(ctx context.Context, accountIDs []string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
}
