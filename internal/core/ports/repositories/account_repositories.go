package repositories

import (
	"context"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// AccountReader resolves chart-of-account references. The asset core only
// checks presence and active state; account semantics live elsewhere.
type AccountReader interface {
	// FindAccountByID retrieves a GL account by its identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error)

	// FindAccountsByIDs retrieves multiple GL accounts by their identifiers.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error)
}

// AccountRepositoryFacade is the facade for chart-of-account lookups.
type AccountRepositoryFacade interface {
	AccountReader
}
