package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
	"github.com/opsledger/fixed_asset_app/internal/models"
	"github.com/opsledger/fixed_asset_app/internal/utils/mapping"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for chart-of-account lookups.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, account_code, name, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := row.Scan(
		&m.AccountID,
		&m.AccountCode,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAccountByID retrieves a GL account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_id = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	d := mapping.ToDomainChartOfAccount(m)
	return &d, nil
}

// FindAccountsByIDs retrieves multiple GL accounts by their IDs. IDs that do
// not exist are simply absent from the returned map; the caller decides
// whether that is an error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.ChartOfAccount{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_id = ANY($1);`

	rows, err := r.pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.ChartOfAccount)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row during batch fetch: %w", err)
		}
		accountsMap[m.AccountID] = mapping.ToDomainChartOfAccount(m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows during batch fetch: %w", rows.Err())
	}

	return accountsMap, nil
}
