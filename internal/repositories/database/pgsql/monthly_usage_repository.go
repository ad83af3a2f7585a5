package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsledger/fixed_asset_app/internal/apperrors"
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	portsrepo "github.com/opsledger/fixed_asset_app/internal/core/ports/repositories"
	"github.com/opsledger/fixed_asset_app/internal/models"
	"github.com/opsledger/fixed_asset_app/internal/utils/mapping"
)

type PgxMonthlyUsageRepository struct {
	pool *pgxpool.Pool
}

// newPgxMonthlyUsageRepository creates a new repository for monthly usage records.
func newPgxMonthlyUsageRepository(pool *pgxpool.Pool) portsrepo.MonthlyUsageRepositoryFacade {
	return &PgxMonthlyUsageRepository{pool: pool}
}

// Ensure PgxMonthlyUsageRepository implements portsrepo.MonthlyUsageRepositoryFacade
var _ portsrepo.MonthlyUsageRepositoryFacade = (*PgxMonthlyUsageRepository)(nil)

const usageColumns = `usage_id, asset_id, period, usage_date, units_used, notes,
	is_processed, processed_date, created_at, created_by, last_updated_at, last_updated_by`

func scanUsage(row pgx.Row) (models.MonthlyUsage, error) {
	var m models.MonthlyUsage
	err := row.Scan(
		&m.UsageID,
		&m.AssetID,
		&m.Period,
		&m.UsageDate,
		&m.UnitsUsed,
		&m.Notes,
		&m.IsProcessed,
		&m.ProcessedDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMonthlyUsageRepository) queryUsageRows(ctx context.Context, query string, args ...interface{}) ([]domain.MonthlyUsage, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage records: %w", err)
	}
	defer rows.Close()

	modelUsages := []models.MonthlyUsage{}
	for rows.Next() {
		m, err := scanUsage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan usage row: %w", err)
		}
		modelUsages = append(modelUsages, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating usage rows: %w", rows.Err())
	}

	return mapping.ToDomainMonthlyUsageSlice(modelUsages), nil
}

// FindUsageByID retrieves a usage record by its ID.
func (r *PgxMonthlyUsageRepository) FindUsageByID(ctx context.Context, usageID string) (*domain.MonthlyUsage, error) {
	query := `SELECT ` + usageColumns + ` FROM monthly_usage WHERE usage_id = $1;`

	m, err := scanUsage(r.pool.QueryRow(ctx, query, usageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find usage record %s: %w", usageID, err)
	}

	d := mapping.ToDomainMonthlyUsage(m)
	return &d, nil
}

// FindUsageByAssetAndPeriod retrieves the usage record for one asset and one
// normalized period.
func (r *PgxMonthlyUsageRepository) FindUsageByAssetAndPeriod(ctx context.Context, assetID string, period time.Time) (*domain.MonthlyUsage, error) {
	query := `SELECT ` + usageColumns + ` FROM monthly_usage WHERE asset_id = $1 AND period = $2;`

	m, err := scanUsage(r.pool.QueryRow(ctx, query, assetID, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find usage for asset %s period %s: %w", assetID, period.Format("2006-01"), err)
	}

	d := mapping.ToDomainMonthlyUsage(m)
	return &d, nil
}

// ListUsageByAsset retrieves the usage history for an asset.
func (r *PgxMonthlyUsageRepository) ListUsageByAsset(ctx context.Context, assetID string) ([]domain.MonthlyUsage, error) {
	query := `SELECT ` + usageColumns + ` FROM monthly_usage WHERE asset_id = $1 ORDER BY period;`
	return r.queryUsageRows(ctx, query, assetID)
}

// ListUnprocessedUsage retrieves usage records not yet processed.
func (r *PgxMonthlyUsageRepository) ListUnprocessedUsage(ctx context.Context) ([]domain.MonthlyUsage, error) {
	query := `SELECT ` + usageColumns + ` FROM monthly_usage WHERE is_processed = FALSE ORDER BY period;`
	return r.queryUsageRows(ctx, query)
}

// SaveUsage persists a new usage record.
func (r *PgxMonthlyUsageRepository) SaveUsage(ctx context.Context, usage domain.MonthlyUsage) error {
	m := mapping.ToModelMonthlyUsage(usage)

	query := `
		INSERT INTO monthly_usage (` + usageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.pool.Exec(ctx, query,
		m.UsageID,
		m.AssetID,
		m.Period,
		m.UsageDate,
		m.UnitsUsed,
		m.Notes,
		m.IsProcessed,
		m.ProcessedDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: usage for asset %s period %s already exists", apperrors.ErrDuplicate, m.AssetID, m.Period.Format("2006-01"))
		}
		return fmt.Errorf("failed to save usage record %s: %w", m.UsageID, err)
	}
	return nil
}

// UpdateUsage updates an existing usage record.
func (r *PgxMonthlyUsageRepository) UpdateUsage(ctx context.Context, usage domain.MonthlyUsage) error {
	m := mapping.ToModelMonthlyUsage(usage)

	query := `
		UPDATE monthly_usage
		SET usage_date = $2, units_used = $3, notes = $4, is_processed = $5, processed_date = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE usage_id = $1;
	`

	cmdTag, err := r.pool.Exec(ctx, query,
		m.UsageID,
		m.UsageDate,
		m.UnitsUsed,
		m.Notes,
		m.IsProcessed,
		m.ProcessedDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update usage record %s: %w", m.UsageID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
