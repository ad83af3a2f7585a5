package pgsql

import (
	"context"
	"database/sql"
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

type PgxDepreciationRepository struct {
	pool *pgxpool.Pool
}

// newPgxDepreciationRepository creates a new repository for depreciation records.
func newPgxDepreciationRepository(pool *pgxpool.Pool) portsrepo.DepreciationRepositoryFacade {
	return &PgxDepreciationRepository{pool: pool}
}

// Ensure PgxDepreciationRepository implements portsrepo.DepreciationRepositoryFacade
var _ portsrepo.DepreciationRepositoryFacade = (*PgxDepreciationRepository)(nil)

const depreciationColumns = `depreciation_id, depreciation_number, asset_id, period, depreciation_date, description,
	opening_gross_cost, opening_accumulated_depreciation, opening_net_book_value,
	depreciation_amount, closing_accumulated_depreciation, closing_net_book_value,
	is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDepreciation(row pgx.Row) (models.DepreciationRecord, error) {
	var m models.DepreciationRecord
	var postedBy, journalEntryID sql.NullString

	err := row.Scan(
		&m.DepreciationID,
		&m.DepreciationNumber,
		&m.AssetID,
		&m.Period,
		&m.DepreciationDate,
		&m.Description,
		&m.OpeningGrossCost,
		&m.OpeningAccumulatedDepreciation,
		&m.OpeningNetBookValue,
		&m.DepreciationAmount,
		&m.ClosingAccumulatedDepreciation,
		&m.ClosingNetBookValue,
		&m.IsPosted,
		&m.PostedDate,
		&postedBy,
		&journalEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.DepreciationRecord{}, err
	}

	m.PostedBy = postedBy.String
	m.JournalEntryID = journalEntryID.String
	return m, nil
}

func (r *PgxDepreciationRepository) queryDepreciationRows(ctx context.Context, query string, args ...interface{}) ([]domain.DepreciationRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query depreciation records: %w", err)
	}
	defer rows.Close()

	modelRecords := []models.DepreciationRecord{}
	for rows.Next() {
		m, err := scanDepreciation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan depreciation row: %w", err)
		}
		modelRecords = append(modelRecords, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating depreciation rows: %w", rows.Err())
	}

	return mapping.ToDomainDepreciationRecordSlice(modelRecords), nil
}

// FindDepreciationByID retrieves a depreciation record by its ID.
func (r *PgxDepreciationRepository) FindDepreciationByID(ctx context.Context, depreciationID string) (*domain.DepreciationRecord, error) {
	query := `SELECT ` + depreciationColumns + ` FROM depreciation_records WHERE depreciation_id = $1;`

	m, err := scanDepreciation(r.pool.QueryRow(ctx, query, depreciationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find depreciation record %s: %w", depreciationID, err)
	}

	d := mapping.ToDomainDepreciationRecord(m)
	return &d, nil
}

// FindDepreciationByAssetAndPeriod retrieves the record for one asset and one
// normalized period.
func (r *PgxDepreciationRepository) FindDepreciationByAssetAndPeriod(ctx context.Context, assetID string, period time.Time) (*domain.DepreciationRecord, error) {
	query := `SELECT ` + depreciationColumns + ` FROM depreciation_records WHERE asset_id = $1 AND period = $2;`

	m, err := scanDepreciation(r.pool.QueryRow(ctx, query, assetID, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find depreciation for asset %s period %s: %w", assetID, period.Format("2006-01"), err)
	}

	d := mapping.ToDomainDepreciationRecord(m)
	return &d, nil
}

// ListDepreciationByAsset retrieves the depreciation history for an asset.
func (r *PgxDepreciationRepository) ListDepreciationByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error) {
	query := `SELECT ` + depreciationColumns + ` FROM depreciation_records WHERE asset_id = $1 ORDER BY period;`
	return r.queryDepreciationRows(ctx, query, assetID)
}

// ListDepreciationByPeriod retrieves all records for a normalized period.
func (r *PgxDepreciationRepository) ListDepreciationByPeriod(ctx context.Context, period time.Time) ([]domain.DepreciationRecord, error) {
	query := `SELECT ` + depreciationColumns + ` FROM depreciation_records WHERE period = $1 ORDER BY depreciation_number;`
	return r.queryDepreciationRows(ctx, query, period)
}

// ListUnpostedDepreciation retrieves records not yet posted to the GL.
func (r *PgxDepreciationRepository) ListUnpostedDepreciation(ctx context.Context) ([]domain.DepreciationRecord, error) {
	query := `SELECT ` + depreciationColumns + ` FROM depreciation_records WHERE is_posted = FALSE ORDER BY period, depreciation_number;`
	return r.queryDepreciationRows(ctx, query)
}

// SaveDepreciationInTx persists a new record inside the calculation's transaction.
func (r *PgxDepreciationRepository) SaveDepreciationInTx(ctx context.Context, tx pgx.Tx, record domain.DepreciationRecord) error {
	m := mapping.ToModelDepreciationRecord(record)

	query := `
		INSERT INTO depreciation_records (` + depreciationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`

	_, err := tx.Exec(ctx, query,
		m.DepreciationID,
		m.DepreciationNumber,
		m.AssetID,
		m.Period,
		m.DepreciationDate,
		m.Description,
		m.OpeningGrossCost,
		m.OpeningAccumulatedDepreciation,
		m.OpeningNetBookValue,
		m.DepreciationAmount,
		m.ClosingAccumulatedDepreciation,
		m.ClosingNetBookValue,
		m.IsPosted,
		m.PostedDate,
		nullString(m.PostedBy),
		nullString(m.JournalEntryID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: depreciation for asset %s period %s already exists", apperrors.ErrDuplicate, m.AssetID, m.Period.Format("2006-01"))
		}
		return fmt.Errorf("failed to save depreciation record %s: %w", m.DepreciationID, err)
	}
	return nil
}

// MarkDepreciationPostedInTx flips the posting flag and stores the GL
// reference within the posting transaction.
func (r *PgxDepreciationRepository) MarkDepreciationPostedInTx(ctx context.Context, tx pgx.Tx, depreciationID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE depreciation_records
		SET is_posted = TRUE, posted_date = $2, posted_by = $3, journal_entry_id = $4,
			last_updated_at = $2, last_updated_by = $3
		WHERE depreciation_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, depreciationID, postedAt, postedBy, nullString(journalEntryID))
	if err != nil {
		return fmt.Errorf("failed to mark depreciation %s posted: %w", depreciationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
