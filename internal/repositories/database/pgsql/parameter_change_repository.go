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

type PgxParameterChangeRepository struct {
	pool *pgxpool.Pool
}

// newPgxParameterChangeRepository creates a new repository for parameter change documents.
func newPgxParameterChangeRepository(pool *pgxpool.Pool) portsrepo.ParameterChangeRepositoryFacade {
	return &PgxParameterChangeRepository{pool: pool}
}

// Ensure PgxParameterChangeRepository implements portsrepo.ParameterChangeRepositoryFacade
var _ portsrepo.ParameterChangeRepositoryFacade = (*PgxParameterChangeRepository)(nil)

const parameterChangeColumns = `change_id, change_number, asset_id, change_date, change_type, reason,
	old_gross_cost, old_salvage_value, old_useful_life_months, old_accumulated_depreciation,
	adjustment_amount, new_useful_life_months, new_salvage_value,
	is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanParameterChange(row pgx.Row) (models.ParameterChange, error) {
	var m models.ParameterChange
	var postedBy, journalEntryID sql.NullString

	err := row.Scan(
		&m.ChangeID,
		&m.ChangeNumber,
		&m.AssetID,
		&m.ChangeDate,
		&m.ChangeType,
		&m.Reason,
		&m.OldGrossCost,
		&m.OldSalvageValue,
		&m.OldUsefulLifeMonths,
		&m.OldAccumulatedDepreciation,
		&m.AdjustmentAmount,
		&m.NewUsefulLifeMonths,
		&m.NewSalvageValue,
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
		return models.ParameterChange{}, err
	}

	m.PostedBy = postedBy.String
	m.JournalEntryID = journalEntryID.String
	return m, nil
}

func (r *PgxParameterChangeRepository) queryParameterChangeRows(ctx context.Context, query string, args ...interface{}) ([]domain.ParameterChange, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parameter change documents: %w", err)
	}
	defer rows.Close()

	modelChanges := []models.ParameterChange{}
	for rows.Next() {
		m, err := scanParameterChange(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan parameter change row: %w", err)
		}
		modelChanges = append(modelChanges, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating parameter change rows: %w", rows.Err())
	}

	return mapping.ToDomainParameterChangeSlice(modelChanges), nil
}

// FindParameterChangeByID retrieves a parameter change document by its ID.
func (r *PgxParameterChangeRepository) FindParameterChangeByID(ctx context.Context, changeID string) (*domain.ParameterChange, error) {
	query := `SELECT ` + parameterChangeColumns + ` FROM parameter_changes WHERE change_id = $1;`

	m, err := scanParameterChange(r.pool.QueryRow(ctx, query, changeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find parameter change document %s: %w", changeID, err)
	}

	d := mapping.ToDomainParameterChange(m)
	return &d, nil
}

// ListParameterChangesByAsset retrieves all parameter changes for an asset.
func (r *PgxParameterChangeRepository) ListParameterChangesByAsset(ctx context.Context, assetID string) ([]domain.ParameterChange, error) {
	query := `SELECT ` + parameterChangeColumns + ` FROM parameter_changes WHERE asset_id = $1 ORDER BY change_date;`
	return r.queryParameterChangeRows(ctx, query, assetID)
}

// ListUnpostedParameterChanges retrieves parameter changes not yet posted.
func (r *PgxParameterChangeRepository) ListUnpostedParameterChanges(ctx context.Context) ([]domain.ParameterChange, error) {
	query := `SELECT ` + parameterChangeColumns + ` FROM parameter_changes WHERE is_posted = FALSE ORDER BY change_date;`
	return r.queryParameterChangeRows(ctx, query)
}

// SaveParameterChange persists a new parameter change document.
func (r *PgxParameterChangeRepository) SaveParameterChange(ctx context.Context, change domain.ParameterChange) error {
	m := mapping.ToModelParameterChange(change)

	query := `
		INSERT INTO parameter_changes (` + parameterChangeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`

	_, err := r.pool.Exec(ctx, query,
		m.ChangeID,
		m.ChangeNumber,
		m.AssetID,
		m.ChangeDate,
		m.ChangeType,
		m.Reason,
		m.OldGrossCost,
		m.OldSalvageValue,
		m.OldUsefulLifeMonths,
		m.OldAccumulatedDepreciation,
		m.AdjustmentAmount,
		m.NewUsefulLifeMonths,
		m.NewSalvageValue,
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
			return fmt.Errorf("%w: parameter change number %s already exists", apperrors.ErrDuplicate, m.ChangeNumber)
		}
		return fmt.Errorf("failed to save parameter change document %s: %w", m.ChangeID, err)
	}
	return nil
}

// MarkParameterChangePostedInTx flips the posting flag and stores the GL
// reference within the posting transaction.
func (r *PgxParameterChangeRepository) MarkParameterChangePostedInTx(ctx context.Context, tx pgx.Tx, changeID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE parameter_changes
		SET is_posted = TRUE, posted_date = $2, posted_by = $3, journal_entry_id = $4,
			last_updated_at = $2, last_updated_by = $3
		WHERE change_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, changeID, postedAt, postedBy, nullString(journalEntryID))
	if err != nil {
		return fmt.Errorf("failed to mark parameter change %s posted: %w", changeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
