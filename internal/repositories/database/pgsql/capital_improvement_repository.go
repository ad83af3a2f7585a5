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

type PgxCapitalImprovementRepository struct {
	pool *pgxpool.Pool
}

// newPgxCapitalImprovementRepository creates a new repository for improvement documents.
func newPgxCapitalImprovementRepository(pool *pgxpool.Pool) portsrepo.CapitalImprovementRepositoryFacade {
	return &PgxCapitalImprovementRepository{pool: pool}
}

// Ensure PgxCapitalImprovementRepository implements portsrepo.CapitalImprovementRepositoryFacade
var _ portsrepo.CapitalImprovementRepositoryFacade = (*PgxCapitalImprovementRepository)(nil)

const improvementColumns = `improvement_id, improvement_number, asset_id, improvement_date, description,
	improvement_cost, extends_useful_life_months, increases_salvage_value,
	is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanImprovement(row pgx.Row) (models.CapitalImprovement, error) {
	var m models.CapitalImprovement
	var postedBy, journalEntryID sql.NullString

	err := row.Scan(
		&m.ImprovementID,
		&m.ImprovementNumber,
		&m.AssetID,
		&m.ImprovementDate,
		&m.Description,
		&m.ImprovementCost,
		&m.ExtendsUsefulLifeMonths,
		&m.IncreasesSalvageValue,
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
		return models.CapitalImprovement{}, err
	}

	m.PostedBy = postedBy.String
	m.JournalEntryID = journalEntryID.String
	return m, nil
}

func (r *PgxCapitalImprovementRepository) queryImprovementRows(ctx context.Context, query string, args ...interface{}) ([]domain.CapitalImprovement, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query improvement documents: %w", err)
	}
	defer rows.Close()

	modelImprovements := []models.CapitalImprovement{}
	for rows.Next() {
		m, err := scanImprovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan improvement row: %w", err)
		}
		modelImprovements = append(modelImprovements, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating improvement rows: %w", rows.Err())
	}

	return mapping.ToDomainCapitalImprovementSlice(modelImprovements), nil
}

// FindImprovementByID retrieves an improvement document by its ID.
func (r *PgxCapitalImprovementRepository) FindImprovementByID(ctx context.Context, improvementID string) (*domain.CapitalImprovement, error) {
	query := `SELECT ` + improvementColumns + ` FROM capital_improvements WHERE improvement_id = $1;`

	m, err := scanImprovement(r.pool.QueryRow(ctx, query, improvementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find improvement document %s: %w", improvementID, err)
	}

	d := mapping.ToDomainCapitalImprovement(m)
	return &d, nil
}

// ListImprovementsByAsset retrieves all improvement documents for an asset.
func (r *PgxCapitalImprovementRepository) ListImprovementsByAsset(ctx context.Context, assetID string) ([]domain.CapitalImprovement, error) {
	query := `SELECT ` + improvementColumns + ` FROM capital_improvements WHERE asset_id = $1 ORDER BY improvement_date;`
	return r.queryImprovementRows(ctx, query, assetID)
}

// ListUnpostedImprovements retrieves improvement documents not yet posted.
func (r *PgxCapitalImprovementRepository) ListUnpostedImprovements(ctx context.Context) ([]domain.CapitalImprovement, error) {
	query := `SELECT ` + improvementColumns + ` FROM capital_improvements WHERE is_posted = FALSE ORDER BY improvement_date;`
	return r.queryImprovementRows(ctx, query)
}

// SaveImprovement persists a new improvement document.
func (r *PgxCapitalImprovementRepository) SaveImprovement(ctx context.Context, improvement domain.CapitalImprovement) error {
	m := mapping.ToModelCapitalImprovement(improvement)

	query := `
		INSERT INTO capital_improvements (` + improvementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`

	_, err := r.pool.Exec(ctx, query,
		m.ImprovementID,
		m.ImprovementNumber,
		m.AssetID,
		m.ImprovementDate,
		m.Description,
		m.ImprovementCost,
		m.ExtendsUsefulLifeMonths,
		m.IncreasesSalvageValue,
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
			return fmt.Errorf("%w: improvement number %s already exists", apperrors.ErrDuplicate, m.ImprovementNumber)
		}
		return fmt.Errorf("failed to save improvement document %s: %w", m.ImprovementID, err)
	}
	return nil
}

// MarkImprovementPostedInTx flips the posting flag and stores the GL
// reference within the posting transaction.
func (r *PgxCapitalImprovementRepository) MarkImprovementPostedInTx(ctx context.Context, tx pgx.Tx, improvementID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE capital_improvements
		SET is_posted = TRUE, posted_date = $2, posted_by = $3, journal_entry_id = $4,
			last_updated_at = $2, last_updated_by = $3
		WHERE improvement_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, improvementID, postedAt, postedBy, nullString(journalEntryID))
	if err != nil {
		return fmt.Errorf("failed to mark improvement %s posted: %w", improvementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
