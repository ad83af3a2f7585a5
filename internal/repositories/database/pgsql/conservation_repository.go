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

type PgxConservationRepository struct {
	pool *pgxpool.Pool
}

// newPgxConservationRepository creates a new repository for conservation documents.
func newPgxConservationRepository(pool *pgxpool.Pool) portsrepo.ConservationRepositoryFacade {
	return &PgxConservationRepository{pool: pool}
}

// Ensure PgxConservationRepository implements portsrepo.ConservationRepositoryFacade
var _ portsrepo.ConservationRepositoryFacade = (*PgxConservationRepository)(nil)

const conservationColumns = `conservation_id, conservation_number, asset_id, conservation_date, reason, responsible, planned_end_date,
	gross_cost_at_conservation, salvage_value_at_conservation, accumulated_depreciation_at_conservation, net_book_value_at_conservation,
	useful_life_months_at_conservation, depreciation_method_at_conservation,
	is_cancelled, cancellation_date, cancellation_number, cancellation_reason,
	is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanConservation(row pgx.Row) (models.Conservation, error) {
	var m models.Conservation
	var method, cancelNumber, cancelReason, postedBy, journalEntryID sql.NullString

	err := row.Scan(
		&m.ConservationID,
		&m.ConservationNumber,
		&m.AssetID,
		&m.ConservationDate,
		&m.Reason,
		&m.Responsible,
		&m.PlannedEndDate,
		&m.GrossCostAtConservation,
		&m.SalvageValueAtConservation,
		&m.AccumulatedDepreciationAtConservation,
		&m.NetBookValueAtConservation,
		&m.UsefulLifeMonthsAtConservation,
		&method,
		&m.IsCancelled,
		&m.CancellationDate,
		&cancelNumber,
		&cancelReason,
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
		return models.Conservation{}, err
	}

	m.DepreciationMethodAtConservation = method.String
	m.CancellationNumber = cancelNumber.String
	m.CancellationReason = cancelReason.String
	m.PostedBy = postedBy.String
	m.JournalEntryID = journalEntryID.String
	return m, nil
}

func (r *PgxConservationRepository) queryConservationRows(ctx context.Context, query string, args ...interface{}) ([]domain.Conservation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conservation documents: %w", err)
	}
	defer rows.Close()

	modelConservations := []models.Conservation{}
	for rows.Next() {
		m, err := scanConservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conservation row: %w", err)
		}
		modelConservations = append(modelConservations, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating conservation rows: %w", rows.Err())
	}

	return mapping.ToDomainConservationSlice(modelConservations), nil
}

// FindConservationByID retrieves a conservation document by its ID.
func (r *PgxConservationRepository) FindConservationByID(ctx context.Context, conservationID string) (*domain.Conservation, error) {
	query := `SELECT ` + conservationColumns + ` FROM conservations WHERE conservation_id = $1;`

	m, err := scanConservation(r.pool.QueryRow(ctx, query, conservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find conservation document %s: %w", conservationID, err)
	}

	d := mapping.ToDomainConservation(m)
	return &d, nil
}

// FindActiveConservationByAsset retrieves the posted, non-cancelled
// conservation for an asset, if any.
func (r *PgxConservationRepository) FindActiveConservationByAsset(ctx context.Context, assetID string) (*domain.Conservation, error) {
	query := `
		SELECT ` + conservationColumns + `
		FROM conservations
		WHERE asset_id = $1 AND is_posted = TRUE AND is_cancelled = FALSE;
	`

	m, err := scanConservation(r.pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active conservation for asset %s: %w", assetID, err)
	}

	d := mapping.ToDomainConservation(m)
	return &d, nil
}

// ListConservationsByAsset retrieves all conservation documents for an asset.
func (r *PgxConservationRepository) ListConservationsByAsset(ctx context.Context, assetID string) ([]domain.Conservation, error) {
	query := `SELECT ` + conservationColumns + ` FROM conservations WHERE asset_id = $1 ORDER BY conservation_date;`
	return r.queryConservationRows(ctx, query, assetID)
}

// ListActiveConservations retrieves all posted, non-cancelled conservations.
func (r *PgxConservationRepository) ListActiveConservations(ctx context.Context) ([]domain.Conservation, error) {
	query := `SELECT ` + conservationColumns + ` FROM conservations WHERE is_posted = TRUE AND is_cancelled = FALSE ORDER BY conservation_date;`
	return r.queryConservationRows(ctx, query)
}

// ListUnpostedConservations retrieves conservation documents not yet posted.
func (r *PgxConservationRepository) ListUnpostedConservations(ctx context.Context) ([]domain.Conservation, error) {
	query := `SELECT ` + conservationColumns + ` FROM conservations WHERE is_posted = FALSE ORDER BY conservation_date;`
	return r.queryConservationRows(ctx, query)
}

// SaveConservation persists a new conservation document.
func (r *PgxConservationRepository) SaveConservation(ctx context.Context, conservation domain.Conservation) error {
	m := mapping.ToModelConservation(conservation)

	query := `
		INSERT INTO conservations (` + conservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`

	_, err := r.pool.Exec(ctx, query,
		m.ConservationID,
		m.ConservationNumber,
		m.AssetID,
		m.ConservationDate,
		m.Reason,
		m.Responsible,
		m.PlannedEndDate,
		m.GrossCostAtConservation,
		m.SalvageValueAtConservation,
		m.AccumulatedDepreciationAtConservation,
		m.NetBookValueAtConservation,
		m.UsefulLifeMonthsAtConservation,
		nullString(m.DepreciationMethodAtConservation),
		m.IsCancelled,
		m.CancellationDate,
		nullString(m.CancellationNumber),
		nullString(m.CancellationReason),
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
			return fmt.Errorf("%w: conservation number %s already exists", apperrors.ErrDuplicate, m.ConservationNumber)
		}
		return fmt.Errorf("failed to save conservation document %s: %w", m.ConservationID, err)
	}
	return nil
}

// MarkConservationPostedInTx flips the posting flag and stores the GL
// reference within the posting transaction.
func (r *PgxConservationRepository) MarkConservationPostedInTx(ctx context.Context, tx pgx.Tx, conservationID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE conservations
		SET is_posted = TRUE, posted_date = $2, posted_by = $3, journal_entry_id = $4,
			last_updated_at = $2, last_updated_by = $3
		WHERE conservation_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, conservationID, postedAt, postedBy, nullString(journalEntryID))
	if err != nil {
		return fmt.Errorf("failed to mark conservation %s posted: %w", conservationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkConservationCancelledInTx records cancellation fields within the
// cancellation transaction.
func (r *PgxConservationRepository) MarkConservationCancelledInTx(ctx context.Context, tx pgx.Tx, conservation domain.Conservation) error {
	m := mapping.ToModelConservation(conservation)

	query := `
		UPDATE conservations
		SET is_cancelled = TRUE, cancellation_date = $2, cancellation_number = $3, cancellation_reason = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE conservation_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query,
		m.ConservationID,
		m.CancellationDate,
		nullString(m.CancellationNumber),
		nullString(m.CancellationReason),
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to mark conservation %s cancelled: %w", m.ConservationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
