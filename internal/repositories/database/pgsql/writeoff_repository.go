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

type PgxWriteOffRepository struct {
	pool *pgxpool.Pool
}

// newPgxWriteOffRepository creates a new repository for write-off documents.
func newPgxWriteOffRepository(pool *pgxpool.Pool) portsrepo.WriteOffRepositoryFacade {
	return &PgxWriteOffRepository{pool: pool}
}

// Ensure PgxWriteOffRepository implements portsrepo.WriteOffRepositoryFacade
var _ portsrepo.WriteOffRepositoryFacade = (*PgxWriteOffRepository)(nil)

const writeOffColumns = `write_off_id, write_off_number, asset_id, write_off_date, reason,
	gross_cost_at_write_off, accumulated_depreciation_at_write_off, net_book_value_at_write_off, loss_amount,
	is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanWriteOff(row pgx.Row) (models.WriteOff, error) {
	var m models.WriteOff
	var postedBy, journalEntryID sql.NullString

	err := row.Scan(
		&m.WriteOffID,
		&m.WriteOffNumber,
		&m.AssetID,
		&m.WriteOffDate,
		&m.Reason,
		&m.GrossCostAtWriteOff,
		&m.AccumulatedDepreciationAtWriteOff,
		&m.NetBookValueAtWriteOff,
		&m.LossAmount,
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
		return models.WriteOff{}, err
	}

	m.PostedBy = postedBy.String
	m.JournalEntryID = journalEntryID.String
	return m, nil
}

func (r *PgxWriteOffRepository) queryWriteOffRows(ctx context.Context, query string, args ...interface{}) ([]domain.WriteOff, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query write-off documents: %w", err)
	}
	defer rows.Close()

	modelWriteOffs := []models.WriteOff{}
	for rows.Next() {
		m, err := scanWriteOff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan write-off row: %w", err)
		}
		modelWriteOffs = append(modelWriteOffs, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating write-off rows: %w", rows.Err())
	}

	return mapping.ToDomainWriteOffSlice(modelWriteOffs), nil
}

// FindWriteOffByID retrieves a write-off document by its ID.
func (r *PgxWriteOffRepository) FindWriteOffByID(ctx context.Context, writeOffID string) (*domain.WriteOff, error) {
	query := `SELECT ` + writeOffColumns + ` FROM write_offs WHERE write_off_id = $1;`

	m, err := scanWriteOff(r.pool.QueryRow(ctx, query, writeOffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find write-off document %s: %w", writeOffID, err)
	}

	d := mapping.ToDomainWriteOff(m)
	return &d, nil
}

// ListWriteOffsByAsset retrieves all write-off documents for an asset.
func (r *PgxWriteOffRepository) ListWriteOffsByAsset(ctx context.Context, assetID string) ([]domain.WriteOff, error) {
	query := `SELECT ` + writeOffColumns + ` FROM write_offs WHERE asset_id = $1 ORDER BY write_off_date;`
	return r.queryWriteOffRows(ctx, query, assetID)
}

// ListUnpostedWriteOffs retrieves write-off documents not yet posted.
func (r *PgxWriteOffRepository) ListUnpostedWriteOffs(ctx context.Context) ([]domain.WriteOff, error) {
	query := `SELECT ` + writeOffColumns + ` FROM write_offs WHERE is_posted = FALSE ORDER BY write_off_date;`
	return r.queryWriteOffRows(ctx, query)
}

// SaveWriteOff persists a new write-off document.
func (r *PgxWriteOffRepository) SaveWriteOff(ctx context.Context, writeOff domain.WriteOff) error {
	m := mapping.ToModelWriteOff(writeOff)

	query := `
		INSERT INTO write_offs (` + writeOffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`

	_, err := r.pool.Exec(ctx, query,
		m.WriteOffID,
		m.WriteOffNumber,
		m.AssetID,
		m.WriteOffDate,
		m.Reason,
		m.GrossCostAtWriteOff,
		m.AccumulatedDepreciationAtWriteOff,
		m.NetBookValueAtWriteOff,
		m.LossAmount,
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
			return fmt.Errorf("%w: write-off number %s already exists", apperrors.ErrDuplicate, m.WriteOffNumber)
		}
		return fmt.Errorf("failed to save write-off document %s: %w", m.WriteOffID, err)
	}
	return nil
}

// MarkWriteOffPostedInTx flips the posting flag and stores the GL reference
// within the posting transaction.
func (r *PgxWriteOffRepository) MarkWriteOffPostedInTx(ctx context.Context, tx pgx.Tx, writeOffID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE write_offs
		SET is_posted = TRUE, posted_date = $2, posted_by = $3, journal_entry_id = $4,
			last_updated_at = $2, last_updated_by = $3
		WHERE write_off_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, writeOffID, postedAt, postedBy, nullString(journalEntryID))
	if err != nil {
		return fmt.Errorf("failed to mark write-off %s posted: %w", writeOffID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
