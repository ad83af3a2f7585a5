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

type PgxEntryRepository struct {
	pool *pgxpool.Pool
}

// newPgxEntryRepository creates a new repository for asset entry documents.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{pool: pool}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, entry_number, asset_id, entry_date, description,
	initial_cost, salvage_value, depreciation_method, useful_life_months, total_units, depreciation_start_date,
	asset_account_id, depreciation_account_id, expense_account_id,
	is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.AssetEntry, error) {
	var m models.AssetEntry
	var assetAcct, deprAcct, expenseAcct, postedBy, journalEntryID sql.NullString

	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.AssetID,
		&m.EntryDate,
		&m.Description,
		&m.InitialCost,
		&m.SalvageValue,
		&m.DepreciationMethod,
		&m.UsefulLifeMonths,
		&m.TotalUnits,
		&m.DepreciationStartDate,
		&assetAcct,
		&deprAcct,
		&expenseAcct,
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
		return models.AssetEntry{}, err
	}

	m.AssetAccountID = assetAcct.String
	m.DepreciationAccountID = deprAcct.String
	m.ExpenseAccountID = expenseAcct.String
	m.PostedBy = postedBy.String
	m.JournalEntryID = journalEntryID.String
	return m, nil
}

func (r *PgxEntryRepository) queryEntryRows(ctx context.Context, query string, args ...interface{}) ([]domain.AssetEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry documents: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.AssetEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}

	return mapping.ToDomainAssetEntrySlice(modelEntries), nil
}

// FindEntryByID retrieves an entry document by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.AssetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM asset_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry document %s: %w", entryID, err)
	}

	d := mapping.ToDomainAssetEntry(m)
	return &d, nil
}

// ListEntriesByAsset retrieves all entry documents for an asset.
func (r *PgxEntryRepository) ListEntriesByAsset(ctx context.Context, assetID string) ([]domain.AssetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM asset_entries WHERE asset_id = $1 ORDER BY entry_date;`
	return r.queryEntryRows(ctx, query, assetID)
}

// ListUnpostedEntries retrieves entry documents not yet posted.
func (r *PgxEntryRepository) ListUnpostedEntries(ctx context.Context) ([]domain.AssetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM asset_entries WHERE is_posted = FALSE ORDER BY entry_date;`
	return r.queryEntryRows(ctx, query)
}

// SaveEntry persists a new entry document.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.AssetEntry) error {
	m := mapping.ToModelAssetEntry(entry)

	query := `
		INSERT INTO asset_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`

	_, err := r.pool.Exec(ctx, query,
		m.EntryID,
		m.EntryNumber,
		m.AssetID,
		m.EntryDate,
		m.Description,
		m.InitialCost,
		m.SalvageValue,
		m.DepreciationMethod,
		m.UsefulLifeMonths,
		m.TotalUnits,
		m.DepreciationStartDate,
		nullString(m.AssetAccountID),
		nullString(m.DepreciationAccountID),
		nullString(m.ExpenseAccountID),
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
			return fmt.Errorf("%w: entry number %s already exists", apperrors.ErrDuplicate, m.EntryNumber)
		}
		return fmt.Errorf("failed to save entry document %s: %w", m.EntryID, err)
	}
	return nil
}

// MarkEntryPostedInTx flips the posting flag and stores the GL reference
// within the posting transaction.
func (r *PgxEntryRepository) MarkEntryPostedInTx(ctx context.Context, tx pgx.Tx, entryID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE asset_entries
		SET is_posted = TRUE, posted_date = $2, posted_by = $3, journal_entry_id = $4,
			last_updated_at = $2, last_updated_by = $3
		WHERE entry_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, entryID, postedAt, postedBy, nullString(journalEntryID))
	if err != nil {
		return fmt.Errorf("failed to mark entry %s posted: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
