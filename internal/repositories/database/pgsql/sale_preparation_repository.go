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

type PgxSalePreparationRepository struct {
	pool *pgxpool.Pool
}

// newPgxSalePreparationRepository creates a new repository for sale preparation documents.
func newPgxSalePreparationRepository(pool *pgxpool.Pool) portsrepo.SalePreparationRepositoryFacade {
	return &PgxSalePreparationRepository{pool: pool}
}

// Ensure PgxSalePreparationRepository implements portsrepo.SalePreparationRepositoryFacade
var _ portsrepo.SalePreparationRepositoryFacade = (*PgxSalePreparationRepository)(nil)

const salePreparationColumns = `preparation_id, preparation_number, asset_id, preparation_date, reason,
	net_book_value_at_reclassification, sale_id,
	is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSalePreparation(row pgx.Row) (models.SalePreparation, error) {
	var m models.SalePreparation
	var saleID, postedBy, journalEntryID sql.NullString

	err := row.Scan(
		&m.PreparationID,
		&m.PreparationNumber,
		&m.AssetID,
		&m.PreparationDate,
		&m.Reason,
		&m.NetBookValueAtReclassification,
		&saleID,
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
		return models.SalePreparation{}, err
	}

	m.SaleID = saleID.String
	m.PostedBy = postedBy.String
	m.JournalEntryID = journalEntryID.String
	return m, nil
}

func (r *PgxSalePreparationRepository) querySalePreparationRows(ctx context.Context, query string, args ...interface{}) ([]domain.SalePreparation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale preparation documents: %w", err)
	}
	defer rows.Close()

	modelPreparations := []models.SalePreparation{}
	for rows.Next() {
		m, err := scanSalePreparation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale preparation row: %w", err)
		}
		modelPreparations = append(modelPreparations, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale preparation rows: %w", rows.Err())
	}

	return mapping.ToDomainSalePreparationSlice(modelPreparations), nil
}

// FindSalePreparationByID retrieves a sale preparation by its ID.
func (r *PgxSalePreparationRepository) FindSalePreparationByID(ctx context.Context, preparationID string) (*domain.SalePreparation, error) {
	query := `SELECT ` + salePreparationColumns + ` FROM sale_preparations WHERE preparation_id = $1;`

	m, err := scanSalePreparation(r.pool.QueryRow(ctx, query, preparationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale preparation %s: %w", preparationID, err)
	}

	d := mapping.ToDomainSalePreparation(m)
	return &d, nil
}

// ListSalePreparationsByAsset retrieves all sale preparations for an asset.
func (r *PgxSalePreparationRepository) ListSalePreparationsByAsset(ctx context.Context, assetID string) ([]domain.SalePreparation, error) {
	query := `SELECT ` + salePreparationColumns + ` FROM sale_preparations WHERE asset_id = $1 ORDER BY preparation_date;`
	return r.querySalePreparationRows(ctx, query, assetID)
}

// ListPendingSales retrieves posted preparations without a linked actual sale.
func (r *PgxSalePreparationRepository) ListPendingSales(ctx context.Context) ([]domain.SalePreparation, error) {
	query := `SELECT ` + salePreparationColumns + ` FROM sale_preparations WHERE is_posted = TRUE AND sale_id IS NULL ORDER BY preparation_date;`
	return r.querySalePreparationRows(ctx, query)
}

// SaveSalePreparation persists a new sale preparation document.
func (r *PgxSalePreparationRepository) SaveSalePreparation(ctx context.Context, preparation domain.SalePreparation) error {
	m := mapping.ToModelSalePreparation(preparation)

	query := `
		INSERT INTO sale_preparations (` + salePreparationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	_, err := r.pool.Exec(ctx, query,
		m.PreparationID,
		m.PreparationNumber,
		m.AssetID,
		m.PreparationDate,
		m.Reason,
		m.NetBookValueAtReclassification,
		nullString(m.SaleID),
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
			return fmt.Errorf("%w: preparation number %s already exists", apperrors.ErrDuplicate, m.PreparationNumber)
		}
		return fmt.Errorf("failed to save sale preparation %s: %w", m.PreparationID, err)
	}
	return nil
}

// MarkSalePreparationPostedInTx flips the posting flag and stores the GL
// reference within the posting transaction.
func (r *PgxSalePreparationRepository) MarkSalePreparationPostedInTx(ctx context.Context, tx pgx.Tx, preparationID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE sale_preparations
		SET is_posted = TRUE, posted_date = $2, posted_by = $3, journal_entry_id = $4,
			last_updated_at = $2, last_updated_by = $3
		WHERE preparation_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, preparationID, postedAt, postedBy, nullString(journalEntryID))
	if err != nil {
		return fmt.Errorf("failed to mark sale preparation %s posted: %w", preparationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkSalePreparationCancelledInTx reverts a preparation within the
// cancellation transaction.
func (r *PgxSalePreparationRepository) MarkSalePreparationCancelledInTx(ctx context.Context, tx pgx.Tx, preparationID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE sale_preparations
		SET is_posted = FALSE, posted_date = NULL, posted_by = NULL, journal_entry_id = NULL,
			last_updated_at = $2, last_updated_by = $3
		WHERE preparation_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, preparationID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark sale preparation %s cancelled: %w", preparationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LinkActualSale stores the id of the sale created from this preparation.
func (r *PgxSalePreparationRepository) LinkActualSale(ctx context.Context, preparationID string, saleID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE sale_preparations
		SET sale_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE preparation_id = $1;
	`

	cmdTag, err := r.pool.Exec(ctx, query, preparationID, nullString(saleID), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to link sale %s to preparation %s: %w", saleID, preparationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
