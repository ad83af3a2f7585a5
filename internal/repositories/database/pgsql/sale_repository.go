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

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// newPgxSaleRepository creates a new repository for sale documents.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{pool: pool}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, sale_number, asset_id, preparation_id, sale_date, buyer_name,
	sale_price, gross_cost_at_sale, accumulated_depreciation_at_sale, net_book_value_at_sale,
	is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	var preparationID, postedBy, journalEntryID sql.NullString

	err := row.Scan(
		&m.SaleID,
		&m.SaleNumber,
		&m.AssetID,
		&preparationID,
		&m.SaleDate,
		&m.BuyerName,
		&m.SalePrice,
		&m.GrossCostAtSale,
		&m.AccumulatedDepreciationAtSale,
		&m.NetBookValueAtSale,
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
		return models.Sale{}, err
	}

	m.PreparationID = preparationID.String
	m.PostedBy = postedBy.String
	m.JournalEntryID = journalEntryID.String
	return m, nil
}

func (r *PgxSaleRepository) querySaleRows(ctx context.Context, query string, args ...interface{}) ([]domain.Sale, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale documents: %w", err)
	}
	defer rows.Close()

	modelSales := []models.Sale{}
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		modelSales = append(modelSales, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}

	return mapping.ToDomainSaleSlice(modelSales), nil
}

// FindSaleByID retrieves a sale document by its ID.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`

	m, err := scanSale(r.pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale document %s: %w", saleID, err)
	}

	d := mapping.ToDomainSale(m)
	return &d, nil
}

// ListSalesByAsset retrieves all sale documents for an asset.
func (r *PgxSaleRepository) ListSalesByAsset(ctx context.Context, assetID string) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE asset_id = $1 ORDER BY sale_date;`
	return r.querySaleRows(ctx, query, assetID)
}

// ListUnpostedSales retrieves sale documents not yet posted.
func (r *PgxSaleRepository) ListUnpostedSales(ctx context.Context) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE is_posted = FALSE ORDER BY sale_date;`
	return r.querySaleRows(ctx, query)
}

// SaveSale persists a new sale document.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)

	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	_, err := r.pool.Exec(ctx, query,
		m.SaleID,
		m.SaleNumber,
		m.AssetID,
		nullString(m.PreparationID),
		m.SaleDate,
		m.BuyerName,
		m.SalePrice,
		m.GrossCostAtSale,
		m.AccumulatedDepreciationAtSale,
		m.NetBookValueAtSale,
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
			return fmt.Errorf("%w: sale number %s already exists", apperrors.ErrDuplicate, m.SaleNumber)
		}
		return fmt.Errorf("failed to save sale document %s: %w", m.SaleID, err)
	}
	return nil
}

// MarkSalePostedInTx flips the posting flag and stores the GL reference
// within the posting transaction.
func (r *PgxSaleRepository) MarkSalePostedInTx(ctx context.Context, tx pgx.Tx, saleID string, journalEntryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE sales
		SET is_posted = TRUE, posted_date = $2, posted_by = $3, journal_entry_id = $4,
			last_updated_at = $2, last_updated_by = $3
		WHERE sale_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, query, saleID, postedAt, postedBy, nullString(journalEntryID))
	if err != nil {
		return fmt.Errorf("failed to mark sale %s posted: %w", saleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
