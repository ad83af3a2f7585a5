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
	"github.com/opsledger/fixed_asset_app/internal/utils/pagination"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for fixed asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryWithTx {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAssetRepository implements portsrepo.AssetRepositoryWithTx
var _ portsrepo.AssetRepositoryWithTx = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, asset_number, description, class_id, category, location, department,
	initial_cost, cost_adjustment, accumulated_depreciation, salvage_value,
	depreciation_method, useful_life_months, total_units, remaining_units,
	depreciation_start_date, last_depreciation_date, next_depreciation_date,
	asset_account_id, depreciation_account_id, expense_account_id,
	held_for_sale_account_id, construction_in_progress_account_id, capital_improvements_account_id,
	acquisition_date, activation_date, disposal_date,
	status, created_at, created_by, last_updated_at, last_updated_by`

// nullString wraps a possibly empty string for a nullable text column.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// scanAsset scans one asset row in assetColumns order.
func scanAsset(row pgx.Row) (models.FixedAsset, error) {
	var m models.FixedAsset
	var method, hfsAcct, cipAcct, impAcct sql.NullString

	err := row.Scan(
		&m.AssetID,
		&m.AssetNumber,
		&m.Description,
		&m.ClassID,
		&m.Category,
		&m.Location,
		&m.Department,
		&m.InitialCost,
		&m.CostAdjustment,
		&m.AccumulatedDepreciation,
		&m.SalvageValue,
		&method,
		&m.UsefulLifeMonths,
		&m.TotalUnits,
		&m.RemainingUnits,
		&m.DepreciationStartDate,
		&m.LastDepreciationDate,
		&m.NextDepreciationDate,
		&m.AssetAccountID,
		&m.DepreciationAccountID,
		&m.ExpenseAccountID,
		&hfsAcct,
		&cipAcct,
		&impAcct,
		&m.AcquisitionDate,
		&m.ActivationDate,
		&m.DisposalDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.FixedAsset{}, err
	}

	m.DepreciationMethod = method.String
	m.HeldForSaleAccountID = hfsAcct.String
	m.ConstructionInProgressAccountID = cipAcct.String
	m.CapitalImprovementsAccountID = impAcct.String
	return m, nil
}

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	m := mapping.ToModelFixedAsset(asset)

	query := `
		INSERT INTO fixed_assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.AssetID,
		m.AssetNumber,
		m.Description,
		m.ClassID,
		m.Category,
		m.Location,
		m.Department,
		m.InitialCost,
		m.CostAdjustment,
		m.AccumulatedDepreciation,
		m.SalvageValue,
		nullString(m.DepreciationMethod),
		m.UsefulLifeMonths,
		m.TotalUnits,
		m.RemainingUnits,
		m.DepreciationStartDate,
		m.LastDepreciationDate,
		m.NextDepreciationDate,
		m.AssetAccountID,
		m.DepreciationAccountID,
		m.ExpenseAccountID,
		nullString(m.HeldForSaleAccountID),
		nullString(m.ConstructionInProgressAccountID),
		nullString(m.CapitalImprovementsAccountID),
		m.AcquisitionDate,
		m.ActivationDate,
		m.DisposalDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: asset number %s already exists", apperrors.ErrDuplicate, m.AssetNumber)
		}
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1;`

	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}

	d := mapping.ToDomainFixedAsset(m)
	return &d, nil
}

// FindAssetByNumber retrieves an asset by its user-facing number.
func (r *PgxAssetRepository) FindAssetByNumber(ctx context.Context, assetNumber string) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_number = $1;`

	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by number %s: %w", assetNumber, err)
	}

	d := mapping.ToDomainFixedAsset(m)
	return &d, nil
}

// ListAssets retrieves a page of assets using keyset pagination on
// (created_at, asset_id) descending.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, limit int, nextToken *string) ([]domain.FixedAsset, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + assetColumns + ` FROM fixed_assets`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		createdAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE (created_at, asset_id) < ($1, $2)`
		args = append(args, createdAt, lastID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC, asset_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	modelAssets := []models.FixedAsset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		modelAssets = append(modelAssets, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating asset rows: %w", rows.Err())
	}

	var token *string
	if len(modelAssets) > limit {
		modelAssets = modelAssets[:limit]
		last := modelAssets[len(modelAssets)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.AssetID)
		token = &t
	}

	return mapping.ToDomainFixedAssetSlice(modelAssets), token, nil
}

// ListAssetsByStatus retrieves all assets in the given lifecycle status.
func (r *PgxAssetRepository) ListAssetsByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE status = $1 ORDER BY asset_number;`

	rows, err := r.Pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query assets by status %s: %w", status, err)
	}
	defer rows.Close()

	modelAssets := []models.FixedAsset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row for status %s: %w", status, err)
		}
		modelAssets = append(modelAssets, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating asset rows for status %s: %w", status, rows.Err())
	}

	return mapping.ToDomainFixedAssetSlice(modelAssets), nil
}

// FindAssetsNeedingDepreciation retrieves ACTIVE assets whose last
// depreciation date is unset or before the target period.
func (r *PgxAssetRepository) FindAssetsNeedingDepreciation(ctx context.Context, period time.Time) ([]domain.FixedAsset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM fixed_assets
		WHERE status = $1
		  AND (last_depreciation_date IS NULL OR last_depreciation_date < $2)
		ORDER BY asset_number;
	`

	rows, err := r.Pool.Query(ctx, query, string(domain.StatusActive), period)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets needing depreciation: %w", err)
	}
	defer rows.Close()

	modelAssets := []models.FixedAsset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row needing depreciation: %w", err)
		}
		modelAssets = append(modelAssets, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating asset rows needing depreciation: %w", rows.Err())
	}

	return mapping.ToDomainFixedAssetSlice(modelAssets), nil
}

const assetUpdateQuery = `
	UPDATE fixed_assets
	SET description = $2, category = $3, location = $4, department = $5,
		initial_cost = $6, cost_adjustment = $7, accumulated_depreciation = $8, salvage_value = $9,
		depreciation_method = $10, useful_life_months = $11, total_units = $12, remaining_units = $13,
		depreciation_start_date = $14, last_depreciation_date = $15, next_depreciation_date = $16,
		asset_account_id = $17, depreciation_account_id = $18, expense_account_id = $19,
		held_for_sale_account_id = $20, construction_in_progress_account_id = $21, capital_improvements_account_id = $22,
		acquisition_date = $23, activation_date = $24, disposal_date = $25,
		status = $26, last_updated_at = $27, last_updated_by = $28
	WHERE asset_id = $1;
`

// assetUpdateArgs builds the argument list for assetUpdateQuery.
// Asset number, class and creation audit fields are immutable.
func assetUpdateArgs(m models.FixedAsset) []interface{} {
	return []interface{}{
		m.AssetID,
		m.Description,
		m.Category,
		m.Location,
		m.Department,
		m.InitialCost,
		m.CostAdjustment,
		m.AccumulatedDepreciation,
		m.SalvageValue,
		nullString(m.DepreciationMethod),
		m.UsefulLifeMonths,
		m.TotalUnits,
		m.RemainingUnits,
		m.DepreciationStartDate,
		m.LastDepreciationDate,
		m.NextDepreciationDate,
		m.AssetAccountID,
		m.DepreciationAccountID,
		m.ExpenseAccountID,
		nullString(m.HeldForSaleAccountID),
		nullString(m.ConstructionInProgressAccountID),
		nullString(m.CapitalImprovementsAccountID),
		m.AcquisitionDate,
		m.ActivationDate,
		m.DisposalDate,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// UpdateAsset updates an existing asset.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.FixedAsset) error {
	m := mapping.ToModelFixedAsset(asset)

	cmdTag, err := r.Pool.Exec(ctx, assetUpdateQuery, assetUpdateArgs(m)...)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", m.AssetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAsset removes an asset. The service layer only allows this while the
// asset is NEW, before any documents reference it.
func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM fixed_assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAssetByIDForUpdate selects an asset and locks its row for the duration
// of the transaction.
func (r *PgxAssetRepository) FindAssetByIDForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1 FOR UPDATE;`

	m, err := scanAsset(tx.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset %s for update: %w", assetID, err)
	}

	d := mapping.ToDomainFixedAsset(m)
	return &d, nil
}

// UpdateAssetInTx updates an asset within the given transaction.
func (r *PgxAssetRepository) UpdateAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.FixedAsset) error {
	m := mapping.ToModelFixedAsset(asset)

	cmdTag, err := tx.Exec(ctx, assetUpdateQuery, assetUpdateArgs(m)...)
	if err != nil {
		return fmt.Errorf("failed to update asset %s in tx: %w", m.AssetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
