package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationRecord is the database representation of one periodic
// depreciation calculation.
type DepreciationRecord struct {
	DepreciationID     string    `db:"depreciation_id"`
	DepreciationNumber string    `db:"depreciation_number"`
	AssetID            string    `db:"asset_id"`
	Period             time.Time `db:"period"`
	DepreciationDate   time.Time `db:"depreciation_date"`
	Description        string    `db:"description"`

	OpeningGrossCost               decimal.Decimal `db:"opening_gross_cost"`
	OpeningAccumulatedDepreciation decimal.Decimal `db:"opening_accumulated_depreciation"`
	OpeningNetBookValue            decimal.Decimal `db:"opening_net_book_value"`
	DepreciationAmount             decimal.Decimal `db:"depreciation_amount"`
	ClosingAccumulatedDepreciation decimal.Decimal `db:"closing_accumulated_depreciation"`
	ClosingNetBookValue            decimal.Decimal `db:"closing_net_book_value"`

	PostingFields
	AuditFields
}

// MonthlyUsage is the database representation of a units-of-production usage
// record, unique per (asset, period).
type MonthlyUsage struct {
	UsageID       string     `db:"usage_id"`
	AssetID       string     `db:"asset_id"`
	Period        time.Time  `db:"period"`
	UsageDate     time.Time  `db:"usage_date"`
	UnitsUsed     int        `db:"units_used"`
	Notes         string     `db:"notes"`
	IsProcessed   bool       `db:"is_processed"`
	ProcessedDate *time.Time `db:"processed_date"`
	AuditFields
}
