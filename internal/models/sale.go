package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalePreparation is the database representation of a held-for-sale
// reclassification document.
type SalePreparation struct {
	PreparationID     string    `db:"preparation_id"`
	PreparationNumber string    `db:"preparation_number"`
	AssetID           string    `db:"asset_id"`
	PreparationDate   time.Time `db:"preparation_date"`
	Reason            string    `db:"reason"`

	NetBookValueAtReclassification decimal.Decimal `db:"net_book_value_at_reclassification"`

	SaleID string `db:"sale_id"`

	PostingFields
	AuditFields
}

// Sale is the database representation of an asset sale document.
type Sale struct {
	SaleID        string    `db:"sale_id"`
	SaleNumber    string    `db:"sale_number"`
	AssetID       string    `db:"asset_id"`
	PreparationID string    `db:"preparation_id"`
	SaleDate      time.Time `db:"sale_date"`
	BuyerName     string    `db:"buyer_name"`

	SalePrice                     decimal.Decimal `db:"sale_price"`
	GrossCostAtSale               decimal.Decimal `db:"gross_cost_at_sale"`
	AccumulatedDepreciationAtSale decimal.Decimal `db:"accumulated_depreciation_at_sale"`
	NetBookValueAtSale            decimal.Decimal `db:"net_book_value_at_sale"`

	PostingFields
	AuditFields
}
