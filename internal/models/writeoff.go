package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WriteOff is the database representation of a write-off document.
type WriteOff struct {
	WriteOffID     string    `db:"write_off_id"`
	WriteOffNumber string    `db:"write_off_number"`
	AssetID        string    `db:"asset_id"`
	WriteOffDate   time.Time `db:"write_off_date"`
	Reason         string    `db:"reason"`

	GrossCostAtWriteOff               decimal.Decimal `db:"gross_cost_at_write_off"`
	AccumulatedDepreciationAtWriteOff decimal.Decimal `db:"accumulated_depreciation_at_write_off"`
	NetBookValueAtWriteOff            decimal.Decimal `db:"net_book_value_at_write_off"`
	LossAmount                        decimal.Decimal `db:"loss_amount"`

	PostingFields
	AuditFields
}
