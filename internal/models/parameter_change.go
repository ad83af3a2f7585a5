package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParameterChange is the database representation of a reassessment document.
type ParameterChange struct {
	ChangeID     string    `db:"change_id"`
	ChangeNumber string    `db:"change_number"`
	AssetID      string    `db:"asset_id"`
	ChangeDate   time.Time `db:"change_date"`
	ChangeType   string    `db:"change_type"`
	Reason       string    `db:"reason"`

	OldGrossCost               decimal.Decimal `db:"old_gross_cost"`
	OldSalvageValue            decimal.Decimal `db:"old_salvage_value"`
	OldUsefulLifeMonths        int             `db:"old_useful_life_months"`
	OldAccumulatedDepreciation decimal.Decimal `db:"old_accumulated_depreciation"`

	AdjustmentAmount    decimal.Decimal `db:"adjustment_amount"`
	NewUsefulLifeMonths int             `db:"new_useful_life_months"`
	NewSalvageValue     decimal.Decimal `db:"new_salvage_value"`

	PostingFields
	AuditFields
}
