package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conservation is the database representation of a depreciation suspension
// document, including the balance snapshot taken at suspension time.
type Conservation struct {
	ConservationID     string     `db:"conservation_id"`
	ConservationNumber string     `db:"conservation_number"`
	AssetID            string     `db:"asset_id"`
	ConservationDate   time.Time  `db:"conservation_date"`
	Reason             string     `db:"reason"`
	Responsible        string     `db:"responsible"`
	PlannedEndDate     *time.Time `db:"planned_end_date"`

	GrossCostAtConservation               decimal.Decimal `db:"gross_cost_at_conservation"`
	SalvageValueAtConservation            decimal.Decimal `db:"salvage_value_at_conservation"`
	AccumulatedDepreciationAtConservation decimal.Decimal `db:"accumulated_depreciation_at_conservation"`
	NetBookValueAtConservation            decimal.Decimal `db:"net_book_value_at_conservation"`
	UsefulLifeMonthsAtConservation        int             `db:"useful_life_months_at_conservation"`
	DepreciationMethodAtConservation      string          `db:"depreciation_method_at_conservation"`

	IsCancelled        bool       `db:"is_cancelled"`
	CancellationDate   *time.Time `db:"cancellation_date"`
	CancellationNumber string     `db:"cancellation_number"`
	CancellationReason string     `db:"cancellation_reason"`

	PostingFields
	AuditFields
}
