package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationRecord is the immutable result of one periodic depreciation
// calculation. Keyed uniquely by (asset, period); never mutated after creation
// except to flip the posting flag.
type DepreciationRecord struct {
	DepreciationID     string    `json:"depreciationID"`
	DepreciationNumber string    `json:"depreciationNumber"`
	AssetID            string    `json:"assetID"`
	Period             time.Time `json:"period"` // Normalized to first day of month
	DepreciationDate   time.Time `json:"depreciationDate"`
	Description        string    `json:"description"`

	OpeningGrossCost               decimal.Decimal `json:"openingGrossCost"`
	OpeningAccumulatedDepreciation decimal.Decimal `json:"openingAccumulatedDepreciation"`
	OpeningNetBookValue            decimal.Decimal `json:"openingNetBookValue"`
	DepreciationAmount             decimal.Decimal `json:"depreciationAmount"`
	ClosingAccumulatedDepreciation decimal.Decimal `json:"closingAccumulatedDepreciation"`
	ClosingNetBookValue            decimal.Decimal `json:"closingNetBookValue"`

	PostingFields
	AuditFields
}

// MonthlyUsage records units consumed by one asset in one period, for the
// units-of-production method. Unique per (asset, period). Once processed it
// has decremented the asset's remaining units exactly once.
type MonthlyUsage struct {
	UsageID       string     `json:"usageID"`
	AssetID       string     `json:"assetID"`
	Period        time.Time  `json:"period"` // Normalized to first day of month
	UsageDate     time.Time  `json:"usageDate"`
	UnitsUsed     int        `json:"unitsUsed"`
	Notes         string     `json:"notes,omitempty"`
	IsProcessed   bool       `json:"isProcessed"`
	ProcessedDate *time.Time `json:"processedDate,omitempty"`
	AuditFields
}

// NormalizePeriod truncates a date to the first day of its month. Period
// uniqueness and ordering checks all operate on normalized periods.
func NormalizePeriod(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfNextMonth returns the last day of the month following the given period.
// Used to schedule the next depreciation date after a calculation.
func EndOfNextMonth(period time.Time) time.Time {
	firstOfNext := NormalizePeriod(period).AddDate(0, 2, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
