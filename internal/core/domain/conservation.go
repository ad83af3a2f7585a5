package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conservation suspends depreciation for an asset while preserving a snapshot
// of its balances at suspension time. Posting moves the asset to
// IN_CONSERVATION; cancellation returns it to ACTIVE.
type Conservation struct {
	ConservationID     string    `json:"conservationID"`
	ConservationNumber string    `json:"conservationNumber"`
	AssetID            string    `json:"assetID"`
	ConservationDate   time.Time `json:"conservationDate"`
	Reason             string    `json:"reason,omitempty"`
	Responsible        string    `json:"responsible,omitempty"`
	PlannedEndDate     *time.Time `json:"plannedEndDate,omitempty"`

	// Financial snapshot captured when conservation starts.
	GrossCostAtConservation               decimal.Decimal    `json:"grossCostAtConservation"`
	SalvageValueAtConservation            decimal.Decimal    `json:"salvageValueAtConservation"`
	AccumulatedDepreciationAtConservation decimal.Decimal    `json:"accumulatedDepreciationAtConservation"`
	NetBookValueAtConservation            decimal.Decimal    `json:"netBookValueAtConservation"`
	UsefulLifeMonthsAtConservation        int                `json:"usefulLifeMonthsAtConservation,omitempty"`
	DepreciationMethodAtConservation      DepreciationMethod `json:"depreciationMethodAtConservation,omitempty"`

	IsCancelled        bool       `json:"isCancelled"`
	CancellationDate   *time.Time `json:"cancellationDate,omitempty"`
	CancellationNumber string     `json:"cancellationNumber,omitempty"` // "CANCEL-" + ConservationNumber
	CancellationReason string     `json:"cancellationReason,omitempty"`

	PostingFields
	AuditFields
}
