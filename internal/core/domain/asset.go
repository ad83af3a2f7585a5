package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of a fixed asset. Transitions between
// statuses are governed exclusively by the table in lifecycle.go.
type AssetStatus string

const (
	StatusNew                    AssetStatus = "NEW"
	StatusConstructionInProgress AssetStatus = "CONSTRUCTION_IN_PROGRESS"
	StatusConstructionCompleted  AssetStatus = "CONSTRUCTION_COMPLETED"
	StatusActive                 AssetStatus = "ACTIVE"
	StatusInConservation         AssetStatus = "IN_CONSERVATION"
	StatusFullyDepreciated       AssetStatus = "FULLY_DEPRECIATED"
	StatusHeldForSale            AssetStatus = "HELD_FOR_SALE"
	StatusDisposed               AssetStatus = "DISPOSED"
	StatusWrittenOff             AssetStatus = "WRITTEN_OFF"
)

// DepreciationMethod selects the periodic depreciation calculation.
type DepreciationMethod string

const (
	StraightLine      DepreciationMethod = "STRAIGHT_LINE"
	UnitsOfProduction DepreciationMethod = "UNITS_OF_PRODUCTION"
)

// GLAccountRefs holds the six chart-of-account references attached to an asset.
// The core only validates presence and existence; accounting semantics live in
// the chart-of-accounts collaborator.
type GLAccountRefs struct {
	AssetAccountID                  string `json:"assetAccountID"`                  // Fixed assets at cost
	DepreciationAccountID           string `json:"depreciationAccountID"`           // Accumulated depreciation
	ExpenseAccountID                string `json:"expenseAccountID"`                // Depreciation expense
	HeldForSaleAccountID            string `json:"heldForSaleAccountID,omitempty"`  // Assets held for sale
	ConstructionInProgressAccountID string `json:"constructionInProgressAccountID,omitempty"`
	CapitalImprovementsAccountID    string `json:"capitalImprovementsAccountID,omitempty"`
}

// FixedAsset is the single source of truth for an asset's current financial
// and lifecycle state. All documents are append-only history referencing it.
type FixedAsset struct {
	AssetID     string `json:"assetID"`     // Primary key (UUID)
	AssetNumber string `json:"assetNumber"` // Unique, user-facing
	Description string `json:"description"`
	ClassID     string `json:"classID"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
	Department  string `json:"department,omitempty"`

	// Financial base fields. Gross cost and net book value are derived, never stored.
	InitialCost             decimal.Decimal `json:"initialCost"`
	CostAdjustment          decimal.Decimal `json:"costAdjustment"` // Cumulative improvements/impairments/revaluations
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	SalvageValue            decimal.Decimal `json:"salvageValue"`

	// Depreciation configuration
	DepreciationMethod DepreciationMethod `json:"depreciationMethod"`
	UsefulLifeMonths   int                `json:"usefulLifeMonths,omitempty"`
	TotalUnits         int                `json:"totalUnits,omitempty"`
	RemainingUnits     int                `json:"remainingUnits,omitempty"`

	// Depreciation tracking dates
	DepreciationStartDate *time.Time `json:"depreciationStartDate,omitempty"`
	LastDepreciationDate  *time.Time `json:"lastDepreciationDate,omitempty"`
	NextDepreciationDate  *time.Time `json:"nextDepreciationDate,omitempty"`

	GLAccounts GLAccountRefs `json:"glAccounts"`

	AcquisitionDate *time.Time `json:"acquisitionDate,omitempty"`
	ActivationDate  *time.Time `json:"activationDate,omitempty"`
	DisposalDate    *time.Time `json:"disposalDate,omitempty"`

	Status AssetStatus `json:"status"`
	AuditFields
}

// GrossCost is initial cost plus cumulative cost adjustments.
func (a *FixedAsset) GrossCost() decimal.Decimal {
	return a.InitialCost.Add(a.CostAdjustment)
}

// NetBookValue is gross cost minus accumulated depreciation.
func (a *FixedAsset) NetBookValue() decimal.Decimal {
	return a.GrossCost().Sub(a.AccumulatedDepreciation)
}

// DepreciableAmount is gross cost minus salvage value.
func (a *FixedAsset) DepreciableAmount() decimal.Decimal {
	return a.GrossCost().Sub(a.SalvageValue)
}

// IsFullyDepreciated reports whether NBV has reached the salvage floor.
func (a *FixedAsset) IsFullyDepreciated() bool {
	return a.NetBookValue().LessThanOrEqual(a.SalvageValue)
}
