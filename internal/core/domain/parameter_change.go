package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParameterChangeType selects which asset parameter a reassessment targets.
type ParameterChangeType string

const (
	Impairment         ParameterChangeType = "IMPAIRMENT"
	Revaluation        ParameterChangeType = "REVALUATION"
	UsefulLifeChange   ParameterChangeType = "USEFUL_LIFE_CHANGE"
	SalvageValueChange ParameterChangeType = "SALVAGE_VALUE_CHANGE"
)

// ParameterChange is a reassessment document. The old values are captured at
// creation time; posting applies the change by type.
type ParameterChange struct {
	ChangeID     string              `json:"changeID"`
	ChangeNumber string              `json:"changeNumber"`
	AssetID      string              `json:"assetID"`
	ChangeDate   time.Time           `json:"changeDate"`
	ChangeType   ParameterChangeType `json:"changeType"`
	Reason       string              `json:"reason,omitempty"`

	// Old values snapshotted at creation.
	OldGrossCost               decimal.Decimal `json:"oldGrossCost"`
	OldSalvageValue            decimal.Decimal `json:"oldSalvageValue"`
	OldUsefulLifeMonths        int             `json:"oldUsefulLifeMonths,omitempty"`
	OldAccumulatedDepreciation decimal.Decimal `json:"oldAccumulatedDepreciation"`

	// New values, interpreted per ChangeType.
	AdjustmentAmount    decimal.Decimal `json:"adjustmentAmount"`              // IMPAIRMENT (negative) / REVALUATION (positive)
	NewUsefulLifeMonths int             `json:"newUsefulLifeMonths,omitempty"` // USEFUL_LIFE_CHANGE
	NewSalvageValue     decimal.Decimal `json:"newSalvageValue"`               // SALVAGE_VALUE_CHANGE

	PostingFields
	AuditFields
}
