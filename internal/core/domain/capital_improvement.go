package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalImprovement adds cost to an active asset, optionally extending its
// useful life and raising its salvage value.
type CapitalImprovement struct {
	ImprovementID     string    `json:"improvementID"`
	ImprovementNumber string    `json:"improvementNumber"`
	AssetID           string    `json:"assetID"`
	ImprovementDate   time.Time `json:"improvementDate"`
	Description       string    `json:"description,omitempty"`

	ImprovementCost         decimal.Decimal `json:"improvementCost"`
	ExtendsUsefulLifeMonths int             `json:"extendsUsefulLifeMonths,omitempty"`
	IncreasesSalvageValue   decimal.Decimal `json:"increasesSalvageValue"`

	PostingFields
	AuditFields
}
