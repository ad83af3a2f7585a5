package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetEntry is the activation document for a fixed asset. Posting copies the
// financial setup onto the asset and transitions it to ACTIVE.
type AssetEntry struct {
	EntryID     string    `json:"entryID"`
	EntryNumber string    `json:"entryNumber"`
	AssetID     string    `json:"assetID"`
	EntryDate   time.Time `json:"entryDate"`
	Description string    `json:"description,omitempty"`

	InitialCost           decimal.Decimal    `json:"initialCost"`
	SalvageValue          decimal.Decimal    `json:"salvageValue"`
	DepreciationMethod    DepreciationMethod `json:"depreciationMethod"`
	UsefulLifeMonths      int                `json:"usefulLifeMonths,omitempty"`
	TotalUnits            int                `json:"totalUnits,omitempty"`
	DepreciationStartDate time.Time          `json:"depreciationStartDate"`

	// Optional overrides for the asset's default GL accounts.
	AssetAccountID        string `json:"assetAccountID,omitempty"`
	DepreciationAccountID string `json:"depreciationAccountID,omitempty"`
	ExpenseAccountID      string `json:"expenseAccountID,omitempty"`

	PostingFields
	AuditFields
}
