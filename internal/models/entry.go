package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetEntry is the database representation of an asset activation document.
type AssetEntry struct {
	EntryID     string    `db:"entry_id"`
	EntryNumber string    `db:"entry_number"`
	AssetID     string    `db:"asset_id"`
	EntryDate   time.Time `db:"entry_date"`
	Description string    `db:"description"`

	InitialCost           decimal.Decimal `db:"initial_cost"`
	SalvageValue          decimal.Decimal `db:"salvage_value"`
	DepreciationMethod    string          `db:"depreciation_method"`
	UsefulLifeMonths      int             `db:"useful_life_months"`
	TotalUnits            int             `db:"total_units"`
	DepreciationStartDate time.Time       `db:"depreciation_start_date"`

	AssetAccountID        string `db:"asset_account_id"`
	DepreciationAccountID string `db:"depreciation_account_id"`
	ExpenseAccountID      string `db:"expense_account_id"`

	PostingFields
	AuditFields
}
