package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset is the database representation of a fixed asset. GL account
// references are flattened into columns; gross cost and net book value are
// derived and never stored.
type FixedAsset struct {
	AssetID     string `db:"asset_id"`
	AssetNumber string `db:"asset_number"`
	Description string `db:"description"`
	ClassID     string `db:"class_id"`
	Category    string `db:"category"`
	Location    string `db:"location"`
	Department  string `db:"department"`

	InitialCost             decimal.Decimal `db:"initial_cost"`
	CostAdjustment          decimal.Decimal `db:"cost_adjustment"`
	AccumulatedDepreciation decimal.Decimal `db:"accumulated_depreciation"`
	SalvageValue            decimal.Decimal `db:"salvage_value"`

	DepreciationMethod string `db:"depreciation_method"`
	UsefulLifeMonths   int    `db:"useful_life_months"`
	TotalUnits         int    `db:"total_units"`
	RemainingUnits     int    `db:"remaining_units"`

	DepreciationStartDate *time.Time `db:"depreciation_start_date"`
	LastDepreciationDate  *time.Time `db:"last_depreciation_date"`
	NextDepreciationDate  *time.Time `db:"next_depreciation_date"`

	AssetAccountID                  string `db:"asset_account_id"`
	DepreciationAccountID           string `db:"depreciation_account_id"`
	ExpenseAccountID                string `db:"expense_account_id"`
	HeldForSaleAccountID            string `db:"held_for_sale_account_id"`
	ConstructionInProgressAccountID string `db:"construction_in_progress_account_id"`
	CapitalImprovementsAccountID    string `db:"capital_improvements_account_id"`

	AcquisitionDate *time.Time `db:"acquisition_date"`
	ActivationDate  *time.Time `db:"activation_date"`
	DisposalDate    *time.Time `db:"disposal_date"`

	Status string `db:"status"`
	AuditFields
}
