package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalImprovement is the database representation of an improvement document.
type CapitalImprovement struct {
	ImprovementID     string    `db:"improvement_id"`
	ImprovementNumber string    `db:"improvement_number"`
	AssetID           string    `db:"asset_id"`
	ImprovementDate   time.Time `db:"improvement_date"`
	Description       string    `db:"description"`

	ImprovementCost         decimal.Decimal `db:"improvement_cost"`
	ExtendsUsefulLifeMonths int             `db:"extends_useful_life_months"`
	IncreasesSalvageValue   decimal.Decimal `db:"increases_salvage_value"`

	PostingFields
	AuditFields
}
