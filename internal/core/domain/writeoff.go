package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WriteOff removes an asset from the books without proceeds. The loss equals
// the net book value at write-off time. Posting transitions the asset to
// WRITTEN_OFF and fully depreciates it.
type WriteOff struct {
	WriteOffID     string    `json:"writeOffID"`
	WriteOffNumber string    `json:"writeOffNumber"`
	AssetID        string    `json:"assetID"`
	WriteOffDate   time.Time `json:"writeOffDate"`
	Reason         string    `json:"reason,omitempty"`

	GrossCostAtWriteOff               decimal.Decimal `json:"grossCostAtWriteOff"`
	AccumulatedDepreciationAtWriteOff decimal.Decimal `json:"accumulatedDepreciationAtWriteOff"`
	NetBookValueAtWriteOff            decimal.Decimal `json:"netBookValueAtWriteOff"`
	LossAmount                        decimal.Decimal `json:"lossAmount"`

	PostingFields
	AuditFields
}
