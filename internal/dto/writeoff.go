package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWriteOffRequest removes an asset from the books without proceeds.
type CreateWriteOffRequest struct {
	WriteOffNumber string    `json:"writeOffNumber" binding:"required"`
	AssetID        string    `json:"assetID" binding:"required"`
	WriteOffDate   time.Time `json:"writeOffDate" binding:"required"`
	Reason         string    `json:"reason" binding:"required"`
}

// WriteOffResponse is the API representation of a write-off document.
type WriteOffResponse struct {
	WriteOffID     string    `json:"writeOffID"`
	WriteOffNumber string    `json:"writeOffNumber"`
	AssetID        string    `json:"assetID"`
	WriteOffDate   time.Time `json:"writeOffDate"`
	Reason         string    `json:"reason,omitempty"`

	GrossCostAtWriteOff               decimal.Decimal `json:"grossCostAtWriteOff"`
	AccumulatedDepreciationAtWriteOff decimal.Decimal `json:"accumulatedDepreciationAtWriteOff"`
	NetBookValueAtWriteOff            decimal.Decimal `json:"netBookValueAtWriteOff"`
	LossAmount                        decimal.Decimal `json:"lossAmount"`

	IsPosted       bool       `json:"isPosted"`
	PostedDate     *time.Time `json:"postedDate,omitempty"`
	JournalEntryID string     `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ToWriteOffResponse converts a domain WriteOff to its API representation.
func ToWriteOffResponse(w *domain.WriteOff) WriteOffResponse {
	return WriteOffResponse{
		WriteOffID:     w.WriteOffID,
		WriteOffNumber: w.WriteOffNumber,
		AssetID:        w.AssetID,
		WriteOffDate:   w.WriteOffDate,
		Reason:         w.Reason,

		GrossCostAtWriteOff:               w.GrossCostAtWriteOff,
		AccumulatedDepreciationAtWriteOff: w.AccumulatedDepreciationAtWriteOff,
		NetBookValueAtWriteOff:            w.NetBookValueAtWriteOff,
		LossAmount:                        w.LossAmount,

		IsPosted:       w.IsPosted,
		PostedDate:     w.PostedDate,
		JournalEntryID: w.JournalEntryID,
		CreatedAt:      w.CreatedAt,
	}
}

// ToWriteOffResponses converts a slice of domain write-offs.
func ToWriteOffResponses(items []domain.WriteOff) []WriteOffResponse {
	out := make([]WriteOffResponse, len(items))
	for i := range items {
		out[i] = ToWriteOffResponse(&items[i])
	}
	return out
}
