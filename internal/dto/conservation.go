package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StartConservationRequest creates a conservation document for an asset.
type StartConservationRequest struct {
	ConservationNumber string     `json:"conservationNumber" binding:"required"`
	AssetID            string     `json:"assetID" binding:"required"`
	ConservationDate   time.Time  `json:"conservationDate" binding:"required"`
	Reason             string     `json:"reason"`
	Responsible        string     `json:"responsible"`
	PlannedEndDate     *time.Time `json:"plannedEndDate"`
}

// CancelConservationRequest ends a conservation and returns the asset to
// active service.
type CancelConservationRequest struct {
	CancellationDate time.Time `json:"cancellationDate" binding:"required"`
	Reason           string    `json:"reason"`
}

// ConservationResponse is the API representation of a conservation document.
type ConservationResponse struct {
	ConservationID     string     `json:"conservationID"`
	ConservationNumber string     `json:"conservationNumber"`
	AssetID            string     `json:"assetID"`
	ConservationDate   time.Time  `json:"conservationDate"`
	Reason             string     `json:"reason,omitempty"`
	Responsible        string     `json:"responsible,omitempty"`
	PlannedEndDate     *time.Time `json:"plannedEndDate,omitempty"`

	GrossCostAtConservation               decimal.Decimal `json:"grossCostAtConservation"`
	SalvageValueAtConservation            decimal.Decimal `json:"salvageValueAtConservation"`
	AccumulatedDepreciationAtConservation decimal.Decimal `json:"accumulatedDepreciationAtConservation"`
	NetBookValueAtConservation            decimal.Decimal `json:"netBookValueAtConservation"`

	IsCancelled        bool       `json:"isCancelled"`
	CancellationDate   *time.Time `json:"cancellationDate,omitempty"`
	CancellationNumber string     `json:"cancellationNumber,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`

	IsPosted       bool       `json:"isPosted"`
	PostedDate     *time.Time `json:"postedDate,omitempty"`
	JournalEntryID string     `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ToConservationResponse converts a domain Conservation to its API
// representation.
func ToConservationResponse(c *domain.Conservation) ConservationResponse {
	return ConservationResponse{
		ConservationID:     c.ConservationID,
		ConservationNumber: c.ConservationNumber,
		AssetID:            c.AssetID,
		ConservationDate:   c.ConservationDate,
		Reason:             c.Reason,
		Responsible:        c.Responsible,
		PlannedEndDate:     c.PlannedEndDate,

		GrossCostAtConservation:               c.GrossCostAtConservation,
		SalvageValueAtConservation:            c.SalvageValueAtConservation,
		AccumulatedDepreciationAtConservation: c.AccumulatedDepreciationAtConservation,
		NetBookValueAtConservation:            c.NetBookValueAtConservation,

		IsCancelled:        c.IsCancelled,
		CancellationDate:   c.CancellationDate,
		CancellationNumber: c.CancellationNumber,
		CancellationReason: c.CancellationReason,

		IsPosted:       c.IsPosted,
		PostedDate:     c.PostedDate,
		JournalEntryID: c.JournalEntryID,
		CreatedAt:      c.CreatedAt,
	}
}

// ToConservationResponses converts a slice of domain conservations.
func ToConservationResponses(items []domain.Conservation) []ConservationResponse {
	out := make([]ConservationResponse, len(items))
	for i := range items {
		out[i] = ToConservationResponse(&items[i])
	}
	return out
}
