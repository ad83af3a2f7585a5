package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateDepreciationRequest asks for a single asset's depreciation for one
// period. The period is normalized to the first day of its month.
type CalculateDepreciationRequest struct {
	AssetID string    `json:"assetID" binding:"required"`
	Period  time.Time `json:"period" binding:"required"`
}

// BatchDepreciationRequest runs depreciation for every eligible asset in a
// period.
type BatchDepreciationRequest struct {
	Period time.Time `json:"period" binding:"required"`
}

// DepreciationResponse is the API representation of a depreciation record.
type DepreciationResponse struct {
	DepreciationID      string          `json:"depreciationID"`
	DepreciationNumber  string          `json:"depreciationNumber"`
	AssetID             string          `json:"assetID"`
	Period              time.Time       `json:"period"`
	DepreciationDate    time.Time       `json:"depreciationDate"`
	Description         string          `json:"description,omitempty"`
	OpeningGrossCost    decimal.Decimal `json:"openingGrossCost"`
	OpeningAccumulated  decimal.Decimal `json:"openingAccumulatedDepreciation"`
	OpeningNetBookValue decimal.Decimal `json:"openingNetBookValue"`
	DepreciationAmount  decimal.Decimal `json:"depreciationAmount"`
	ClosingAccumulated  decimal.Decimal `json:"closingAccumulatedDepreciation"`
	ClosingNetBookValue decimal.Decimal `json:"closingNetBookValue"`
	IsPosted            bool            `json:"isPosted"`
	PostedDate          *time.Time      `json:"postedDate,omitempty"`
	JournalEntryID      string          `json:"journalEntryID,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// BatchFailure reports a single asset the batch run could not depreciate.
type BatchFailure struct {
	AssetID     string `json:"assetID"`
	AssetNumber string `json:"assetNumber,omitempty"`
	Reason      string `json:"reason"`
}

// BatchDepreciationResponse summarizes a batch depreciation run. Failures on
// individual assets do not abort the run.
type BatchDepreciationResponse struct {
	Period        time.Time              `json:"period"`
	ProcessedAt   time.Time              `json:"processedAt"`
	SuccessCount  int                    `json:"successCount"`
	FailureCount  int                    `json:"failureCount"`
	TotalAmount   decimal.Decimal        `json:"totalAmount"`
	Depreciations []DepreciationResponse `json:"depreciations"`
	Failures      []BatchFailure         `json:"failures,omitempty"`
}

// ToDepreciationResponse converts a domain DepreciationRecord to its API
// representation.
func ToDepreciationResponse(d *domain.DepreciationRecord) DepreciationResponse {
	return DepreciationResponse{
		DepreciationID:      d.DepreciationID,
		DepreciationNumber:  d.DepreciationNumber,
		AssetID:             d.AssetID,
		Period:              d.Period,
		DepreciationDate:    d.DepreciationDate,
		Description:         d.Description,
		OpeningGrossCost:    d.OpeningGrossCost,
		OpeningAccumulated:  d.OpeningAccumulatedDepreciation,
		OpeningNetBookValue: d.OpeningNetBookValue,
		DepreciationAmount:  d.DepreciationAmount,
		ClosingAccumulated:  d.ClosingAccumulatedDepreciation,
		ClosingNetBookValue: d.ClosingNetBookValue,
		IsPosted:            d.IsPosted,
		PostedDate:          d.PostedDate,
		JournalEntryID:      d.JournalEntryID,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDepreciationResponses converts a slice of domain depreciation records.
func ToDepreciationResponses(records []domain.DepreciationRecord) []DepreciationResponse {
	out := make([]DepreciationResponse, len(records))
	for i := range records {
		out[i] = ToDepreciationResponse(&records[i])
	}
	return out
}
