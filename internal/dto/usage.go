package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
)

// RecordUsageRequest records units consumed by a units-of-production asset in
// one period.
type RecordUsageRequest struct {
	AssetID   string    `json:"assetID" binding:"required"`
	Period    time.Time `json:"period" binding:"required"`
	UsageDate time.Time `json:"usageDate" binding:"required"`
	UnitsUsed int       `json:"unitsUsed" binding:"required,gt=0"`
	Notes     string    `json:"notes"`
}

// UsageResponse is the API representation of a monthly usage record.
type UsageResponse struct {
	UsageID       string     `json:"usageID"`
	AssetID       string     `json:"assetID"`
	Period        time.Time  `json:"period"`
	UsageDate     time.Time  `json:"usageDate"`
	UnitsUsed     int        `json:"unitsUsed"`
	Notes         string     `json:"notes,omitempty"`
	IsProcessed   bool       `json:"isProcessed"`
	ProcessedDate *time.Time `json:"processedDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToUsageResponse converts a domain MonthlyUsage to its API representation.
func ToUsageResponse(u *domain.MonthlyUsage) UsageResponse {
	return UsageResponse{
		UsageID:       u.UsageID,
		AssetID:       u.AssetID,
		Period:        u.Period,
		UsageDate:     u.UsageDate,
		UnitsUsed:     u.UnitsUsed,
		Notes:         u.Notes,
		IsProcessed:   u.IsProcessed,
		ProcessedDate: u.ProcessedDate,
		CreatedAt:     u.CreatedAt,
	}
}

// ToUsageResponses converts a slice of domain usage records.
func ToUsageResponses(items []domain.MonthlyUsage) []UsageResponse {
	out := make([]UsageResponse, len(items))
	for i := range items {
		out[i] = ToUsageResponse(&items[i])
	}
	return out
}
