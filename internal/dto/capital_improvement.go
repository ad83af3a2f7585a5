package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateImprovementRequest creates a capital improvement document for an
// active asset.
type CreateImprovementRequest struct {
	ImprovementNumber       string          `json:"improvementNumber" binding:"required"`
	AssetID                 string          `json:"assetID" binding:"required"`
	ImprovementDate         time.Time       `json:"improvementDate" binding:"required"`
	Description             string          `json:"description"`
	ImprovementCost         decimal.Decimal `json:"improvementCost" binding:"required"`
	ExtendsUsefulLifeMonths int             `json:"extendsUsefulLifeMonths"`
	IncreasesSalvageValue   decimal.Decimal `json:"increasesSalvageValue"`
}

// ImprovementResponse is the API representation of a capital improvement.
type ImprovementResponse struct {
	ImprovementID           string          `json:"improvementID"`
	ImprovementNumber       string          `json:"improvementNumber"`
	AssetID                 string          `json:"assetID"`
	ImprovementDate         time.Time       `json:"improvementDate"`
	Description             string          `json:"description,omitempty"`
	ImprovementCost         decimal.Decimal `json:"improvementCost"`
	ExtendsUsefulLifeMonths int             `json:"extendsUsefulLifeMonths,omitempty"`
	IncreasesSalvageValue   decimal.Decimal `json:"increasesSalvageValue"`
	IsPosted                bool            `json:"isPosted"`
	PostedDate              *time.Time      `json:"postedDate,omitempty"`
	JournalEntryID          string          `json:"journalEntryID,omitempty"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// ToImprovementResponse converts a domain CapitalImprovement to its API
// representation.
func ToImprovementResponse(ci *domain.CapitalImprovement) ImprovementResponse {
	return ImprovementResponse{
		ImprovementID:           ci.ImprovementID,
		ImprovementNumber:       ci.ImprovementNumber,
		AssetID:                 ci.AssetID,
		ImprovementDate:         ci.ImprovementDate,
		Description:             ci.Description,
		ImprovementCost:         ci.ImprovementCost,
		ExtendsUsefulLifeMonths: ci.ExtendsUsefulLifeMonths,
		IncreasesSalvageValue:   ci.IncreasesSalvageValue,
		IsPosted:                ci.IsPosted,
		PostedDate:              ci.PostedDate,
		JournalEntryID:          ci.JournalEntryID,
		CreatedAt:               ci.CreatedAt,
	}
}

// ToImprovementResponses converts a slice of domain improvements.
func ToImprovementResponses(items []domain.CapitalImprovement) []ImprovementResponse {
	out := make([]ImprovementResponse, len(items))
	for i := range items {
		out[i] = ToImprovementResponse(&items[i])
	}
	return out
}
