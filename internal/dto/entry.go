package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest carries the data to create an asset entry document.
// The entry establishes the financial setup of the asset; balances only move
// when the document is posted.
type CreateEntryRequest struct {
	EntryNumber           string                    `json:"entryNumber" binding:"required"`
	AssetID               string                    `json:"assetID" binding:"required"`
	EntryDate             time.Time                 `json:"entryDate" binding:"required"`
	Description           string                    `json:"description"`
	InitialCost           decimal.Decimal           `json:"initialCost" binding:"required"`
	SalvageValue          decimal.Decimal           `json:"salvageValue"`
	DepreciationMethod    domain.DepreciationMethod `json:"depreciationMethod" binding:"required,oneof=STRAIGHT_LINE UNITS_OF_PRODUCTION"`
	UsefulLifeMonths      int                       `json:"usefulLifeMonths"`
	TotalUnits            int                       `json:"totalUnits"`
	DepreciationStartDate *time.Time                `json:"depreciationStartDate"`

	// Optional GL account overrides. When empty the asset's own accounts apply.
	AssetAccountID        string `json:"assetAccountID"`
	DepreciationAccountID string `json:"depreciationAccountID"`
	ExpenseAccountID      string `json:"expenseAccountID"`
}

// EntryResponse is the API representation of an asset entry document.
type EntryResponse struct {
	EntryID               string                    `json:"entryID"`
	EntryNumber           string                    `json:"entryNumber"`
	AssetID               string                    `json:"assetID"`
	EntryDate             time.Time                 `json:"entryDate"`
	Description           string                    `json:"description,omitempty"`
	InitialCost           decimal.Decimal           `json:"initialCost"`
	SalvageValue          decimal.Decimal           `json:"salvageValue"`
	DepreciationMethod    domain.DepreciationMethod `json:"depreciationMethod"`
	UsefulLifeMonths      int                       `json:"usefulLifeMonths,omitempty"`
	TotalUnits            int                       `json:"totalUnits,omitempty"`
	DepreciationStartDate time.Time                 `json:"depreciationStartDate"`
	IsPosted              bool                      `json:"isPosted"`
	PostedDate            *time.Time                `json:"postedDate,omitempty"`
	JournalEntryID        string                    `json:"journalEntryID,omitempty"`
	CreatedAt             time.Time                 `json:"createdAt"`
}

// ToEntryResponse converts a domain AssetEntry to its API representation.
func ToEntryResponse(e *domain.AssetEntry) EntryResponse {
	return EntryResponse{
		EntryID:               e.EntryID,
		EntryNumber:           e.EntryNumber,
		AssetID:               e.AssetID,
		EntryDate:             e.EntryDate,
		Description:           e.Description,
		InitialCost:           e.InitialCost,
		SalvageValue:          e.SalvageValue,
		DepreciationMethod:    e.DepreciationMethod,
		UsefulLifeMonths:      e.UsefulLifeMonths,
		TotalUnits:            e.TotalUnits,
		DepreciationStartDate: e.DepreciationStartDate,
		IsPosted:              e.IsPosted,
		PostedDate:            e.PostedDate,
		JournalEntryID:        e.JournalEntryID,
		CreatedAt:             e.CreatedAt,
	}
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.AssetEntry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}
