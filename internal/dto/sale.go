package dto

import (
	"time"

	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalePreparationRequest reclassifies an asset as held for sale.
type CreateSalePreparationRequest struct {
	PreparationNumber string    `json:"preparationNumber" binding:"required"`
	AssetID           string    `json:"assetID" binding:"required"`
	PreparationDate   time.Time `json:"preparationDate" binding:"required"`
	Reason            string    `json:"reason"`
}

// SalePreparationResponse is the API representation of a sale preparation.
type SalePreparationResponse struct {
	PreparationID     string    `json:"preparationID"`
	PreparationNumber string    `json:"preparationNumber"`
	AssetID           string    `json:"assetID"`
	PreparationDate   time.Time `json:"preparationDate"`
	Reason            string    `json:"reason,omitempty"`

	NetBookValueAtReclassification decimal.Decimal `json:"netBookValueAtReclassification"`
	SaleID                         string          `json:"saleID,omitempty"`

	IsPosted       bool       `json:"isPosted"`
	PostedDate     *time.Time `json:"postedDate,omitempty"`
	JournalEntryID string     `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// CreateSaleRequest records the actual sale of a held-for-sale asset.
type CreateSaleRequest struct {
	SaleNumber    string          `json:"saleNumber" binding:"required"`
	AssetID       string          `json:"assetID" binding:"required"`
	PreparationID string          `json:"preparationID"`
	SaleDate      time.Time       `json:"saleDate" binding:"required"`
	BuyerName     string          `json:"buyerName"`
	SalePrice     decimal.Decimal `json:"salePrice" binding:"required"`
}

// SaleResponse is the API representation of a sale document, including the
// derived gain or loss.
type SaleResponse struct {
	SaleID        string    `json:"saleID"`
	SaleNumber    string    `json:"saleNumber"`
	AssetID       string    `json:"assetID"`
	PreparationID string    `json:"preparationID,omitempty"`
	SaleDate      time.Time `json:"saleDate"`
	BuyerName     string    `json:"buyerName,omitempty"`

	SalePrice                     decimal.Decimal `json:"salePrice"`
	GrossCostAtSale               decimal.Decimal `json:"grossCostAtSale"`
	AccumulatedDepreciationAtSale decimal.Decimal `json:"accumulatedDepreciationAtSale"`
	NetBookValueAtSale            decimal.Decimal `json:"netBookValueAtSale"`
	GainLoss                      decimal.Decimal `json:"gainLoss"`

	IsPosted       bool       `json:"isPosted"`
	PostedDate     *time.Time `json:"postedDate,omitempty"`
	JournalEntryID string     `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ToSalePreparationResponse converts a domain SalePreparation to its API
// representation.
func ToSalePreparationResponse(sp *domain.SalePreparation) SalePreparationResponse {
	return SalePreparationResponse{
		PreparationID:     sp.PreparationID,
		PreparationNumber: sp.PreparationNumber,
		AssetID:           sp.AssetID,
		PreparationDate:   sp.PreparationDate,
		Reason:            sp.Reason,

		NetBookValueAtReclassification: sp.NetBookValueAtReclassification,
		SaleID:                         sp.SaleID,

		IsPosted:       sp.IsPosted,
		PostedDate:     sp.PostedDate,
		JournalEntryID: sp.JournalEntryID,
		CreatedAt:      sp.CreatedAt,
	}
}

// ToSalePreparationResponses converts a slice of domain sale preparations.
func ToSalePreparationResponses(items []domain.SalePreparation) []SalePreparationResponse {
	out := make([]SalePreparationResponse, len(items))
	for i := range items {
		out[i] = ToSalePreparationResponse(&items[i])
	}
	return out
}

// ToSaleResponse converts a domain Sale to its API representation.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		SaleNumber:    s.SaleNumber,
		AssetID:       s.AssetID,
		PreparationID: s.PreparationID,
		SaleDate:      s.SaleDate,
		BuyerName:     s.BuyerName,

		SalePrice:                     s.SalePrice,
		GrossCostAtSale:               s.GrossCostAtSale,
		AccumulatedDepreciationAtSale: s.AccumulatedDepreciationAtSale,
		NetBookValueAtSale:            s.NetBookValueAtSale,
		GainLoss:                      s.GainLoss(),

		IsPosted:       s.IsPosted,
		PostedDate:     s.PostedDate,
		JournalEntryID: s.JournalEntryID,
		CreatedAt:      s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of domain sales.
func ToSaleResponses(items []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, len(items))
	for i := range items {
		out[i] = ToSaleResponse(&items[i])
	}
	return out
}
