package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalePreparation reclassifies an asset as held for sale. Posting moves the
// asset to HELD_FOR_SALE; cancellation reverts it to ACTIVE provided no actual
// sale has been linked.
type SalePreparation struct {
	PreparationID     string    `json:"preparationID"`
	PreparationNumber string    `json:"preparationNumber"`
	AssetID           string    `json:"assetID"`
	PreparationDate   time.Time `json:"preparationDate"`
	Reason            string    `json:"reason,omitempty"`

	NetBookValueAtReclassification decimal.Decimal `json:"netBookValueAtReclassification"`

	SaleID string `json:"saleID,omitempty"` // Linked actual sale, set when the sale is created

	PostingFields
	AuditFields
}

// Sale disposes of a held-for-sale asset. Posting transitions the asset to
// DISPOSED and fully depreciates it.
type Sale struct {
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

	PostingFields
	AuditFields
}

// GainLoss is sale price minus net book value at sale.
func (s *Sale) GainLoss() decimal.Decimal {
	return s.SalePrice.Sub(s.NetBookValueAtSale)
}
