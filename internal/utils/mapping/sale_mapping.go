package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelSalePreparation converts a domain SalePreparation to its model
func ToModelSalePreparation(d domain.SalePreparation) models.SalePreparation {
	return models.SalePreparation{
		PreparationID:     d.PreparationID,
		PreparationNumber: d.PreparationNumber,
		AssetID:           d.AssetID,
		PreparationDate:   d.PreparationDate,
		Reason:            d.Reason,

		NetBookValueAtReclassification: d.NetBookValueAtReclassification,

		SaleID: d.SaleID,

		PostingFields: ToModelPostingFields(d.PostingFields),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalePreparation converts a model SalePreparation to its domain
func ToDomainSalePreparation(m models.SalePreparation) domain.SalePreparation {
	return domain.SalePreparation{
		PreparationID:     m.PreparationID,
		PreparationNumber: m.PreparationNumber,
		AssetID:           m.AssetID,
		PreparationDate:   m.PreparationDate,
		Reason:            m.Reason,

		NetBookValueAtReclassification: m.NetBookValueAtReclassification,

		SaleID: m.SaleID,

		PostingFields: ToDomainPostingFields(m.PostingFields),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSalePreparationSlice converts a slice of model preparations to domain.
func ToDomainSalePreparationSlice(ms []models.SalePreparation) []domain.SalePreparation {
	ds := make([]domain.SalePreparation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalePreparation(m)
	}
	return ds
}

// ToModelSale converts a domain Sale to its model
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:        d.SaleID,
		SaleNumber:    d.SaleNumber,
		AssetID:       d.AssetID,
		PreparationID: d.PreparationID,
		SaleDate:      d.SaleDate,
		BuyerName:     d.BuyerName,

		SalePrice:                     d.SalePrice,
		GrossCostAtSale:               d.GrossCostAtSale,
		AccumulatedDepreciationAtSale: d.AccumulatedDepreciationAtSale,
		NetBookValueAtSale:            d.NetBookValueAtSale,

		PostingFields: ToModelPostingFields(d.PostingFields),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to its domain
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:        m.SaleID,
		SaleNumber:    m.SaleNumber,
		AssetID:       m.AssetID,
		PreparationID: m.PreparationID,
		SaleDate:      m.SaleDate,
		BuyerName:     m.BuyerName,

		SalePrice:                     m.SalePrice,
		GrossCostAtSale:               m.GrossCostAtSale,
		AccumulatedDepreciationAtSale: m.AccumulatedDepreciationAtSale,
		NetBookValueAtSale:            m.NetBookValueAtSale,

		PostingFields: ToDomainPostingFields(m.PostingFields),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSaleSlice converts a slice of model sales to domain.
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
