package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelAssetEntry converts a domain AssetEntry to a model AssetEntry
func ToModelAssetEntry(d domain.AssetEntry) models.AssetEntry {
	return models.AssetEntry{
		EntryID:     d.EntryID,
		EntryNumber: d.EntryNumber,
		AssetID:     d.AssetID,
		EntryDate:   d.EntryDate,
		Description: d.Description,

		InitialCost:           d.InitialCost,
		SalvageValue:          d.SalvageValue,
		DepreciationMethod:    string(d.DepreciationMethod),
		UsefulLifeMonths:      d.UsefulLifeMonths,
		TotalUnits:            d.TotalUnits,
		DepreciationStartDate: d.DepreciationStartDate,

		AssetAccountID:        d.AssetAccountID,
		DepreciationAccountID: d.DepreciationAccountID,
		ExpenseAccountID:      d.ExpenseAccountID,

		PostingFields: ToModelPostingFields(d.PostingFields),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssetEntry converts a model AssetEntry to a domain AssetEntry
func ToDomainAssetEntry(m models.AssetEntry) domain.AssetEntry {
	return domain.AssetEntry{
		EntryID:     m.EntryID,
		EntryNumber: m.EntryNumber,
		AssetID:     m.AssetID,
		EntryDate:   m.EntryDate,
		Description: m.Description,

		InitialCost:           m.InitialCost,
		SalvageValue:          m.SalvageValue,
		DepreciationMethod:    domain.DepreciationMethod(m.DepreciationMethod),
		UsefulLifeMonths:      m.UsefulLifeMonths,
		TotalUnits:            m.TotalUnits,
		DepreciationStartDate: m.DepreciationStartDate,

		AssetAccountID:        m.AssetAccountID,
		DepreciationAccountID: m.DepreciationAccountID,
		ExpenseAccountID:      m.ExpenseAccountID,

		PostingFields: ToDomainPostingFields(m.PostingFields),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssetEntrySlice converts a slice of model entries to domain entries.
func ToDomainAssetEntrySlice(ms []models.AssetEntry) []domain.AssetEntry {
	ds := make([]domain.AssetEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssetEntry(m)
	}
	return ds
}
