package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelFixedAsset converts a domain FixedAsset to a model FixedAsset,
// flattening the GL account references into columns.
func ToModelFixedAsset(d domain.FixedAsset) models.FixedAsset {
	return models.FixedAsset{
		AssetID:     d.AssetID,
		AssetNumber: d.AssetNumber,
		Description: d.Description,
		ClassID:     d.ClassID,
		Category:    d.Category,
		Location:    d.Location,
		Department:  d.Department,

		InitialCost:             d.InitialCost,
		CostAdjustment:          d.CostAdjustment,
		AccumulatedDepreciation: d.AccumulatedDepreciation,
		SalvageValue:            d.SalvageValue,

		DepreciationMethod: string(d.DepreciationMethod),
		UsefulLifeMonths:   d.UsefulLifeMonths,
		TotalUnits:         d.TotalUnits,
		RemainingUnits:     d.RemainingUnits,

		DepreciationStartDate: d.DepreciationStartDate,
		LastDepreciationDate:  d.LastDepreciationDate,
		NextDepreciationDate:  d.NextDepreciationDate,

		AssetAccountID:                  d.GLAccounts.AssetAccountID,
		DepreciationAccountID:           d.GLAccounts.DepreciationAccountID,
		ExpenseAccountID:                d.GLAccounts.ExpenseAccountID,
		HeldForSaleAccountID:            d.GLAccounts.HeldForSaleAccountID,
		ConstructionInProgressAccountID: d.GLAccounts.ConstructionInProgressAccountID,
		CapitalImprovementsAccountID:    d.GLAccounts.CapitalImprovementsAccountID,

		AcquisitionDate: d.AcquisitionDate,
		ActivationDate:  d.ActivationDate,
		DisposalDate:    d.DisposalDate,

		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixedAsset converts a model FixedAsset to a domain FixedAsset.
func ToDomainFixedAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:     m.AssetID,
		AssetNumber: m.AssetNumber,
		Description: m.Description,
		ClassID:     m.ClassID,
		Category:    m.Category,
		Location:    m.Location,
		Department:  m.Department,

		InitialCost:             m.InitialCost,
		CostAdjustment:          m.CostAdjustment,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		SalvageValue:            m.SalvageValue,

		DepreciationMethod: domain.DepreciationMethod(m.DepreciationMethod),
		UsefulLifeMonths:   m.UsefulLifeMonths,
		TotalUnits:         m.TotalUnits,
		RemainingUnits:     m.RemainingUnits,

		DepreciationStartDate: m.DepreciationStartDate,
		LastDepreciationDate:  m.LastDepreciationDate,
		NextDepreciationDate:  m.NextDepreciationDate,

		GLAccounts: domain.GLAccountRefs{
			AssetAccountID:                  m.AssetAccountID,
			DepreciationAccountID:           m.DepreciationAccountID,
			ExpenseAccountID:                m.ExpenseAccountID,
			HeldForSaleAccountID:            m.HeldForSaleAccountID,
			ConstructionInProgressAccountID: m.ConstructionInProgressAccountID,
			CapitalImprovementsAccountID:    m.CapitalImprovementsAccountID,
		},

		AcquisitionDate: m.AcquisitionDate,
		ActivationDate:  m.ActivationDate,
		DisposalDate:    m.DisposalDate,

		Status:      domain.AssetStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFixedAssetSlice converts a slice of model assets to domain assets.
func ToDomainFixedAssetSlice(ms []models.FixedAsset) []domain.FixedAsset {
	ds := make([]domain.FixedAsset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFixedAsset(m)
	}
	return ds
}
