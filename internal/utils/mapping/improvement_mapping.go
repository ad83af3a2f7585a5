package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelCapitalImprovement converts a domain CapitalImprovement to its model
func ToModelCapitalImprovement(d domain.CapitalImprovement) models.CapitalImprovement {
	return models.CapitalImprovement{
		ImprovementID:     d.ImprovementID,
		ImprovementNumber: d.ImprovementNumber,
		AssetID:           d.AssetID,
		ImprovementDate:   d.ImprovementDate,
		Description:       d.Description,

		ImprovementCost:         d.ImprovementCost,
		ExtendsUsefulLifeMonths: d.ExtendsUsefulLifeMonths,
		IncreasesSalvageValue:   d.IncreasesSalvageValue,

		PostingFields: ToModelPostingFields(d.PostingFields),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCapitalImprovement converts a model CapitalImprovement to its domain
func ToDomainCapitalImprovement(m models.CapitalImprovement) domain.CapitalImprovement {
	return domain.CapitalImprovement{
		ImprovementID:     m.ImprovementID,
		ImprovementNumber: m.ImprovementNumber,
		AssetID:           m.AssetID,
		ImprovementDate:   m.ImprovementDate,
		Description:       m.Description,

		ImprovementCost:         m.ImprovementCost,
		ExtendsUsefulLifeMonths: m.ExtendsUsefulLifeMonths,
		IncreasesSalvageValue:   m.IncreasesSalvageValue,

		PostingFields: ToDomainPostingFields(m.PostingFields),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCapitalImprovementSlice converts a slice of model improvements to domain.
func ToDomainCapitalImprovementSlice(ms []models.CapitalImprovement) []domain.CapitalImprovement {
	ds := make([]domain.CapitalImprovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCapitalImprovement(m)
	}
	return ds
}
