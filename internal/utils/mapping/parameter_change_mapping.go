package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelParameterChange converts a domain ParameterChange to its model
func ToModelParameterChange(d domain.ParameterChange) models.ParameterChange {
	return models.ParameterChange{
		ChangeID:     d.ChangeID,
		ChangeNumber: d.ChangeNumber,
		AssetID:      d.AssetID,
		ChangeDate:   d.ChangeDate,
		ChangeType:   string(d.ChangeType),
		Reason:       d.Reason,

		OldGrossCost:               d.OldGrossCost,
		OldSalvageValue:            d.OldSalvageValue,
		OldUsefulLifeMonths:        d.OldUsefulLifeMonths,
		OldAccumulatedDepreciation: d.OldAccumulatedDepreciation,

		AdjustmentAmount:    d.AdjustmentAmount,
		NewUsefulLifeMonths: d.NewUsefulLifeMonths,
		NewSalvageValue:     d.NewSalvageValue,

		PostingFields: ToModelPostingFields(d.PostingFields),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParameterChange converts a model ParameterChange to its domain
func ToDomainParameterChange(m models.ParameterChange) domain.ParameterChange {
	return domain.ParameterChange{
		ChangeID:     m.ChangeID,
		ChangeNumber: m.ChangeNumber,
		AssetID:      m.AssetID,
		ChangeDate:   m.ChangeDate,
		ChangeType:   domain.ParameterChangeType(m.ChangeType),
		Reason:       m.Reason,

		OldGrossCost:               m.OldGrossCost,
		OldSalvageValue:            m.OldSalvageValue,
		OldUsefulLifeMonths:        m.OldUsefulLifeMonths,
		OldAccumulatedDepreciation: m.OldAccumulatedDepreciation,

		AdjustmentAmount:    m.AdjustmentAmount,
		NewUsefulLifeMonths: m.NewUsefulLifeMonths,
		NewSalvageValue:     m.NewSalvageValue,

		PostingFields: ToDomainPostingFields(m.PostingFields),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainParameterChangeSlice converts a slice of model changes to domain.
func ToDomainParameterChangeSlice(ms []models.ParameterChange) []domain.ParameterChange {
	ds := make([]domain.ParameterChange, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParameterChange(m)
	}
	return ds
}
