package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelConservation converts a domain Conservation to its model
func ToModelConservation(d domain.Conservation) models.Conservation {
	return models.Conservation{
		ConservationID:     d.ConservationID,
		ConservationNumber: d.ConservationNumber,
		AssetID:            d.AssetID,
		ConservationDate:   d.ConservationDate,
		Reason:             d.Reason,
		Responsible:        d.Responsible,
		PlannedEndDate:     d.PlannedEndDate,

		GrossCostAtConservation:               d.GrossCostAtConservation,
		SalvageValueAtConservation:            d.SalvageValueAtConservation,
		AccumulatedDepreciationAtConservation: d.AccumulatedDepreciationAtConservation,
		NetBookValueAtConservation:            d.NetBookValueAtConservation,
		UsefulLifeMonthsAtConservation:        d.UsefulLifeMonthsAtConservation,
		DepreciationMethodAtConservation:      string(d.DepreciationMethodAtConservation),

		IsCancelled:        d.IsCancelled,
		CancellationDate:   d.CancellationDate,
		CancellationNumber: d.CancellationNumber,
		CancellationReason: d.CancellationReason,

		PostingFields: ToModelPostingFields(d.PostingFields),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConservation converts a model Conservation to its domain
func ToDomainConservation(m models.Conservation) domain.Conservation {
	return domain.Conservation{
		ConservationID:     m.ConservationID,
		ConservationNumber: m.ConservationNumber,
		AssetID:            m.AssetID,
		ConservationDate:   m.ConservationDate,
		Reason:             m.Reason,
		Responsible:        m.Responsible,
		PlannedEndDate:     m.PlannedEndDate,

		GrossCostAtConservation:               m.GrossCostAtConservation,
		SalvageValueAtConservation:            m.SalvageValueAtConservation,
		AccumulatedDepreciationAtConservation: m.AccumulatedDepreciationAtConservation,
		NetBookValueAtConservation:            m.NetBookValueAtConservation,
		UsefulLifeMonthsAtConservation:        m.UsefulLifeMonthsAtConservation,
		DepreciationMethodAtConservation:      domain.DepreciationMethod(m.DepreciationMethodAtConservation),

		IsCancelled:        m.IsCancelled,
		CancellationDate:   m.CancellationDate,
		CancellationNumber: m.CancellationNumber,
		CancellationReason: m.CancellationReason,

		PostingFields: ToDomainPostingFields(m.PostingFields),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainConservationSlice converts a slice of model conservations to domain.
func ToDomainConservationSlice(ms []models.Conservation) []domain.Conservation {
	ds := make([]domain.Conservation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConservation(m)
	}
	return ds
}
