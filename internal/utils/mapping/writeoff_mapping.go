package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelWriteOff converts a domain WriteOff to its model
func ToModelWriteOff(d domain.WriteOff) models.WriteOff {
	return models.WriteOff{
		WriteOffID:     d.WriteOffID,
		WriteOffNumber: d.WriteOffNumber,
		AssetID:        d.AssetID,
		WriteOffDate:   d.WriteOffDate,
		Reason:         d.Reason,

		GrossCostAtWriteOff:               d.GrossCostAtWriteOff,
		AccumulatedDepreciationAtWriteOff: d.AccumulatedDepreciationAtWriteOff,
		NetBookValueAtWriteOff:            d.NetBookValueAtWriteOff,
		LossAmount:                        d.LossAmount,

		PostingFields: ToModelPostingFields(d.PostingFields),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWriteOff converts a model WriteOff to its domain
func ToDomainWriteOff(m models.WriteOff) domain.WriteOff {
	return domain.WriteOff{
		WriteOffID:     m.WriteOffID,
		WriteOffNumber: m.WriteOffNumber,
		AssetID:        m.AssetID,
		WriteOffDate:   m.WriteOffDate,
		Reason:         m.Reason,

		GrossCostAtWriteOff:               m.GrossCostAtWriteOff,
		AccumulatedDepreciationAtWriteOff: m.AccumulatedDepreciationAtWriteOff,
		NetBookValueAtWriteOff:            m.NetBookValueAtWriteOff,
		LossAmount:                        m.LossAmount,

		PostingFields: ToDomainPostingFields(m.PostingFields),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWriteOffSlice converts a slice of model write-offs to domain.
func ToDomainWriteOffSlice(ms []models.WriteOff) []domain.WriteOff {
	ds := make([]domain.WriteOff, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWriteOff(m)
	}
	return ds
}
