package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelDepreciationRecord converts a domain DepreciationRecord to its model
func ToModelDepreciationRecord(d domain.DepreciationRecord) models.DepreciationRecord {
	return models.DepreciationRecord{
		DepreciationID:     d.DepreciationID,
		DepreciationNumber: d.DepreciationNumber,
		AssetID:            d.AssetID,
		Period:             d.Period,
		DepreciationDate:   d.DepreciationDate,
		Description:        d.Description,

		OpeningGrossCost:               d.OpeningGrossCost,
		OpeningAccumulatedDepreciation: d.OpeningAccumulatedDepreciation,
		OpeningNetBookValue:            d.OpeningNetBookValue,
		DepreciationAmount:             d.DepreciationAmount,
		ClosingAccumulatedDepreciation: d.ClosingAccumulatedDepreciation,
		ClosingNetBookValue:            d.ClosingNetBookValue,

		PostingFields: ToModelPostingFields(d.PostingFields),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepreciationRecord converts a model DepreciationRecord to its domain
func ToDomainDepreciationRecord(m models.DepreciationRecord) domain.DepreciationRecord {
	return domain.DepreciationRecord{
		DepreciationID:     m.DepreciationID,
		DepreciationNumber: m.DepreciationNumber,
		AssetID:            m.AssetID,
		Period:             m.Period,
		DepreciationDate:   m.DepreciationDate,
		Description:        m.Description,

		OpeningGrossCost:               m.OpeningGrossCost,
		OpeningAccumulatedDepreciation: m.OpeningAccumulatedDepreciation,
		OpeningNetBookValue:            m.OpeningNetBookValue,
		DepreciationAmount:             m.DepreciationAmount,
		ClosingAccumulatedDepreciation: m.ClosingAccumulatedDepreciation,
		ClosingNetBookValue:            m.ClosingNetBookValue,

		PostingFields: ToDomainPostingFields(m.PostingFields),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepreciationRecordSlice converts a slice of model records to domain records.
func ToDomainDepreciationRecordSlice(ms []models.DepreciationRecord) []domain.DepreciationRecord {
	ds := make([]domain.DepreciationRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepreciationRecord(m)
	}
	return ds
}

// ToModelMonthlyUsage converts a domain MonthlyUsage to its model
func ToModelMonthlyUsage(d domain.MonthlyUsage) models.MonthlyUsage {
	return models.MonthlyUsage{
		UsageID:       d.UsageID,
		AssetID:       d.AssetID,
		Period:        d.Period,
		UsageDate:     d.UsageDate,
		UnitsUsed:     d.UnitsUsed,
		Notes:         d.Notes,
		IsProcessed:   d.IsProcessed,
		ProcessedDate: d.ProcessedDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMonthlyUsage converts a model MonthlyUsage to its domain
func ToDomainMonthlyUsage(m models.MonthlyUsage) domain.MonthlyUsage {
	return domain.MonthlyUsage{
		UsageID:       m.UsageID,
		AssetID:       m.AssetID,
		Period:        m.Period,
		UsageDate:     m.UsageDate,
		UnitsUsed:     m.UnitsUsed,
		Notes:         m.Notes,
		IsProcessed:   m.IsProcessed,
		ProcessedDate: m.ProcessedDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMonthlyUsageSlice converts a slice of model usage records to domain.
func ToDomainMonthlyUsageSlice(ms []models.MonthlyUsage) []domain.MonthlyUsage {
	ds := make([]domain.MonthlyUsage, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthlyUsage(m)
	}
	return ds
}
