package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelPostingFields converts a domain PostingFields to a model PostingFields
func ToModelPostingFields(d domain.PostingFields) models.PostingFields {
	return models.PostingFields{
		IsPosted:       d.IsPosted,
		PostedDate:     d.PostedDate,
		PostedBy:       d.PostedBy,
		JournalEntryID: d.JournalEntryID,
	}
}

// ToDomainPostingFields converts a model PostingFields to a domain PostingFields
func ToDomainPostingFields(m models.PostingFields) domain.PostingFields {
	return domain.PostingFields{
		IsPosted:       m.IsPosted,
		PostedDate:     m.PostedDate,
		PostedBy:       m.PostedBy,
		JournalEntryID: m.JournalEntryID,
	}
}
