package mapping

import (
	"github.com/opsledger/fixed_asset_app/internal/core/domain"
	"github.com/opsledger/fixed_asset_app/internal/models"
)

// ToModelChartOfAccount converts a domain ChartOfAccount to a model ChartOfAccount
func ToModelChartOfAccount(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		AccountID:   d.AccountID,
		AccountCode: d.AccountCode,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChartOfAccount converts a model ChartOfAccount to a domain ChartOfAccount
func ToDomainChartOfAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
