package domain

// ChartOfAccount is the minimal view of a GL account the asset core needs.
// The full chart-of-accounts module lives outside this service; here an
// account is only ever checked for presence and active state.
type ChartOfAccount struct {
	AccountID   string `json:"accountID"`
	AccountCode string `json:"accountCode"`
	Name        string `json:"name"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
