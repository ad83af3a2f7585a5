package models

// ChartOfAccount is the database representation of a GL account reference.
type ChartOfAccount struct {
	AccountID   string `db:"account_id"`
	AccountCode string `db:"account_code"`
	Name        string `db:"name"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
