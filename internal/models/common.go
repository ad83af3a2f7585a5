package models

import "time"

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// PostingFields holds the posting columns shared by every transaction document.
type PostingFields struct {
	IsPosted       bool       `db:"is_posted"`
	PostedDate     *time.Time `db:"posted_date"`
	PostedBy       string     `db:"posted_by"`
	JournalEntryID string     `db:"journal_entry_id"`
}
