package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// PostingFields holds the post-at-most-once state shared by every transaction
// document. Posting is the only point at which a document mutates its asset.
type PostingFields struct {
	IsPosted       bool       `json:"isPosted"`
	PostedDate     *time.Time `json:"postedDate,omitempty"`
	PostedBy       string     `json:"postedBy,omitempty"`
	JournalEntryID string     `json:"journalEntryID,omitempty"` // Reference returned by the GL collaborator
}
