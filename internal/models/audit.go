package models

import "time"

// AuditFields holds standard timestamps for persisted records.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	LastUpdatedAt time.Time `db:"last_updated_at" json:"lastUpdatedAt"`
}
