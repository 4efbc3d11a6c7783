package models

import "time"

// AuditFields holds standard audit timestamps as stored in the database.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
