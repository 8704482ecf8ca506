package audit

import "time"

type AuditEntryDB struct {
	ID          int64
	ServiceID   int64
	ChangedBy   int64
	ChangeType  string
	Field       string
	OldValue    string
	NewValue    string
	Description string
	CreatedAt   time.Time
}
