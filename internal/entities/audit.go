package entities

import "time"

type AuditChangeType string

const (
	AuditCreated      AuditChangeType = "CREATED"
	AuditAssignment   AuditChangeType = "ASSIGNMENT"
	AuditStatusChange AuditChangeType = "STATUS_CHANGE"
	AuditAdminUpdate  AuditChangeType = "ADMIN_UPDATE"
)

func (t AuditChangeType) String() string {
	return string(t)
}

// AuditEntry — append-only запись об изменении сервиса.
// Никогда не обновляется и не удаляется.
type AuditEntry struct {
	ID          int64
	ServiceID   int64
	ChangedBy   int64
	ChangeType  AuditChangeType
	Field       string
	OldValue    string
	NewValue    string
	Description string
	CreatedAt   time.Time
}
