//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=service_audit_get_test
package service_audit_get

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AuditTrail(ctx context.Context, serviceID int64) ([]entities.AuditEntry, error)
}

type AuditEntryResponse struct {
	ID          int64     `json:"id"`
	ServiceID   int64     `json:"service_id"`
	ChangedBy   int64     `json:"changed_by"`
	ChangeType  string    `json:"change_type"`
	Field       string    `json:"field,omitempty"`
	OldValue    string    `json:"old_value,omitempty"`
	NewValue    string    `json:"new_value,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
