//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=service_status_post_test
package service_status_post

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ChangeStatus(ctx context.Context, params dispatch.ChangeStatusParams) (*entities.Service, error)
}

type StatusChangeRequest struct {
	Status string     `json:"status"`
	Notes  string     `json:"notes"`
	At     *time.Time `json:"at"`
}

type StatusChangeResponse struct {
	ID        int64      `json:"id"`
	Status    string     `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}
