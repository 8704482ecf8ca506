//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=service_assign_post_test
package service_assign_post

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
	AssignPrimary(ctx context.Context, params dispatch.AssignPrimaryParams) (*entities.Service, error)
}

type ServiceAssignRequest struct {
	DriverID  int64  `json:"driver_id"`
	TractorID int64  `json:"tractor_id"`
	TrailerID *int64 `json:"trailer_id"`
	Notes     string `json:"notes"`
	Force     bool   `json:"force"`
}

type ServiceAssignResponse struct {
	ID           int64      `json:"id"`
	Status       string     `json:"status"`
	DriverID     *int64     `json:"driver_id,omitempty"`
	DriverName   string     `json:"driver_name,omitempty"`
	TractorID    *int64     `json:"tractor_id,omitempty"`
	TractorPlate string     `json:"tractor_plate,omitempty"`
	TrailerID    *int64     `json:"trailer_id,omitempty"`
	TrailerPlate string     `json:"trailer_plate,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
}

// ConflictResponse — тело ответа 409: полный список конфликтов, чтобы
// вызывающий увидел их все сразу и мог осознанно повторить с force=true.
type ConflictResponse struct {
	Status    string   `json:"status"`
	Conflicts []string `json:"conflicts"`
}
