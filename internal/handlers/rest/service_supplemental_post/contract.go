//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=service_supplemental_post_test
package service_supplemental_post

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
	AddSupplemental(ctx context.Context, params dispatch.AddSupplementalParams) (*entities.SupplementalAssignment, error)
}

type SupplementalCreateRequest struct {
	TruckID   *int64 `json:"truck_id"`
	TrailerID *int64 `json:"trailer_id"`
	DriverID  *int64 `json:"driver_id"`
	Notes     string `json:"notes"`
	Force     bool   `json:"force"`
}

type SupplementalResponse struct {
	ID           int64     `json:"id"`
	ServiceID    int64     `json:"service_id"`
	TruckID      *int64    `json:"truck_id,omitempty"`
	TruckPlate   string    `json:"truck_plate,omitempty"`
	TrailerID    *int64    `json:"trailer_id,omitempty"`
	TrailerPlate string    `json:"trailer_plate,omitempty"`
	DriverID     *int64    `json:"driver_id,omitempty"`
	DriverName   string    `json:"driver_name,omitempty"`
	Notes        string    `json:"notes"`
	AssignedBy   int64     `json:"assigned_by"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type ConflictResponse struct {
	Status    string   `json:"status"`
	Conflicts []string `json:"conflicts"`
}

// ValidationResponse — тело ответа 400 для дубликатов внутри сервиса:
// force такие ошибки не обходит.
type ValidationResponse struct {
	Status string   `json:"status"`
	Errors []string `json:"errors"`
}
