package booking_cancelled

import (
	"context"

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

// cancelledEvent — событие booking.cancelled из внешней системы бронирования.
type cancelledEvent struct {
	ServiceID   int64  `json:"service_id"`
	CancelledBy int64  `json:"cancelled_by"`
	Reason      string `json:"reason"`
}
