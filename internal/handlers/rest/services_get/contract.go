//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=services_get_test
package services_get

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
	ListServices(ctx context.Context, filter entities.ServiceFilter) ([]entities.Service, error)
}

type ServiceResponse struct {
	ID            int64      `json:"id"`
	ClientID      int64      `json:"client_id"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	TentativeDate time.Time  `json:"tentative_date"`
	Cargo         string     `json:"cargo"`
	Weight        float64    `json:"weight"`
	Price         float64    `json:"price"`
	Currency      string     `json:"currency"`
	DriverID      *int64     `json:"driver_id,omitempty"`
	DriverName    string     `json:"driver_name,omitempty"`
	TractorID     *int64     `json:"tractor_id,omitempty"`
	TractorPlate  string     `json:"tractor_plate,omitempty"`
	TrailerID     *int64     `json:"trailer_id,omitempty"`
	TrailerPlate  string     `json:"trailer_plate,omitempty"`
	Status        string     `json:"status"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
