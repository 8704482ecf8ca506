//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=service_post_test
package service_post

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
	CreateService(ctx context.Context, params dispatch.CreateServiceParams) (*entities.Service, error)
}

type ServiceCreateRequest struct {
	ClientID      int64     `json:"client_id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	TentativeDate time.Time `json:"tentative_date"`
	Cargo         string    `json:"cargo"`
	Weight        float64   `json:"weight"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Observations  string    `json:"observations"`
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
	Observations  string     `json:"observations,omitempty"`
	Status        string     `json:"status"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	CreatedBy     int64      `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
