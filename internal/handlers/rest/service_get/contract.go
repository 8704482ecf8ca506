//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=service_get_test
package service_get

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
	GetService(ctx context.Context, id int64) (*entities.ServiceDetail, error)
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
	DriverID      *int64     `json:"driver_id,omitempty"`
	DriverName    string     `json:"driver_name,omitempty"`
	TractorID     *int64     `json:"tractor_id,omitempty"`
	TractorPlate  string     `json:"tractor_plate,omitempty"`
	TrailerID     *int64     `json:"trailer_id,omitempty"`
	TrailerPlate  string     `json:"trailer_plate,omitempty"`
	Status        string     `json:"status"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	CreatedBy     int64      `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Supplementals []SupplementalResponse `json:"supplemental_assignments"`
	Notes         []NoteResponse         `json:"notes"`
}

type SupplementalResponse struct {
	ID           int64     `json:"id"`
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

type NoteResponse struct {
	ID        int64     `json:"id"`
	Author    int64     `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
