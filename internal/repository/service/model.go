package service

import "time"

type ServiceDB struct {
	ID            int64
	ClientID      int64
	Origin        string
	Destination   string
	TentativeDate time.Time
	Cargo         string
	Weight        float64
	Price         float64
	Currency      string
	Observations  string

	DriverID  *int64
	TractorID *int64
	TrailerID *int64

	DriverName   *string
	TractorPlate *string
	TrailerPlate *string

	Status    string
	StartedAt *time.Time
	EndedAt   *time.Time

	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ServiceModifyDB struct {
	ID        *int64
	DriverID  *int64
	TractorID *int64
	TrailerID *int64
	Status    *string
	StartedAt *time.Time
	EndedAt   *time.Time
}

type NoteDB struct {
	ID        int64
	ServiceID int64
	AuthorID  int64
	Text      string
	CreatedAt time.Time
}
