package assignment

import "time"

type AssignmentDB struct {
	ID        int64
	ServiceID int64

	TruckID   *int64
	TrailerID *int64
	DriverID  *int64

	TruckPlate   *string
	TrailerPlate *string
	DriverName   *string

	Notes      string
	AssignedBy int64
	AssignedAt time.Time
}

type HoldingDB struct {
	Label        *string
	ServiceID    int64
	Status       string
	Supplemental bool
}
