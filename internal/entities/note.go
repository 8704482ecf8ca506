package entities

import "time"

// OperationalNote — одна запись операционного журнала сервиса.
// Журнал упорядочен и только дописывается.
type OperationalNote struct {
	ID        int64
	ServiceID int64
	Author    int64
	Text      string
	CreatedAt time.Time
}
