package entities

import "time"

// SupplementalAssignment — дополнительный ресурс, привязанный к сервису во
// время выполнения. Создаётся один раз и не изменяется: строка сама является
// аудит-записью.
type SupplementalAssignment struct {
	ID        int64
	ServiceID int64

	TruckID   *int64
	TrailerID *int64
	DriverID  *int64

	// Подписи из справочников, заполняются при чтении.
	TruckPlate   string
	TrailerPlate string
	DriverName   string

	Notes      string
	AssignedBy int64
	AssignedAt time.Time
}

// Resources возвращает непустые ссылки в порядке тягач, прицеп, водитель.
func (a *SupplementalAssignment) Resources() []ResourceRef {
	return NewCandidateSet(a.TruckID, a.TrailerID, a.DriverID)
}
