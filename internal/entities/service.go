package entities

import "time"

type Service struct {
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

	// Подписи ресурсов из справочников, заполняются при чтении.
	DriverName   string
	TractorPlate string
	TrailerPlate string

	Status    ServiceStatusType
	StartedAt *time.Time
	EndedAt   *time.Time

	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ServiceModify struct {
	ID        *int64
	DriverID  *int64
	TractorID *int64
	TrailerID *int64
	Status    *ServiceStatusType
	StartedAt *time.Time
	EndedAt   *time.Time
}

type ServiceFilter struct {
	Status   *ServiceStatusType
	ClientID *int64
	Date     *time.Time
}

// ServiceDetail — сервис вместе с дополнительными привязками и журналом.
type ServiceDetail struct {
	Service       Service
	Supplementals []SupplementalAssignment
	Notes         []OperationalNote
}

type ServiceStatusType string

const (
	ServicePendingAssignment ServiceStatusType = "pending_assignment"
	ServicePendingStart      ServiceStatusType = "pending_start"
	ServiceInProgress        ServiceStatusType = "in_progress"
	ServiceCompleted         ServiceStatusType = "completed"
	ServiceCancelled         ServiceStatusType = "cancelled"
)

func (s ServiceStatusType) String() string {
	return string(s)
}

// allowedTransitions — таблица переходов статусов.
// pending_start достижим только через AssignPrimary, поэтому его нет
// ни в одном списке целевых статусов.
func allowedTransitions() map[ServiceStatusType][]ServiceStatusType {
	return map[ServiceStatusType][]ServiceStatusType{
		ServicePendingAssignment: {ServiceCancelled},
		ServicePendingStart:      {ServiceInProgress, ServiceCancelled},
		ServiceInProgress:        {ServiceCompleted, ServiceCancelled},
		ServiceCompleted:         {},
		ServiceCancelled:         {},
	}
}

func (s ServiceStatusType) CanTransitionTo(target ServiceStatusType) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s ServiceStatusType) IsTerminal() bool {
	return s == ServiceCompleted || s == ServiceCancelled
}

// IsActive сообщает, удерживает ли сервис свои ресурсы:
// занятость ресурса определяется только по сервисам в этих статусах.
func (s ServiceStatusType) IsActive() bool {
	return s == ServicePendingStart || s == ServiceInProgress
}

func ParseServiceStatus(name string) (ServiceStatusType, bool) {
	switch ServiceStatusType(name) {
	case ServicePendingAssignment, ServicePendingStart, ServiceInProgress, ServiceCompleted, ServiceCancelled:
		return ServiceStatusType(name), true
	default:
		return "", false
	}
}
