//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"dispatch/internal/entities"
)

type ServiceRepository interface {
	Create(ctx context.Context, service entities.Service) (*entities.Service, error)
	GetByID(ctx context.Context, id int64) (*entities.Service, error)
	List(ctx context.Context, filter entities.ServiceFilter) ([]entities.Service, error)
	Update(ctx context.Context, serviceModify entities.ServiceModify) (*entities.Service, error)

	AppendNote(ctx context.Context, note entities.OperationalNote) error
	ListNotes(ctx context.Context, serviceID int64) ([]entities.OperationalNote, error)
}

type AssignmentRepository interface {
	// FindActiveHolders сканирует реестр: первичные назначения и дополнительные
	// привязки по всем сервисам в статусах pending_start/in_progress,
	// исключая сам целевой сервис.
	FindActiveHolders(ctx context.Context, ref entities.ResourceRef, excludeServiceID int64) ([]entities.ResourceHolding, error)

	// GetServiceHoldings возвращает ресурсы, уже привязанные к самому сервису
	// (первичное назначение + все дополнительные привязки).
	GetServiceHoldings(ctx context.Context, serviceID int64) ([]entities.ResourceHolding, error)

	CreateSupplemental(ctx context.Context, assignment entities.SupplementalAssignment) (*entities.SupplementalAssignment, error)
	ListByService(ctx context.Context, serviceID int64) ([]entities.SupplementalAssignment, error)

	// RecomputeAvailability пересчитывает кешированные флаги доступности
	// ресурсов по реестру. Флаг справочный, решения о бронировании по нему
	// не принимаются.
	RecomputeAvailability(ctx context.Context) (int64, error)
}

type AuditRepository interface {
	Record(ctx context.Context, entry entities.AuditEntry) error
	ListByService(ctx context.Context, serviceID int64) ([]entities.AuditEntry, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
