package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/tx"
)

type Dispatch struct {
	services    ServiceRepository
	assignments AssignmentRepository
	audit       AuditRepository
	txManager   TxManager
}

func New(
	services ServiceRepository,
	assignments AssignmentRepository,
	audit AuditRepository,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		services:    services,
		assignments: assignments,
		audit:       audit,
		txManager:   txManager,
	}
}

type CreateServiceParams struct {
	ClientID      int64
	Origin        string
	Destination   string
	TentativeDate time.Time
	Cargo         string
	Weight        float64
	Price         float64
	Currency      string
	Observations  string
	ActorID       int64
}

type AssignPrimaryParams struct {
	ServiceID int64
	DriverID  int64
	TractorID int64
	TrailerID *int64
	Notes     string
	Force     bool
	ActorID   int64
}

type AddSupplementalParams struct {
	ServiceID int64
	TruckID   *int64
	TrailerID *int64
	DriverID  *int64
	Notes     string
	Force     bool
	ActorID   int64
}

type ChangeStatusParams struct {
	ServiceID int64
	Target    string
	Notes     string
	At        *time.Time
	ActorID   int64
}

// CreateService создаёт сервис в статусе pending_assignment и пишет
// аудит-запись CREATED в той же транзакции.
func (d *Dispatch) CreateService(ctx context.Context, params CreateServiceParams) (*entities.Service, error) {
	if !isValidID(params.ClientID) ||
		strings.TrimSpace(params.Origin) == "" ||
		strings.TrimSpace(params.Destination) == "" ||
		params.TentativeDate.IsZero() ||
		strings.TrimSpace(params.Cargo) == "" ||
		params.Weight <= 0 ||
		params.Price <= 0 ||
		strings.TrimSpace(params.Currency) == "" {
		return nil, ErrMissingRequiredFields
	}

	var created *entities.Service
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		service, err := d.services.Create(ctx, entities.Service{
			ClientID:      params.ClientID,
			Origin:        params.Origin,
			Destination:   params.Destination,
			TentativeDate: params.TentativeDate,
			Cargo:         params.Cargo,
			Weight:        params.Weight,
			Price:         params.Price,
			Currency:      params.Currency,
			Observations:  params.Observations,
			Status:        entities.ServicePendingAssignment,
			CreatedBy:     params.ActorID,
		})
		if err != nil {
			return fmt.Errorf("create service: %w", err)
		}

		err = d.audit.Record(ctx, entities.AuditEntry{
			ServiceID:   service.ID,
			ChangedBy:   params.ActorID,
			ChangeType:  entities.AuditCreated,
			Field:       "status",
			NewValue:    entities.ServicePendingAssignment.String(),
			Description: fmt.Sprintf("service %s -> %s created", service.Origin, service.Destination),
		})
		if err != nil {
			return fmt.Errorf("record audit: %w", err)
		}

		created = service
		return nil
	})
	if err != nil {
		return nil, d.translateTxError(err)
	}
	return created, nil
}

// AssignPrimary привязывает первичные ресурсы к сервису и переводит его из
// pending_assignment в pending_start. Конфликты с другими сервисами блокируют
// операцию, пока вызывающий явно не повторит её с force=true.
func (d *Dispatch) AssignPrimary(ctx context.Context, params AssignPrimaryParams) (*entities.Service, error) {
	if !isValidID(params.ServiceID) {
		return nil, ErrInvalidServiceID
	}
	if !isValidID(params.DriverID) || !isValidID(params.TractorID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidOptionalID(params.TrailerID) {
		return nil, ErrInvalidResourceID
	}

	var assigned *entities.Service
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		service, err := d.services.GetByID(ctx, params.ServiceID)
		if err != nil {
			return fmt.Errorf("load service: %w", err)
		}

		if service.Status != entities.ServicePendingAssignment {
			return fmt.Errorf("service #%d is %s: %w", service.ID, service.Status, ErrIllegalState)
		}

		candidates := entities.NewCandidateSet(&params.TractorID, params.TrailerID, &params.DriverID)

		if !params.Force {
			conflicts, err := d.checkConflicts(ctx, candidates, service.ID)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return &ConflictError{Messages: conflicts}
			}
		}

		previousStatus := service.Status
		newStatus := entities.ServicePendingStart
		serviceModify := entities.ServiceModify{
			ID:        &service.ID,
			DriverID:  &params.DriverID,
			TractorID: &params.TractorID,
			TrailerID: params.TrailerID,
			Status:    &newStatus,
		}

		if _, err := d.services.Update(ctx, serviceModify); err != nil {
			return fmt.Errorf("update service: %w", err)
		}

		if strings.TrimSpace(params.Notes) != "" {
			err := d.services.AppendNote(ctx, entities.OperationalNote{
				ServiceID: service.ID,
				Author:    params.ActorID,
				Text:      params.Notes,
			})
			if err != nil {
				return fmt.Errorf("append note: %w", err)
			}
		}

		err = d.audit.Record(ctx, entities.AuditEntry{
			ServiceID:   service.ID,
			ChangedBy:   params.ActorID,
			ChangeType:  entities.AuditAssignment,
			Field:       "status",
			OldValue:    previousStatus.String(),
			NewValue:    newStatus.String(),
			Description: assignmentDescription(params),
		})
		if err != nil {
			return fmt.Errorf("record audit: %w", err)
		}

		// перечитываем, чтобы получить подписи ресурсов из справочников
		updated, err := d.services.GetByID(ctx, service.ID)
		if err != nil {
			return fmt.Errorf("reload service: %w", err)
		}

		assigned = updated
		return nil
	})
	if err != nil {
		return nil, d.translateTxError(err)
	}
	return assigned, nil
}

// AddSupplemental добавляет дополнительный ресурс к выполняющемуся сервису.
// Дубликат внутри того же сервиса — жёсткая ошибка валидации, force её не
// обходит; конфликт с другим сервисом обходится force, как и при первичном
// назначении. Отдельной аудит-записи нет: строка привязки сама является
// аудит-следом.
func (d *Dispatch) AddSupplemental(ctx context.Context, params AddSupplementalParams) (*entities.SupplementalAssignment, error) {
	if !isValidID(params.ServiceID) {
		return nil, ErrInvalidServiceID
	}
	if !isValidOptionalID(params.TruckID) || !isValidOptionalID(params.TrailerID) || !isValidOptionalID(params.DriverID) {
		return nil, ErrInvalidResourceID
	}

	candidates := entities.NewCandidateSet(params.TruckID, params.TrailerID, params.DriverID)
	if len(candidates) == 0 {
		return nil, ErrNoResources
	}
	if !isValidNotes(params.Notes) {
		return nil, ErrNotesTooShort
	}

	var created *entities.SupplementalAssignment
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		service, err := d.services.GetByID(ctx, params.ServiceID)
		if err != nil {
			return fmt.Errorf("load service: %w", err)
		}

		if service.Status != entities.ServiceInProgress {
			return fmt.Errorf("service #%d is %s: %w", service.ID, service.Status, ErrIllegalState)
		}

		duplicates, err := d.checkDuplicates(ctx, candidates, service.ID)
		if err != nil {
			return err
		}
		if len(duplicates) > 0 {
			return &DuplicateError{Messages: duplicates}
		}

		if !params.Force {
			conflicts, err := d.checkConflicts(ctx, candidates, service.ID)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return &ConflictError{Messages: conflicts}
			}
		}

		assignment, err := d.assignments.CreateSupplemental(ctx, entities.SupplementalAssignment{
			ServiceID:  service.ID,
			TruckID:    params.TruckID,
			TrailerID:  params.TrailerID,
			DriverID:   params.DriverID,
			Notes:      params.Notes,
			AssignedBy: params.ActorID,
			AssignedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create supplemental assignment: %w", err)
		}

		created = assignment
		return nil
	})
	if err != nil {
		return nil, d.translateTxError(err)
	}
	return created, nil
}

// ChangeStatus переводит сервис по таблице переходов. Успешный переход
// ставит startedAt/endedAt, дописывает операционную заметку (если передана)
// и пишет ровно одну аудит-запись STATUS_CHANGE.
func (d *Dispatch) ChangeStatus(ctx context.Context, params ChangeStatusParams) (*entities.Service, error) {
	if !isValidID(params.ServiceID) {
		return nil, ErrInvalidServiceID
	}
	if strings.TrimSpace(params.Target) == "" {
		return nil, ErrMissingRequiredFields
	}

	target, ok := entities.ParseServiceStatus(params.Target)
	if !ok {
		return nil, fmt.Errorf("%q: %w", params.Target, ErrUnknownStatus)
	}

	var changed *entities.Service
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		service, err := d.services.GetByID(ctx, params.ServiceID)
		if err != nil {
			return fmt.Errorf("load service: %w", err)
		}

		if !service.Status.CanTransitionTo(target) {
			return fmt.Errorf("%s -> %s: %w", service.Status, target, ErrInvalidTransition)
		}

		previousStatus := service.Status
		serviceModify := entities.ServiceModify{
			ID:     &service.ID,
			Status: &target,
		}

		stampedAt := time.Now().UTC()
		if params.At != nil {
			stampedAt = params.At.UTC()
		}

		switch target {
		case entities.ServiceInProgress:
			serviceModify.StartedAt = &stampedAt
		case entities.ServiceCompleted:
			serviceModify.EndedAt = &stampedAt
		}

		if _, err := d.services.Update(ctx, serviceModify); err != nil {
			return fmt.Errorf("update service: %w", err)
		}

		if strings.TrimSpace(params.Notes) != "" {
			err := d.services.AppendNote(ctx, entities.OperationalNote{
				ServiceID: service.ID,
				Author:    params.ActorID,
				Text:      params.Notes,
			})
			if err != nil {
				return fmt.Errorf("append note: %w", err)
			}
		}

		err = d.audit.Record(ctx, entities.AuditEntry{
			ServiceID:   service.ID,
			ChangedBy:   params.ActorID,
			ChangeType:  entities.AuditStatusChange,
			Field:       "status",
			OldValue:    previousStatus.String(),
			NewValue:    target.String(),
			Description: params.Notes,
		})
		if err != nil {
			return fmt.Errorf("record audit: %w", err)
		}

		updated, err := d.services.GetByID(ctx, service.ID)
		if err != nil {
			return fmt.Errorf("reload service: %w", err)
		}

		changed = updated
		return nil
	})
	if err != nil {
		return nil, d.translateTxError(err)
	}
	return changed, nil
}

// GetService возвращает сервис вместе с дополнительными привязками и
// операционным журналом.
func (d *Dispatch) GetService(ctx context.Context, id int64) (*entities.ServiceDetail, error) {
	if !isValidID(id) {
		return nil, ErrInvalidServiceID
	}

	service, err := d.services.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load service: %w", err)
	}

	supplementals, err := d.assignments.ListByService(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load supplemental assignments: %w", err)
	}

	notes, err := d.services.ListNotes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	return &entities.ServiceDetail{
		Service:       *service,
		Supplementals: supplementals,
		Notes:         notes,
	}, nil
}

func (d *Dispatch) ListServices(ctx context.Context, filter entities.ServiceFilter) ([]entities.Service, error) {
	services, err := d.services.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (d *Dispatch) AuditTrail(ctx context.Context, serviceID int64) ([]entities.AuditEntry, error) {
	if !isValidID(serviceID) {
		return nil, ErrInvalidServiceID
	}

	if _, err := d.services.GetByID(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("load service: %w", err)
	}

	entries, err := d.audit.ListByService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}

// RecomputeAvailability пересчитывает справочные флаги доступности ресурсов
// по реестру. Источник истины о занятости — всегда скан реестра, флаг нужен
// только для отображения в каталогах.
func (d *Dispatch) RecomputeAvailability(ctx context.Context) (int64, error) {
	rowsAffected, err := d.assignments.RecomputeAvailability(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("availability recompute timed out: %w", err)
		}
		return 0, fmt.Errorf("availability recompute: %w", err)
	}
	return rowsAffected, nil
}

// translateTxError переводит сбой сериализации в ретраибельную для
// вызывающего ошибку; остальные ошибки проходят как есть.
func (d *Dispatch) translateTxError(err error) error {
	if errors.Is(err, tx.ErrSerializationFailure) {
		return fmt.Errorf("%w: %w", ErrTransactionFailure, err)
	}
	return err
}

func assignmentDescription(params AssignPrimaryParams) string {
	desc := fmt.Sprintf("primary resources assigned: driver %d, tractor %d", params.DriverID, params.TractorID)
	if params.TrailerID != nil {
		desc += fmt.Sprintf(", trailer %d", *params.TrailerID)
	}
	if params.Force {
		desc += " (conflict check bypassed)"
	}
	return desc
}
