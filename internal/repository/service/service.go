package service

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// serviceColumns — общий список колонок для чтения сервиса вместе с
// подписями ресурсов из справочников.
const serviceColumns = `
	s.id, s.client_id, s.origin, s.destination, s.tentative_date,
	s.cargo, s.weight, s.price, s.currency, s.observations,
	s.driver_id, s.tractor_id, s.trailer_id,
	d.name, t.plate, tr.plate,
	s.status, s.started_at, s.ended_at,
	s.created_by, s.created_at, s.updated_at`

const serviceJoins = `
	FROM services s
	LEFT JOIN drivers d ON d.id = s.driver_id
	LEFT JOIN tractors t ON t.id = s.tractor_id
	LEFT JOIN trailers tr ON tr.id = s.trailer_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, serviceEntity entities.Service) (*entities.Service, error) {
	query := `
		INSERT INTO services (client_id, origin, destination, tentative_date, cargo, weight, price, currency, observations, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, client_id, origin, destination, tentative_date, cargo, weight, price, currency, observations,
			driver_id, tractor_id, trailer_id, status, started_at, ended_at, created_by, created_at, updated_at
	`

	var serviceDB ServiceDB
	err := r.querier.QueryRow(
		ctx,
		query,
		serviceEntity.ClientID,
		serviceEntity.Origin,
		serviceEntity.Destination,
		serviceEntity.TentativeDate,
		serviceEntity.Cargo,
		serviceEntity.Weight,
		serviceEntity.Price,
		serviceEntity.Currency,
		serviceEntity.Observations,
		serviceEntity.Status.String(),
		serviceEntity.CreatedBy,
	).Scan(
		&serviceDB.ID,
		&serviceDB.ClientID,
		&serviceDB.Origin,
		&serviceDB.Destination,
		&serviceDB.TentativeDate,
		&serviceDB.Cargo,
		&serviceDB.Weight,
		&serviceDB.Price,
		&serviceDB.Currency,
		&serviceDB.Observations,
		&serviceDB.DriverID,
		&serviceDB.TractorID,
		&serviceDB.TrailerID,
		&serviceDB.Status,
		&serviceDB.StartedAt,
		&serviceDB.EndedAt,
		&serviceDB.CreatedBy,
		&serviceDB.CreatedAt,
		&serviceDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected service repository create error: %w", err)
	}

	return ToDomain(&serviceDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Service, error) {
	query := `SELECT` + serviceColumns + serviceJoins + `
	WHERE s.id = $1`

	var serviceDB ServiceDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&serviceDB.ID,
		&serviceDB.ClientID,
		&serviceDB.Origin,
		&serviceDB.Destination,
		&serviceDB.TentativeDate,
		&serviceDB.Cargo,
		&serviceDB.Weight,
		&serviceDB.Price,
		&serviceDB.Currency,
		&serviceDB.Observations,
		&serviceDB.DriverID,
		&serviceDB.TractorID,
		&serviceDB.TrailerID,
		&serviceDB.DriverName,
		&serviceDB.TractorPlate,
		&serviceDB.TrailerPlate,
		&serviceDB.Status,
		&serviceDB.StartedAt,
		&serviceDB.EndedAt,
		&serviceDB.CreatedBy,
		&serviceDB.CreatedAt,
		&serviceDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrServiceNotFound
		}

		return nil, fmt.Errorf("unexpected service repository getbyid error: %w", err)
	}

	return ToDomain(&serviceDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ServiceFilter) ([]entities.Service, error) {
	builder := qb.
		Select("s.id", "s.client_id", "s.origin", "s.destination", "s.tentative_date",
			"s.cargo", "s.weight", "s.price", "s.currency", "s.observations",
			"s.driver_id", "s.tractor_id", "s.trailer_id",
			"d.name", "t.plate", "tr.plate",
			"s.status", "s.started_at", "s.ended_at",
			"s.created_by", "s.created_at", "s.updated_at").
		From("services s").
		LeftJoin("drivers d ON d.id = s.driver_id").
		LeftJoin("tractors t ON t.id = s.tractor_id").
		LeftJoin("trailers tr ON tr.id = s.trailer_id")

	// опциональные фильтры
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"s.status": filter.Status.String()})
	}
	if filter.ClientID != nil {
		builder = builder.Where(sq.Eq{"s.client_id": *filter.ClientID})
	}
	if filter.Date != nil {
		builder = builder.Where(sq.Expr("s.tentative_date::date = ?::date", *filter.Date))
	}

	builder = builder.OrderBy("s.created_at DESC, s.id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected service repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected service repository list error: %w", err)
	}
	defer rows.Close()

	serviceModels := make([]ServiceDB, 0, 8)
	for rows.Next() {
		var serviceDB ServiceDB
		err := rows.Scan(
			&serviceDB.ID,
			&serviceDB.ClientID,
			&serviceDB.Origin,
			&serviceDB.Destination,
			&serviceDB.TentativeDate,
			&serviceDB.Cargo,
			&serviceDB.Weight,
			&serviceDB.Price,
			&serviceDB.Currency,
			&serviceDB.Observations,
			&serviceDB.DriverID,
			&serviceDB.TractorID,
			&serviceDB.TrailerID,
			&serviceDB.DriverName,
			&serviceDB.TractorPlate,
			&serviceDB.TrailerPlate,
			&serviceDB.Status,
			&serviceDB.StartedAt,
			&serviceDB.EndedAt,
			&serviceDB.CreatedBy,
			&serviceDB.CreatedAt,
			&serviceDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected service repository list error: %w", err)
		}
		serviceModels = append(serviceModels, serviceDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected service repository list error: %w", err)
	}

	return ToDomainList(serviceModels), nil
}

func (r *Repository) Update(ctx context.Context, serviceModify entities.ServiceModify) (*entities.Service, error) {
	serviceModifyDB := FromDomainModify(&serviceModify)

	builder := qb.
		Update("services")

	// опциональные поля
	if serviceModifyDB.DriverID != nil {
		builder = builder.Set("driver_id", serviceModifyDB.DriverID)
	}
	if serviceModifyDB.TractorID != nil {
		builder = builder.Set("tractor_id", serviceModifyDB.TractorID)
	}
	if serviceModifyDB.TrailerID != nil {
		builder = builder.Set("trailer_id", serviceModifyDB.TrailerID)
	}
	if serviceModifyDB.Status != nil {
		builder = builder.Set("status", serviceModifyDB.Status)
	}
	if serviceModifyDB.StartedAt != nil {
		builder = builder.Set("started_at", serviceModifyDB.StartedAt)
	}
	if serviceModifyDB.EndedAt != nil {
		builder = builder.Set("ended_at", serviceModifyDB.EndedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": serviceModifyDB.ID}).
		Suffix(`RETURNING id, client_id, origin, destination, tentative_date, cargo, weight, price, currency, observations,
			driver_id, tractor_id, trailer_id, status, started_at, ended_at, created_by, created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected service repository update error: %w", err)
	}

	var serviceDB ServiceDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&serviceDB.ID,
		&serviceDB.ClientID,
		&serviceDB.Origin,
		&serviceDB.Destination,
		&serviceDB.TentativeDate,
		&serviceDB.Cargo,
		&serviceDB.Weight,
		&serviceDB.Price,
		&serviceDB.Currency,
		&serviceDB.Observations,
		&serviceDB.DriverID,
		&serviceDB.TractorID,
		&serviceDB.TrailerID,
		&serviceDB.Status,
		&serviceDB.StartedAt,
		&serviceDB.EndedAt,
		&serviceDB.CreatedBy,
		&serviceDB.CreatedAt,
		&serviceDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrServiceNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, dispatch.ErrResourceNotFound
		}

		return nil, fmt.Errorf("unexpected service repository update error: %w", err)
	}

	return ToDomain(&serviceDB), nil
}

func (r *Repository) AppendNote(ctx context.Context, note entities.OperationalNote) error {
	query := `
		INSERT INTO service_notes (service_id, author_id, text)
		VALUES ($1, $2, $3)
	`

	_, err := r.querier.Exec(ctx, query, note.ServiceID, note.Author, note.Text)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return dispatch.ErrServiceNotFound
		}
		return fmt.Errorf("unexpected service repository append note error: %w", err)
	}

	return nil
}

func (r *Repository) ListNotes(ctx context.Context, serviceID int64) ([]entities.OperationalNote, error) {
	query := `
		SELECT id, service_id, author_id, text, created_at
		FROM service_notes
		WHERE service_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("unexpected service repository list notes error: %w", err)
	}
	defer rows.Close()

	notes := make([]entities.OperationalNote, 0, 8)
	for rows.Next() {
		var noteDB NoteDB
		err := rows.Scan(
			&noteDB.ID,
			&noteDB.ServiceID,
			&noteDB.AuthorID,
			&noteDB.Text,
			&noteDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected service repository list notes error: %w", err)
		}
		notes = append(notes, *ToNoteDomain(&noteDB))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected service repository list notes error: %w", err)
	}

	return notes, nil
}
