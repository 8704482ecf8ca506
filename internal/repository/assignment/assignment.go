package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
)

// kindMapping связывает вид ресурса с его колонками в реестре:
// первичное назначение хранится в services, дополнительные привязки
// в service_assignments, подпись берётся из справочника.
type kindMapping struct {
	primaryColumn      string
	supplementalColumn string
	catalogTable       string
	labelColumn        string
}

func mappingFor(kind entities.ResourceKind) (kindMapping, error) {
	switch kind {
	case entities.ResourceTractor:
		return kindMapping{
			primaryColumn:      "tractor_id",
			supplementalColumn: "truck_id",
			catalogTable:       "tractors",
			labelColumn:        "plate",
		}, nil
	case entities.ResourceTrailer:
		return kindMapping{
			primaryColumn:      "trailer_id",
			supplementalColumn: "trailer_id",
			catalogTable:       "trailers",
			labelColumn:        "plate",
		}, nil
	case entities.ResourceDriver:
		return kindMapping{
			primaryColumn:      "driver_id",
			supplementalColumn: "driver_id",
			catalogTable:       "drivers",
			labelColumn:        "name",
		}, nil
	default:
		return kindMapping{}, fmt.Errorf("unknown resource kind %q", kind)
	}
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) FindActiveHolders(ctx context.Context, ref entities.ResourceRef, excludeServiceID int64) ([]entities.ResourceHolding, error) {
	mapping, err := mappingFor(ref.Kind)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository find holders error: %w", err)
	}

	// Один проход по реестру: первичные назначения из services плюс
	// дополнительные привязки из service_assignments, только по сервисам,
	// реально удерживающим ресурсы. Сам целевой сервис исключается.
	query := fmt.Sprintf(`
		SELECT l.%[1]s, busy.service_id, busy.status, busy.supplemental
		FROM (
			SELECT s.id AS service_id, s.status, FALSE AS supplemental
			FROM services s
			WHERE s.%[2]s = $1
			  AND s.id != $2
			  AND s.status IN ('pending_start', 'in_progress')
			UNION ALL
			SELECT s.id, s.status, TRUE
			FROM service_assignments sa
			JOIN services s ON s.id = sa.service_id
			WHERE sa.%[3]s = $1
			  AND s.id != $2
			  AND s.status IN ('pending_start', 'in_progress')
		) busy
		JOIN %[4]s l ON l.id = $1
		ORDER BY busy.service_id, busy.supplemental
	`, mapping.labelColumn, mapping.primaryColumn, mapping.supplementalColumn, mapping.catalogTable)

	rows, err := r.querier.Query(ctx, query, ref.ID, excludeServiceID)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository find holders error: %w", err)
	}
	defer rows.Close()

	holdings := make([]entities.ResourceHolding, 0, 2)
	for rows.Next() {
		var holdingDB HoldingDB
		err := rows.Scan(
			&holdingDB.Label,
			&holdingDB.ServiceID,
			&holdingDB.Status,
			&holdingDB.Supplemental,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository find holders error: %w", err)
		}
		holdings = append(holdings, ToHoldingDomain(ref, &holdingDB))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository find holders error: %w", err)
	}

	return holdings, nil
}

func (r *Repository) GetServiceHoldings(ctx context.Context, serviceID int64) ([]entities.ResourceHolding, error) {
	primaryQuery := `
		SELECT s.status, s.tractor_id, s.trailer_id, s.driver_id, t.plate, tr.plate, d.name
		FROM services s
		LEFT JOIN tractors t ON t.id = s.tractor_id
		LEFT JOIN trailers tr ON tr.id = s.trailer_id
		LEFT JOIN drivers d ON d.id = s.driver_id
		WHERE s.id = $1
	`

	var (
		status                             string
		tractorID, trailerID, driverID     *int64
		tractorPlate, trailerPlate, driver *string
	)
	err := r.querier.QueryRow(ctx, primaryQuery, serviceID).Scan(
		&status,
		&tractorID,
		&trailerID,
		&driverID,
		&tractorPlate,
		&trailerPlate,
		&driver,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrServiceNotFound
		}

		return nil, fmt.Errorf("unexpected assignment repository get holdings error: %w", err)
	}

	holdings := make([]entities.ResourceHolding, 0, 6)
	appendPrimary := func(kind entities.ResourceKind, id *int64, label *string) {
		if id == nil {
			return
		}
		holdings = append(holdings, ToHoldingDomain(
			entities.ResourceRef{Kind: kind, ID: *id},
			&HoldingDB{Label: label, ServiceID: serviceID, Status: status, Supplemental: false},
		))
	}
	appendPrimary(entities.ResourceTractor, tractorID, tractorPlate)
	appendPrimary(entities.ResourceTrailer, trailerID, trailerPlate)
	appendPrimary(entities.ResourceDriver, driverID, driver)

	supplementals, err := r.listByServiceDB(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	for i := range supplementals {
		supplementalDB := &supplementals[i]
		appendSupplemental := func(kind entities.ResourceKind, id *int64, label *string) {
			if id == nil {
				return
			}
			holdings = append(holdings, ToHoldingDomain(
				entities.ResourceRef{Kind: kind, ID: *id},
				&HoldingDB{Label: label, ServiceID: serviceID, Status: status, Supplemental: true},
			))
		}
		appendSupplemental(entities.ResourceTractor, supplementalDB.TruckID, supplementalDB.TruckPlate)
		appendSupplemental(entities.ResourceTrailer, supplementalDB.TrailerID, supplementalDB.TrailerPlate)
		appendSupplemental(entities.ResourceDriver, supplementalDB.DriverID, supplementalDB.DriverName)
	}

	return holdings, nil
}

func (r *Repository) CreateSupplemental(ctx context.Context, assignmentEntity entities.SupplementalAssignment) (*entities.SupplementalAssignment, error) {
	query := `
		INSERT INTO service_assignments (service_id, truck_id, trailer_id, driver_id, notes, assigned_by, assigned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		assignmentEntity.ServiceID,
		assignmentEntity.TruckID,
		assignmentEntity.TrailerID,
		assignmentEntity.DriverID,
		assignmentEntity.Notes,
		assignmentEntity.AssignedBy,
		assignmentEntity.AssignedAt,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, dispatch.ErrResourceNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return r.getByID(ctx, id)
}

func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]entities.SupplementalAssignment, error) {
	assignmentModels, err := r.listByServiceDB(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return ToDomainList(assignmentModels), nil
}

// RecomputeAvailability пересчитывает справочный флаг available по реестру.
// Возвращает суммарное число строк, у которых флаг реально изменился.
func (r *Repository) RecomputeAvailability(ctx context.Context) (int64, error) {
	kinds := []entities.ResourceKind{entities.ResourceTractor, entities.ResourceTrailer, entities.ResourceDriver}

	var total int64
	for _, kind := range kinds {
		mapping, err := mappingFor(kind)
		if err != nil {
			return total, fmt.Errorf("unexpected assignment repository recompute error: %w", err)
		}

		query := fmt.Sprintf(`
			UPDATE %[1]s
			SET available = NOT busy.is_busy
			FROM (
				SELECT c.id,
					EXISTS (
						SELECT 1 FROM services s
						WHERE s.%[2]s = c.id
						  AND s.status IN ('pending_start', 'in_progress')
					) OR EXISTS (
						SELECT 1 FROM service_assignments sa
						JOIN services s2 ON s2.id = sa.service_id
						WHERE sa.%[3]s = c.id
						  AND s2.status IN ('pending_start', 'in_progress')
					) AS is_busy
				FROM %[1]s c
			) busy
			WHERE %[1]s.id = busy.id
			  AND %[1]s.available = busy.is_busy
		`, mapping.catalogTable, mapping.primaryColumn, mapping.supplementalColumn)

		result, err := r.querier.Exec(ctx, query)
		if err != nil {
			return total, fmt.Errorf("unexpected assignment repository recompute error: %w", err)
		}
		total += result.RowsAffected()
	}

	return total, nil
}

func (r *Repository) getByID(ctx context.Context, id int64) (*entities.SupplementalAssignment, error) {
	query := `
		SELECT sa.id, sa.service_id, sa.truck_id, sa.trailer_id, sa.driver_id,
			t.plate, tr.plate, d.name,
			sa.notes, sa.assigned_by, sa.assigned_at
		FROM service_assignments sa
		LEFT JOIN tractors t ON t.id = sa.truck_id
		LEFT JOIN trailers tr ON tr.id = sa.trailer_id
		LEFT JOIN drivers d ON d.id = sa.driver_id
		WHERE sa.id = $1
	`

	var assignmentDB AssignmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&assignmentDB.ID,
		&assignmentDB.ServiceID,
		&assignmentDB.TruckID,
		&assignmentDB.TrailerID,
		&assignmentDB.DriverID,
		&assignmentDB.TruckPlate,
		&assignmentDB.TrailerPlate,
		&assignmentDB.DriverName,
		&assignmentDB.Notes,
		&assignmentDB.AssignedBy,
		&assignmentDB.AssignedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository getbyid error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}

func (r *Repository) listByServiceDB(ctx context.Context, serviceID int64) ([]AssignmentDB, error) {
	query := `
		SELECT sa.id, sa.service_id, sa.truck_id, sa.trailer_id, sa.driver_id,
			t.plate, tr.plate, d.name,
			sa.notes, sa.assigned_by, sa.assigned_at
		FROM service_assignments sa
		LEFT JOIN tractors t ON t.id = sa.truck_id
		LEFT JOIN trailers tr ON tr.id = sa.trailer_id
		LEFT JOIN drivers d ON d.id = sa.driver_id
		WHERE sa.service_id = $1
		ORDER BY sa.id
	`

	rows, err := r.querier.Query(ctx, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}
	defer rows.Close()

	assignmentModels := make([]AssignmentDB, 0, 4)
	for rows.Next() {
		var assignmentDB AssignmentDB
		err := rows.Scan(
			&assignmentDB.ID,
			&assignmentDB.ServiceID,
			&assignmentDB.TruckID,
			&assignmentDB.TrailerID,
			&assignmentDB.DriverID,
			&assignmentDB.TruckPlate,
			&assignmentDB.TrailerPlate,
			&assignmentDB.DriverName,
			&assignmentDB.Notes,
			&assignmentDB.AssignedBy,
			&assignmentDB.AssignedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
		}
		assignmentModels = append(assignmentModels, assignmentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}

	return assignmentModels, nil
}
