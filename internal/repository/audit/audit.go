package audit

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Record пишет строку журнала. Журнал append-only: записи не обновляются
// и не удаляются.
func (r *Repository) Record(ctx context.Context, entry entities.AuditEntry) error {
	query := `
		INSERT INTO service_audit_log (service_id, changed_by, change_type, field, old_value, new_value, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		entry.ServiceID,
		entry.ChangedBy,
		entry.ChangeType.String(),
		entry.Field,
		entry.OldValue,
		entry.NewValue,
		entry.Description,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return dispatch.ErrServiceNotFound
		}
		return fmt.Errorf("unexpected audit repository record error: %w", err)
	}

	return nil
}

func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, service_id, changed_by, change_type, field, old_value, new_value, description, created_at
		FROM service_audit_log
		WHERE service_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("unexpected audit repository list error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]AuditEntryDB, 0, 8)
	for rows.Next() {
		var entryDB AuditEntryDB
		err := rows.Scan(
			&entryDB.ID,
			&entryDB.ServiceID,
			&entryDB.ChangedBy,
			&entryDB.ChangeType,
			&entryDB.Field,
			&entryDB.OldValue,
			&entryDB.NewValue,
			&entryDB.Description,
			&entryDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected audit repository list error: %w", err)
		}
		entryModels = append(entryModels, entryDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected audit repository list error: %w", err)
	}

	return ToDomainList(entryModels), nil
}
