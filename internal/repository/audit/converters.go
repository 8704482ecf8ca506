package audit

import "dispatch/internal/entities"

func ToDomain(e *AuditEntryDB) *entities.AuditEntry {
	if e == nil {
		return nil
	}
	return &entities.AuditEntry{
		ID:          e.ID,
		ServiceID:   e.ServiceID,
		ChangedBy:   e.ChangedBy,
		ChangeType:  entities.AuditChangeType(e.ChangeType),
		Field:       e.Field,
		OldValue:    e.OldValue,
		NewValue:    e.NewValue,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func ToDomainList(models []AuditEntryDB) []entities.AuditEntry {
	entries := make([]entities.AuditEntry, 0, len(models))
	for i := range models {
		entries = append(entries, *ToDomain(&models[i]))
	}
	return entries
}
