package dispatch

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// checkConflicts — чистое чтение реестра: для каждого кандидата ищет сервисы
// в статусах pending_start/in_progress, уже удерживающие этот ресурс.
// Порядок сообщений повторяет порядок кандидатов: тягач, прицеп, водитель.
func (d *Dispatch) checkConflicts(ctx context.Context, candidates []entities.ResourceRef, targetServiceID int64) ([]string, error) {
	messages := make([]string, 0, len(candidates))
	for _, ref := range candidates {
		holdings, err := d.assignments.FindActiveHolders(ctx, ref, targetServiceID)
		if err != nil {
			return nil, fmt.Errorf("scan ledger for %s %d: %w", ref.Kind, ref.ID, err)
		}
		for _, holding := range holdings {
			messages = append(messages, conflictMessage(holding))
		}
	}
	return messages, nil
}

// checkDuplicates сверяет кандидатов с ресурсами самого целевого сервиса
// (первичное назначение + уже добавленные дополнительные привязки).
func (d *Dispatch) checkDuplicates(ctx context.Context, candidates []entities.ResourceRef, targetServiceID int64) ([]string, error) {
	holdings, err := d.assignments.GetServiceHoldings(ctx, targetServiceID)
	if err != nil {
		return nil, fmt.Errorf("load service holdings: %w", err)
	}

	held := make(map[entities.ResourceRef]entities.ResourceHolding, len(holdings))
	for _, holding := range holdings {
		if _, ok := held[holding.Ref]; !ok {
			held[holding.Ref] = holding
		}
	}

	messages := make([]string, 0, len(candidates))
	for _, ref := range candidates {
		holding, ok := held[ref]
		if !ok {
			continue
		}
		messages = append(messages, duplicateMessage(holding))
	}
	return messages, nil
}

func conflictMessage(h entities.ResourceHolding) string {
	return fmt.Sprintf("%s %s is already assigned to service #%d (%s)",
		kindNoun(h.Ref.Kind), h.Label, h.ServiceID, statusPhrase(h.ServiceStatus))
}

func duplicateMessage(h entities.ResourceHolding) string {
	source := "primary assignment"
	if h.Supplemental {
		source = "previously added"
	}
	return fmt.Sprintf("%s %s is already attached to this service (%s)",
		kindNoun(h.Ref.Kind), h.Label, source)
}

func kindNoun(kind entities.ResourceKind) string {
	switch kind {
	case entities.ResourceTractor:
		return "tractor"
	case entities.ResourceTrailer:
		return "trailer"
	case entities.ResourceDriver:
		return "driver"
	default:
		return kind.String()
	}
}

func statusPhrase(status entities.ServiceStatusType) string {
	switch status {
	case entities.ServicePendingStart:
		return "scheduled"
	case entities.ServiceInProgress:
		return "en route"
	default:
		return status.String()
	}
}
