package assignment

import "dispatch/internal/entities"

func ToDomain(a *AssignmentDB) *entities.SupplementalAssignment {
	if a == nil {
		return nil
	}
	assignmentEntity := &entities.SupplementalAssignment{
		ID:         a.ID,
		ServiceID:  a.ServiceID,
		TruckID:    a.TruckID,
		TrailerID:  a.TrailerID,
		DriverID:   a.DriverID,
		Notes:      a.Notes,
		AssignedBy: a.AssignedBy,
		AssignedAt: a.AssignedAt,
	}

	if a.TruckPlate != nil {
		assignmentEntity.TruckPlate = *a.TruckPlate
	}
	if a.TrailerPlate != nil {
		assignmentEntity.TrailerPlate = *a.TrailerPlate
	}
	if a.DriverName != nil {
		assignmentEntity.DriverName = *a.DriverName
	}

	return assignmentEntity
}

func ToDomainList(models []AssignmentDB) []entities.SupplementalAssignment {
	assignments := make([]entities.SupplementalAssignment, 0, len(models))
	for i := range models {
		assignments = append(assignments, *ToDomain(&models[i]))
	}
	return assignments
}

func ToHoldingDomain(ref entities.ResourceRef, h *HoldingDB) entities.ResourceHolding {
	holding := entities.ResourceHolding{
		Ref:           ref,
		ServiceID:     h.ServiceID,
		ServiceStatus: entities.ServiceStatusType(h.Status),
		Supplemental:  h.Supplemental,
	}
	if h.Label != nil {
		holding.Label = *h.Label
	}
	return holding
}
