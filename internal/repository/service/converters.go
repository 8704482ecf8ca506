package service

import "dispatch/internal/entities"

func ToDomain(s *ServiceDB) *entities.Service {
	if s == nil {
		return nil
	}
	serviceEntity := &entities.Service{
		ID:            s.ID,
		ClientID:      s.ClientID,
		Origin:        s.Origin,
		Destination:   s.Destination,
		TentativeDate: s.TentativeDate,
		Cargo:         s.Cargo,
		Weight:        s.Weight,
		Price:         s.Price,
		Currency:      s.Currency,
		Observations:  s.Observations,
		DriverID:      s.DriverID,
		TractorID:     s.TractorID,
		TrailerID:     s.TrailerID,
		Status:        entities.ServiceStatusType(s.Status),
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	if s.DriverName != nil {
		serviceEntity.DriverName = *s.DriverName
	}
	if s.TractorPlate != nil {
		serviceEntity.TractorPlate = *s.TractorPlate
	}
	if s.TrailerPlate != nil {
		serviceEntity.TrailerPlate = *s.TrailerPlate
	}

	return serviceEntity
}

func ToDomainList(models []ServiceDB) []entities.Service {
	services := make([]entities.Service, 0, len(models))
	for i := range models {
		services = append(services, *ToDomain(&models[i]))
	}
	return services
}

func FromDomainModify(m *entities.ServiceModify) *ServiceModifyDB {
	if m == nil {
		return nil
	}
	modifyDB := &ServiceModifyDB{
		ID:        m.ID,
		DriverID:  m.DriverID,
		TractorID: m.TractorID,
		TrailerID: m.TrailerID,
		StartedAt: m.StartedAt,
		EndedAt:   m.EndedAt,
	}

	if m.Status != nil {
		status := m.Status.String()
		modifyDB.Status = &status
	}

	return modifyDB
}

func ToNoteDomain(n *NoteDB) *entities.OperationalNote {
	if n == nil {
		return nil
	}
	return &entities.OperationalNote{
		ID:        n.ID,
		ServiceID: n.ServiceID,
		Author:    n.AuthorID,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
	}
}
