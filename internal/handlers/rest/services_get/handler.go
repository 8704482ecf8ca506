package services_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	services, err := h.service.ListServices(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]ServiceResponse, 0, len(services))
	for i := range services {
		serviceEntity := &services[i]
		response = append(response, ServiceResponse{
			ID:            serviceEntity.ID,
			ClientID:      serviceEntity.ClientID,
			Origin:        serviceEntity.Origin,
			Destination:   serviceEntity.Destination,
			TentativeDate: serviceEntity.TentativeDate,
			Cargo:         serviceEntity.Cargo,
			Weight:        serviceEntity.Weight,
			Price:         serviceEntity.Price,
			Currency:      serviceEntity.Currency,
			DriverID:      serviceEntity.DriverID,
			DriverName:    serviceEntity.DriverName,
			TractorID:     serviceEntity.TractorID,
			TractorPlate:  serviceEntity.TractorPlate,
			TrailerID:     serviceEntity.TrailerID,
			TrailerPlate:  serviceEntity.TrailerPlate,
			Status:        serviceEntity.Status.String(),
			StartedAt:     serviceEntity.StartedAt,
			EndedAt:       serviceEntity.EndedAt,
			CreatedAt:     serviceEntity.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.ServiceFilter, bool) {
	var filter entities.ServiceFilter

	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status, ok := entities.ParseServiceStatus(statusParam)
		if !ok {
			return filter, false
		}
		filter.Status = &status
	}

	if clientParam := r.URL.Query().Get("client_id"); clientParam != "" {
		clientID, err := strconv.ParseInt(clientParam, 10, 64)
		if err != nil || clientID <= 0 {
			return filter, false
		}
		filter.ClientID = &clientID
	}

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			return filter, false
		}
		filter.Date = &date
	}

	return filter, true
}
