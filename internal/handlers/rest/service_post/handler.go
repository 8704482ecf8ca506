package service_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/service/dispatch"
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
	actorID, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil || actorID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var serviceCreateDTO ServiceCreateRequest
	err = json.NewDecoder(r.Body).Decode(&serviceCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	serviceEntity, err := h.service.CreateService(r.Context(), dispatch.CreateServiceParams{
		ClientID:      serviceCreateDTO.ClientID,
		Origin:        serviceCreateDTO.Origin,
		Destination:   serviceCreateDTO.Destination,
		TentativeDate: serviceCreateDTO.TentativeDate,
		Cargo:         serviceCreateDTO.Cargo,
		Weight:        serviceCreateDTO.Weight,
		Price:         serviceCreateDTO.Price,
		Currency:      serviceCreateDTO.Currency,
		Observations:  serviceCreateDTO.Observations,
		ActorID:       actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrTransactionFailure):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ServiceResponse{
		ID:            serviceEntity.ID,
		ClientID:      serviceEntity.ClientID,
		Origin:        serviceEntity.Origin,
		Destination:   serviceEntity.Destination,
		TentativeDate: serviceEntity.TentativeDate,
		Cargo:         serviceEntity.Cargo,
		Weight:        serviceEntity.Weight,
		Price:         serviceEntity.Price,
		Currency:      serviceEntity.Currency,
		Observations:  serviceEntity.Observations,
		Status:        serviceEntity.Status.String(),
		StartedAt:     serviceEntity.StartedAt,
		EndedAt:       serviceEntity.EndedAt,
		CreatedBy:     serviceEntity.CreatedBy,
		CreatedAt:     serviceEntity.CreatedAt,
		UpdatedAt:     serviceEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
