package service_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	serviceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actorID, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil || actorID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var serviceAssignDTO ServiceAssignRequest
	err = json.NewDecoder(r.Body).Decode(&serviceAssignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	serviceEntity, err := h.service.AssignPrimary(r.Context(), dispatch.AssignPrimaryParams{
		ServiceID: serviceID,
		DriverID:  serviceAssignDTO.DriverID,
		TractorID: serviceAssignDTO.TractorID,
		TrailerID: serviceAssignDTO.TrailerID,
		Notes:     serviceAssignDTO.Notes,
		Force:     serviceAssignDTO.Force,
		ActorID:   actorID,
	})
	if err != nil {
		var conflictErr *dispatch.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.writeConflicts(w, conflictErr)
		case errors.Is(err, dispatch.ErrInvalidServiceID),
			errors.Is(err, dispatch.ErrInvalidResourceID),
			errors.Is(err, dispatch.ErrMissingRequiredFields),
			errors.Is(err, dispatch.ErrIllegalState):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrServiceNotFound),
			errors.Is(err, dispatch.ErrResourceNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrTransactionFailure):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ServiceAssignResponse{
		ID:           serviceEntity.ID,
		Status:       serviceEntity.Status.String(),
		DriverID:     serviceEntity.DriverID,
		DriverName:   serviceEntity.DriverName,
		TractorID:    serviceEntity.TractorID,
		TractorPlate: serviceEntity.TractorPlate,
		TrailerID:    serviceEntity.TrailerID,
		TrailerPlate: serviceEntity.TrailerPlate,
		UpdatedAt:    serviceEntity.UpdatedAt,
		StartedAt:    serviceEntity.StartedAt,
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

func (h *Handler) writeConflicts(w http.ResponseWriter, conflictErr *dispatch.ConflictError) {
	response := ConflictResponse{
		Status:    "WARNING",
		Conflicts: conflictErr.Messages,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
