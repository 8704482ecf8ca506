package service_status_post

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

	var statusChangeDTO StatusChangeRequest
	err = json.NewDecoder(r.Body).Decode(&statusChangeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	serviceEntity, err := h.service.ChangeStatus(r.Context(), dispatch.ChangeStatusParams{
		ServiceID: serviceID,
		Target:    statusChangeDTO.Status,
		Notes:     statusChangeDTO.Notes,
		At:        statusChangeDTO.At,
		ActorID:   actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidServiceID),
			errors.Is(err, dispatch.ErrMissingRequiredFields),
			errors.Is(err, dispatch.ErrUnknownStatus),
			errors.Is(err, dispatch.ErrInvalidTransition):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrServiceNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrTransactionFailure):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := StatusChangeResponse{
		ID:        serviceEntity.ID,
		Status:    serviceEntity.Status.String(),
		StartedAt: serviceEntity.StartedAt,
		EndedAt:   serviceEntity.EndedAt,
		UpdatedAt: serviceEntity.UpdatedAt,
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
