package service_supplemental_post

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

	var supplementalDTO SupplementalCreateRequest
	err = json.NewDecoder(r.Body).Decode(&supplementalDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.AddSupplemental(r.Context(), dispatch.AddSupplementalParams{
		ServiceID: serviceID,
		TruckID:   supplementalDTO.TruckID,
		TrailerID: supplementalDTO.TrailerID,
		DriverID:  supplementalDTO.DriverID,
		Notes:     supplementalDTO.Notes,
		Force:     supplementalDTO.Force,
		ActorID:   actorID,
	})
	if err != nil {
		var conflictErr *dispatch.ConflictError
		var duplicateErr *dispatch.DuplicateError
		switch {
		case errors.As(err, &duplicateErr):
			h.writeJSON(w, http.StatusBadRequest, ValidationResponse{
				Status: "ERROR",
				Errors: duplicateErr.Messages,
			})
		case errors.As(err, &conflictErr):
			h.writeJSON(w, http.StatusConflict, ConflictResponse{
				Status:    "WARNING",
				Conflicts: conflictErr.Messages,
			})
		case errors.Is(err, dispatch.ErrInvalidServiceID),
			errors.Is(err, dispatch.ErrInvalidResourceID),
			errors.Is(err, dispatch.ErrNoResources),
			errors.Is(err, dispatch.ErrNotesTooShort),
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

	response := SupplementalResponse{
		ID:           assignmentEntity.ID,
		ServiceID:    assignmentEntity.ServiceID,
		TruckID:      assignmentEntity.TruckID,
		TruckPlate:   assignmentEntity.TruckPlate,
		TrailerID:    assignmentEntity.TrailerID,
		TrailerPlate: assignmentEntity.TrailerPlate,
		DriverID:     assignmentEntity.DriverID,
		DriverName:   assignmentEntity.DriverName,
		Notes:        assignmentEntity.Notes,
		AssignedBy:   assignmentEntity.AssignedBy,
		AssignedAt:   assignmentEntity.AssignedAt,
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
