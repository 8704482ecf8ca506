package service_get

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

	detail, err := h.service.GetService(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidServiceID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrServiceNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	serviceEntity := detail.Service
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
		DriverID:      serviceEntity.DriverID,
		DriverName:    serviceEntity.DriverName,
		TractorID:     serviceEntity.TractorID,
		TractorPlate:  serviceEntity.TractorPlate,
		TrailerID:     serviceEntity.TrailerID,
		TrailerPlate:  serviceEntity.TrailerPlate,
		Status:        serviceEntity.Status.String(),
		StartedAt:     serviceEntity.StartedAt,
		EndedAt:       serviceEntity.EndedAt,
		CreatedBy:     serviceEntity.CreatedBy,
		CreatedAt:     serviceEntity.CreatedAt,
		UpdatedAt:     serviceEntity.UpdatedAt,
		Supplementals: make([]SupplementalResponse, 0, len(detail.Supplementals)),
		Notes:         make([]NoteResponse, 0, len(detail.Notes)),
	}

	for _, supplemental := range detail.Supplementals {
		response.Supplementals = append(response.Supplementals, SupplementalResponse{
			ID:           supplemental.ID,
			TruckID:      supplemental.TruckID,
			TruckPlate:   supplemental.TruckPlate,
			TrailerID:    supplemental.TrailerID,
			TrailerPlate: supplemental.TrailerPlate,
			DriverID:     supplemental.DriverID,
			DriverName:   supplemental.DriverName,
			Notes:        supplemental.Notes,
			AssignedBy:   supplemental.AssignedBy,
			AssignedAt:   supplemental.AssignedAt,
		})
	}

	for _, note := range detail.Notes {
		response.Notes = append(response.Notes, NoteResponse{
			ID:        note.ID,
			Author:    note.Author,
			Text:      note.Text,
			CreatedAt: note.CreatedAt,
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
