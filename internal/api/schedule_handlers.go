package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
	"turnero/internal/service"
)

type ScheduleHandler struct {
	Service *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// writeServiceError maps typed service errors to their HTTP status and
// falls back to 500 for everything else.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	http.Error(w, fallback, http.StatusInternalServerError)
}

func (h *ScheduleHandler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	providerName := mux.Vars(r)["name"]
	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	availability, err := h.Service.CreateAvailability(providerName, req)
	if err != nil {
		writeServiceError(w, err, "Error creating availability")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(availabilityResponse(availability))
}

func (h *ScheduleHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	providerName := mux.Vars(r)["name"]
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "Missing date parameter", http.StatusBadRequest)
		return
	}
	slots, err := h.Service.GetAvailableSlots(providerName, date)
	if err != nil {
		writeServiceError(w, err, "Error getting available slots")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

func (h *ScheduleHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	reservation, err := h.Service.CreateReservation(req)
	if err != nil {
		writeServiceError(w, err, "Error creating reservation")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(reservationResponse(reservation))
}

func (h *ScheduleHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	reservation, err := h.Service.ConfirmReservation(id)
	if err != nil {
		writeServiceError(w, err, "Error confirming reservation")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reservationResponse(reservation))
}
