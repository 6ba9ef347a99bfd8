package api

import (
	"encoding/json"
	"net/http"

	"turnero/internal/service"
)

type AdminHandler struct {
	Service *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req ProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	provider, err := h.Service.CreateProvider(req.Name)
	if err != nil {
		writeServiceError(w, err, "Could not create provider")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ProviderResponse{ID: provider.ID, Name: provider.Name})
}

func (h *AdminHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	client, err := h.Service.CreateClient(req.Name, req.Email)
	if err != nil {
		writeServiceError(w, err, "Could not create client")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ClientResponse{ID: client.ID, Name: client.Name, Email: client.Email})
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	provider := r.URL.Query().Get("provider")
	reservations, err := h.Service.ListReservations(date, provider)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reservations)
}
