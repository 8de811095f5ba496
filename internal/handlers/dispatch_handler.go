package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"poultry-backend/internal/middleware"
	"poultry-backend/internal/models"
	"poultry-backend/internal/services"
)

type DispatchHandler struct {
	Service             *services.DispatchService
	NotificationService *services.NotificationService
}

func NewDispatchHandler(s *services.DispatchService, ns *services.NotificationService) *DispatchHandler {
	return &DispatchHandler{
		Service:             s,
		NotificationService: ns,
	}
}

func (h *DispatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveDispatchBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	batch, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(batch)
}

func (h *DispatchHandler) List(w http.ResponseWriter, r *http.Request) {
	branch := r.URL.Query().Get("branch")

	batches, err := h.Service.List(r.Context(), branch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if batches == nil {
		batches = []models.DispatchBatch{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(batches)
}

func (h *DispatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid batch ID", http.StatusBadRequest)
		return
	}

	batch, err := h.Service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(batch)
}

func (h *DispatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid batch ID", http.StatusBadRequest)
		return
	}

	var req models.SaveDispatchBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	userEmail, _ := middleware.GetEmailFromContext(r.Context())

	batch, err := h.Service.Update(r.Context(), id, &req, userID, userEmail)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Edits after the fact are worth flagging to the whole office.
	// Notification failure never fails the edit.
	if err := h.NotificationService.RecordActivity(r.Context(),
		"Dispatch batch edited",
		userEmail+" edited the "+batch.BatchDate+" dispatch for "+batch.Branch,
		batch.Branch); err != nil {
		log.Printf("[Dispatch] Failed to record edit activity for batch %d: %v", id, err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(batch)
}

func (h *DispatchHandler) EditHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid batch ID", http.StatusBadRequest)
		return
	}

	logs, err := h.Service.EditHistory(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if logs == nil {
		logs = []models.DispatchEditLog{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logs)
}

func (h *DispatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid batch ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Batch deleted"})
}
