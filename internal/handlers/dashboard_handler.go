package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"poultry-backend/internal/middleware"
	"poultry-backend/internal/models"
	"poultry-backend/internal/services"
)

type DashboardHandler struct {
	Dashboard     *services.DashboardService
	Cashbook      *services.CashbookService
	Notifications *services.NotificationService
}

func NewDashboardHandler(dashboard *services.DashboardService, cashbook *services.CashbookService, notifications *services.NotificationService) *DashboardHandler {
	return &DashboardHandler{
		Dashboard:     dashboard,
		Cashbook:      cashbook,
		Notifications: notifications,
	}
}

// Stock serves the branch stock position, "All" when unspecified.
func (h *DashboardHandler) Stock(w http.ResponseWriter, r *http.Request) {
	branch := r.URL.Query().Get("branch")

	resp, err := h.Dashboard.StockSummary(r.Context(), branch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Activity serves the caller's recent activity feed.
func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	activities, err := h.Notifications.RecentActivity(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if activities == nil {
		activities = []models.Notification{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}

// Summary bundles the stock and cash positions for the landing page.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	branch := r.URL.Query().Get("branch")

	stockResp, err := h.Dashboard.StockSummary(r.Context(), branch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cashResp, err := h.Cashbook.Summary(r.Context(), branch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"stock": stockResp,
		"cash":  cashResp,
	})
}
