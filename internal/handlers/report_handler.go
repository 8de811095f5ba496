package handlers

import (
	"net/http"

	"poultry-backend/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

func (h *ReportHandler) serveCSV(w http.ResponseWriter, r *http.Request, filename string,
	render func(branch, from, to string) error) {
	q := r.URL.Query()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := render(q.Get("branch"), q.Get("from"), q.Get("to")); err != nil {
		// Headers may already be out; report what we can
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func (h *ReportHandler) DispatchRegister(w http.ResponseWriter, r *http.Request) {
	h.serveCSV(w, r, "dispatch_register.csv", func(branch, from, to string) error {
		return h.Service.DispatchRegisterCSV(r.Context(), w, branch, from, to)
	})
}

func (h *ReportHandler) Cashbook(w http.ResponseWriter, r *http.Request) {
	h.serveCSV(w, r, "cashbook.csv", func(branch, from, to string) error {
		return h.Service.CashbookCSV(r.Context(), w, branch, from, to)
	})
}

func (h *ReportHandler) ProductionRegister(w http.ResponseWriter, r *http.Request) {
	h.serveCSV(w, r, "production_register.csv", func(branch, from, to string) error {
		return h.Service.ProductionRegisterCSV(r.Context(), w, branch, from, to)
	})
}

func (h *ReportHandler) DamageRegister(w http.ResponseWriter, r *http.Request) {
	h.serveCSV(w, r, "damage_register.csv", func(branch, from, to string) error {
		return h.Service.DamageRegisterCSV(r.Context(), w, branch, from, to)
	})
}
