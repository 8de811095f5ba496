package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"poultry-backend/internal/alert"
	"poultry-backend/internal/cache"
	"poultry-backend/internal/metrics"
	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
	"poultry-backend/internal/stock"
	"poultry-backend/internal/timeutil"
)

// StockResponse is what the dashboard renders. CurrentStock stays
// signed; DisplayStock is the zero-floored presentation value.
type StockResponse struct {
	Branch          string  `json:"branch"`
	TotalProduced   int     `json:"total_produced"`
	TotalDispatched int     `json:"total_dispatched"`
	TotalDamaged    int     `json:"total_damaged"`
	CurrentStock    int     `json:"current_stock"`
	DisplayStock    int     `json:"display_stock"`
	TrayEquivalent  float64 `json:"tray_equivalent"`
	ComputedAt      string  `json:"computed_at"`
}

type DashboardService struct {
	productionRepo *repositories.ProductionRepository
	dispatchRepo   *repositories.DispatchRepository
	damageRepo     *repositories.DamageRepository
	settingRepo    *repositories.SystemSettingRepository
	trigger        *alert.Trigger
	defaultLimit   int

	// generation guards concurrent recomputations: only the latest
	// cycle may publish, stale fetches are discarded
	generation atomic.Uint64
}

func NewDashboardService(
	productionRepo *repositories.ProductionRepository,
	dispatchRepo *repositories.DispatchRepository,
	damageRepo *repositories.DamageRepository,
	settingRepo *repositories.SystemSettingRepository,
	trigger *alert.Trigger,
	defaultThreshold int,
) *DashboardService {
	return &DashboardService{
		productionRepo: productionRepo,
		dispatchRepo:   dispatchRepo,
		damageRepo:     damageRepo,
		settingRepo:    settingRepo,
		trigger:        trigger,
		defaultLimit:   defaultThreshold,
	}
}

// StockSummary computes the branch's stock position. Each source leg
// that fails contributes zero and is logged; one unreachable table
// degrades the number instead of blocking the dashboard.
func (s *DashboardService) StockSummary(ctx context.Context, branch string) (*StockResponse, error) {
	if branch == "" {
		branch = stock.BranchAll
	}

	if data, ok := cache.GetCached(ctx, cache.StockSummaryKey(branch)); ok {
		var resp StockResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	gen := s.generation.Add(1)

	produced := s.fetchLeg(ctx, "production", s.productionRepo.ListTotals)
	dispatched := s.fetchLeg(ctx, "dispatch", s.dispatchRepo.ListOrderTotals)
	damaged := s.fetchLeg(ctx, "damage", s.damageRepo.ListTotals)

	summary := stock.Aggregate(produced, dispatched, damaged, branch)
	resp := &StockResponse{
		Branch:          branch,
		TotalProduced:   summary.TotalProduced,
		TotalDispatched: summary.TotalDispatched,
		TotalDamaged:    summary.TotalDamaged,
		CurrentStock:    summary.CurrentStock(),
		DisplayStock:    summary.DisplayStock(),
		TrayEquivalent:  summary.TrayEquivalent(),
		ComputedAt:      timeutil.FormatIST(timeutil.Now(), timeutil.DateTimeLayout),
	}

	// A newer cycle started while we were fetching: serve the result
	// but do not publish it as current state
	if s.generation.Load() != gen {
		return resp, nil
	}

	if data, err := json.Marshal(resp); err == nil {
		cache.SetCached(ctx, cache.StockSummaryKey(branch), data, 2*time.Minute)
	}
	metrics.CurrentStockEggs.WithLabelValues(branch).Set(float64(resp.CurrentStock))

	if branch != stock.BranchAll {
		threshold := s.settingRepo.GetInt(ctx, models.SettingLowStockThreshold, s.defaultLimit)
		s.trigger.Check(ctx, branch, summary, threshold, timeutil.Now())
	}

	return resp, nil
}

func (s *DashboardService) fetchLeg(ctx context.Context, name string, fetch func(context.Context) ([]stock.Record, error)) []stock.Record {
	records, err := fetch(ctx)
	if err != nil {
		log.Printf("[Dashboard] %s totals unreachable, contributing zero: %v", name, err)
		return nil
	}
	return records
}

// CheckBranch recomputes one branch uncached and runs the alert
// trigger. The scheduler sweeps every configured branch through this.
func (s *DashboardService) CheckBranch(ctx context.Context, branch string) error {
	if branch == "" || branch == stock.BranchAll {
		return fmt.Errorf("branch %q cannot be checked", branch)
	}

	produced := s.fetchLeg(ctx, "production", s.productionRepo.ListTotals)
	dispatched := s.fetchLeg(ctx, "dispatch", s.dispatchRepo.ListOrderTotals)
	damaged := s.fetchLeg(ctx, "damage", s.damageRepo.ListTotals)

	summary := stock.Aggregate(produced, dispatched, damaged, branch)
	metrics.CurrentStockEggs.WithLabelValues(branch).Set(float64(summary.CurrentStock()))

	threshold := s.settingRepo.GetInt(ctx, models.SettingLowStockThreshold, s.defaultLimit)
	s.trigger.Check(ctx, branch, summary, threshold, timeutil.Now())
	return nil
}
