package alert

import (
	"context"
	"log"
	"time"

	"poultry-backend/internal/metrics"
	"poultry-backend/internal/stock"
	"poultry-backend/internal/timeutil"
)

// Trigger fires at most one low-stock alert per branch per calendar
// day. The marker store and notifier are injected collaborators.
type Trigger struct {
	store    MarkerStore
	notifier Notifier
}

func NewTrigger(store MarkerStore, notifier Notifier) *Trigger {
	return &Trigger{store: store, notifier: notifier}
}

// Check compares the branch's stock against the threshold and alerts
// when breached. The signed stock feeds the comparison; a branch that
// recovers to or above the threshold has its marker cleared so a later
// breach alerts the same day. All failures are logged and swallowed:
// alerting never blocks or fails the computation that invoked it.
func (t *Trigger) Check(ctx context.Context, branch string, summary stock.Summary, threshold int, today time.Time) {
	day := timeutil.FormatIST(today, timeutil.DateLayout)
	current := summary.CurrentStock()

	if current >= threshold {
		if err := t.store.ClearAlertDate(ctx, branch); err != nil {
			log.Printf("[Alert] Failed to clear marker for %s: %v", branch, err)
		}
		return
	}

	lastDate, err := t.store.LastAlertDate(ctx, branch)
	if err != nil {
		log.Printf("[Alert] Failed to read marker for %s: %v", branch, err)
		return
	}
	if lastDate == day {
		return
	}

	// Mark first so a failed delivery is not retried until tomorrow
	if err := t.store.SetAlertDate(ctx, branch, day); err != nil {
		log.Printf("[Alert] Failed to set marker for %s: %v", branch, err)
	}

	if err := t.notifier.SendLowStock(ctx, branch, current, summary.TrayEquivalent()); err != nil {
		log.Printf("[Alert] Delivery failed for %s: %v", branch, err)
		return
	}
	metrics.LowStockAlertsTotal.WithLabelValues(branch).Inc()
}
