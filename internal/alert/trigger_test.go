package alert

import (
	"context"
	"testing"
	"time"

	"poultry-backend/internal/stock"
	"poultry-backend/internal/timeutil"
)

func summaryWithStock(n int) stock.Summary {
	return stock.Summary{TotalProduced: n}
}

func TestCheckAlertsOncePerDay(t *testing.T) {
	store := NewMemoryMarkerStore()
	notifier := NewMockNotifier()
	trigger := NewTrigger(store, notifier)

	today := time.Date(2025, 6, 10, 9, 0, 0, 0, timeutil.IST)
	summary := summaryWithStock(25000)

	trigger.Check(context.Background(), "Delhi", summary, 30000, today)
	if len(notifier.Sent) != 1 {
		t.Fatalf("first check sent %d alerts, want 1", len(notifier.Sent))
	}

	// Same day, same breach: no second alert
	trigger.Check(context.Background(), "Delhi", summary, 30000, today.Add(3*time.Hour))
	if len(notifier.Sent) != 1 {
		t.Errorf("second check same day sent %d alerts, want 1", len(notifier.Sent))
	}

	// Next day re-alerts
	trigger.Check(context.Background(), "Delhi", summary, 30000, today.AddDate(0, 0, 1))
	if len(notifier.Sent) != 2 {
		t.Errorf("next-day check sent %d alerts total, want 2", len(notifier.Sent))
	}
}

func TestCheckBranchesAlertIndependently(t *testing.T) {
	store := NewMemoryMarkerStore()
	notifier := NewMockNotifier()
	trigger := NewTrigger(store, notifier)

	today := time.Date(2025, 6, 10, 9, 0, 0, 0, timeutil.IST)

	trigger.Check(context.Background(), "Delhi", summaryWithStock(100), 30000, today)
	trigger.Check(context.Background(), "Lucknow", summaryWithStock(200), 30000, today)

	if len(notifier.Sent) != 2 {
		t.Fatalf("sent %d alerts, want 2", len(notifier.Sent))
	}
	if notifier.Sent[0] != "Delhi" || notifier.Sent[1] != "Lucknow" {
		t.Errorf("alert branches = %v, want [Delhi Lucknow]", notifier.Sent)
	}
}

func TestCheckRecoveryClearsMarker(t *testing.T) {
	store := NewMemoryMarkerStore()
	notifier := NewMockNotifier()
	trigger := NewTrigger(store, notifier)

	today := time.Date(2025, 6, 10, 9, 0, 0, 0, timeutil.IST)

	trigger.Check(context.Background(), "Delhi", summaryWithStock(25000), 30000, today)
	if len(notifier.Sent) != 1 {
		t.Fatalf("sent %d alerts, want 1", len(notifier.Sent))
	}

	// Stock recovers: marker cleared, no alert
	trigger.Check(context.Background(), "Delhi", summaryWithStock(45000), 30000, today.Add(time.Hour))
	if len(notifier.Sent) != 1 {
		t.Fatalf("recovery check sent %d alerts total, want 1", len(notifier.Sent))
	}

	// A fresh breach the same day alerts again immediately
	trigger.Check(context.Background(), "Delhi", summaryWithStock(20000), 30000, today.Add(2*time.Hour))
	if len(notifier.Sent) != 2 {
		t.Errorf("re-breach check sent %d alerts total, want 2", len(notifier.Sent))
	}
}

func TestCheckAtThresholdDoesNotAlert(t *testing.T) {
	store := NewMemoryMarkerStore()
	notifier := NewMockNotifier()
	trigger := NewTrigger(store, notifier)

	today := time.Date(2025, 6, 10, 9, 0, 0, 0, timeutil.IST)

	trigger.Check(context.Background(), "Delhi", summaryWithStock(30000), 30000, today)
	if len(notifier.Sent) != 0 {
		t.Errorf("at-threshold check sent %d alerts, want 0", len(notifier.Sent))
	}
}

// Negative true stock must reach the comparison unclamped.
func TestCheckNegativeStockAlerts(t *testing.T) {
	store := NewMemoryMarkerStore()
	notifier := NewMockNotifier()
	trigger := NewTrigger(store, notifier)

	today := time.Date(2025, 6, 10, 9, 0, 0, 0, timeutil.IST)
	summary := stock.Summary{TotalProduced: 1000, TotalDispatched: 1200}

	trigger.Check(context.Background(), "Delhi", summary, 30000, today)
	if len(notifier.Sent) != 1 {
		t.Errorf("negative-stock check sent %d alerts, want 1", len(notifier.Sent))
	}
}
