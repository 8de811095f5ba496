package stock

import (
	"testing"

	"poultry-backend/internal/models"
)

func tripInput(src, dst string) models.TripInput {
	return models.TripInput{SourceLocation: src, DestinationLocation: dst}
}

func TestReconcileTripsRejectsMissingLocations(t *testing.T) {
	tests := []struct {
		name   string
		inputs []models.TripInput
	}{
		{"empty batch", nil},
		{"missing source", []models.TripInput{tripInput("", "Shop A")}},
		{"missing destination", []models.TripInput{tripInput("Farm 1", "")}},
		{"one bad trip fails the batch", []models.TripInput{
			tripInput("Farm 1", "Shop A"),
			tripInput("Farm 2", ""),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReconcileTrips(tt.inputs); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestReconcileSingleTrip(t *testing.T) {
	in := tripInput("Farm 1", "Shop A")
	in.OrdPack30 = "100"
	in.RecPack30 = "95"

	result, err := ReconcileTrips([]models.TripInput{in})
	if err != nil {
		t.Fatalf("ReconcileTrips: %v", err)
	}

	trip := result.Trips[0]
	if trip.TotalOrderEggs != 3000 {
		t.Errorf("TotalOrderEggs = %d, want 3000", trip.TotalOrderEggs)
	}
	if trip.TotalReceivedEggs != 2850 {
		t.Errorf("TotalReceivedEggs = %d, want 2850", trip.TotalReceivedEggs)
	}
	if trip.ShortPack30 != 5 {
		t.Errorf("ShortPack30 = %d, want 5", trip.ShortPack30)
	}
	if trip.TotalShortEggs != 150 {
		t.Errorf("TotalShortEggs = %d, want 150", trip.TotalShortEggs)
	}
	if result.GrandTotalOrder != 3000 || result.GrandTotalShort != 150 {
		t.Errorf("grand totals = %d/%d, want 3000/150", result.GrandTotalOrder, result.GrandTotalShort)
	}
}

// The ordered side's loose damage allowance has no received
// counterpart; a fully received trip with a loose allowance must show
// zero shortage, not a surplus of the allowance.
func TestReconcileShortageAsymmetry(t *testing.T) {
	in := tripInput("Farm 1", "Shop A")
	in.OrdPack30 = "10"
	in.OrdLoose = "50"
	in.RecPack30 = "10"

	result, err := ReconcileTrips([]models.TripInput{in})
	if err != nil {
		t.Fatalf("ReconcileTrips: %v", err)
	}

	trip := result.Trips[0]
	if trip.TotalOrderEggs != 350 {
		t.Errorf("TotalOrderEggs = %d, want 350", trip.TotalOrderEggs)
	}
	if trip.TotalShortEggs != 0 {
		t.Errorf("TotalShortEggs = %d, want 0", trip.TotalShortEggs)
	}
	if !trip.IsPerfect() {
		t.Error("trip with no denomination shortage should be perfect")
	}
}

// Receiving more than ordered reports a negative shortage; it is not
// clamped, and the grand total may go negative system-wide.
func TestReconcileSurplusStaysNegative(t *testing.T) {
	in := tripInput("Farm 1", "Shop A")
	in.OrdPack10 = "5"
	in.RecPack10 = "8"

	result, err := ReconcileTrips([]models.TripInput{in})
	if err != nil {
		t.Fatalf("ReconcileTrips: %v", err)
	}

	trip := result.Trips[0]
	if trip.ShortPack10 != -3 {
		t.Errorf("ShortPack10 = %d, want -3", trip.ShortPack10)
	}
	if trip.TotalShortEggs != -30 {
		t.Errorf("TotalShortEggs = %d, want -30", trip.TotalShortEggs)
	}
	if result.GrandTotalShort != -30 {
		t.Errorf("GrandTotalShort = %d, want -30", result.GrandTotalShort)
	}
	if !trip.IsPerfect() {
		t.Error("surplus-only trip should still be perfect")
	}
}

func TestReconcileMultiTripGrandTotals(t *testing.T) {
	short := tripInput("Farm 1", "Shop A")
	short.OrdPack30 = "100"
	short.RecPack30 = "95"

	surplus := tripInput("Farm 2", "Shop B")
	surplus.OrdPack06 = "10"
	surplus.RecPack06 = "12"

	result, err := ReconcileTrips([]models.TripInput{short, surplus})
	if err != nil {
		t.Fatalf("ReconcileTrips: %v", err)
	}

	if result.GrandTotalOrder != 3060 {
		t.Errorf("GrandTotalOrder = %d, want 3060", result.GrandTotalOrder)
	}
	if result.GrandTotalShort != 138 {
		t.Errorf("GrandTotalShort = %d, want 138", result.GrandTotalShort)
	}
	if result.Trips[0].Position != 1 || result.Trips[1].Position != 2 {
		t.Errorf("positions = %d,%d, want 1,2", result.Trips[0].Position, result.Trips[1].Position)
	}
}

func TestReconcileIdempotence(t *testing.T) {
	inputs := []models.TripInput{}
	for _, src := range []string{"Farm 1", "Farm 2", "Farm 3"} {
		in := tripInput(src, "Shop A")
		in.OrdPack30 = "20"
		in.OrdLoose = "12"
		in.RecPack30 = "18"
		in.RecPack10 = "1"
		inputs = append(inputs, in)
	}

	first, err := ReconcileTrips(inputs)
	if err != nil {
		t.Fatalf("first reconcile: %v", err)
	}
	second, err := ReconcileTrips(inputs)
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}

	if first.GrandTotalOrder != second.GrandTotalOrder {
		t.Errorf("GrandTotalOrder changed between runs: %d vs %d", first.GrandTotalOrder, second.GrandTotalOrder)
	}
	if first.GrandTotalShort != second.GrandTotalShort {
		t.Errorf("GrandTotalShort changed between runs: %d vs %d", first.GrandTotalShort, second.GrandTotalShort)
	}
}

func TestDiffTrips(t *testing.T) {
	existing := []models.Trip{
		{ID: 1, SourceLocation: "Farm 1"},
		{ID: 2, SourceLocation: "Farm 2"},
		{ID: 3, SourceLocation: "Farm 3"},
	}
	edited := []models.Trip{
		{ID: 2, SourceLocation: "Farm 2 edited"},
		{SourceLocation: "Farm 4"},
		{ID: 3, SourceLocation: "Farm 3"},
	}

	diff := DiffTrips(existing, edited)

	if len(diff.Update) != 2 {
		t.Fatalf("updates = %d, want 2", len(diff.Update))
	}
	if diff.Update[0].ID != 2 || diff.Update[1].ID != 3 {
		t.Errorf("update ids = %d,%d, want 2,3", diff.Update[0].ID, diff.Update[1].ID)
	}
	if len(diff.Create) != 1 || diff.Create[0].SourceLocation != "Farm 4" {
		t.Errorf("creates = %+v, want one Farm 4 trip", diff.Create)
	}
	if len(diff.Delete) != 1 || diff.Delete[0] != 1 {
		t.Errorf("deletes = %v, want [1]", diff.Delete)
	}
}

func TestDiffTripsUnknownIDIsCreated(t *testing.T) {
	existing := []models.Trip{{ID: 5}}
	edited := []models.Trip{{ID: 99, SourceLocation: "stale"}}

	diff := DiffTrips(existing, edited)

	if len(diff.Create) != 1 {
		t.Errorf("creates = %d, want 1 (stale id treated as new)", len(diff.Create))
	}
	if len(diff.Delete) != 1 || diff.Delete[0] != 5 {
		t.Errorf("deletes = %v, want [5]", diff.Delete)
	}
}
