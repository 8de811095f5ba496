package services

import (
	"testing"

	"poultry-backend/internal/models"
)

func TestTripFieldChanges(t *testing.T) {
	old := models.Trip{
		ID:                  7,
		SourceLocation:      "Farm 1",
		DestinationLocation: "Shop A",
		OrdPack30:           100,
		RecPack30:           95,
	}
	updated := old
	updated.DestinationLocation = "Shop B"
	updated.RecPack30 = 100

	changes := tripFieldChanges(old, updated)
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2: %+v", len(changes), changes)
	}

	byField := map[string]fieldChange{}
	for _, c := range changes {
		byField[c.field] = c
	}

	if c := byField["destination_location"]; c.oldValue != "Shop A" || c.newValue != "Shop B" {
		t.Errorf("destination change = %+v", c)
	}
	if c := byField["rec_pack30"]; c.oldValue != "95" || c.newValue != "100" {
		t.Errorf("rec_pack30 change = %+v", c)
	}
}

func TestTripFieldChangesIdentical(t *testing.T) {
	trip := models.Trip{SourceLocation: "Farm 1", DestinationLocation: "Shop A", OrdPack30: 10}
	if changes := tripFieldChanges(trip, trip); len(changes) != 0 {
		t.Errorf("identical trips produced %d changes: %+v", len(changes), changes)
	}
}
