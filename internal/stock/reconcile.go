package stock

import (
	"errors"
	"strconv"

	"poultry-backend/internal/models"
)

// ReconcileResult is a fully computed dispatch batch ready to persist.
// GrandTotalShort can go negative when surpluses outweigh shortages;
// it is stored as-is, never clamped.
type ReconcileResult struct {
	Trips           []models.Trip
	GrandTotalOrder int
	GrandTotalShort int
}

// ReconcileTrips validates and computes one dispatch batch. Validation
// is all-or-nothing: a single trip missing a source or destination
// rejects the whole batch before anything is written.
func ReconcileTrips(inputs []models.TripInput) (*ReconcileResult, error) {
	if len(inputs) == 0 {
		return nil, errors.New("dispatch batch needs at least one trip")
	}

	for i, in := range inputs {
		if in.SourceLocation == "" || in.DestinationLocation == "" {
			return nil, errors.New("trip " + strconv.Itoa(i+1) + " is missing a source or destination location")
		}
	}

	result := &ReconcileResult{Trips: make([]models.Trip, 0, len(inputs))}
	for i, in := range inputs {
		trip := reconcileTrip(in)
		trip.Position = i + 1
		result.GrandTotalOrder += trip.TotalOrderEggs
		result.GrandTotalShort += trip.TotalShortEggs
		result.Trips = append(result.Trips, trip)
	}
	return result, nil
}

// reconcileTrip computes one trip's derived fields. The ordered side
// includes a loose damage allowance with no received counterpart, so
// the shortage must come from the per-denomination differences; the
// two totals are intentionally asymmetric and must not be subtracted.
func reconcileTrip(in models.TripInput) models.Trip {
	t := models.Trip{
		ID:                  in.ID,
		SourceLocation:      in.SourceLocation,
		DestinationLocation: in.DestinationLocation,
		Description:         in.Description,
		OrdPack30:           ParseCount(in.OrdPack30),
		OrdPack10:           ParseCount(in.OrdPack10),
		OrdPack06:           ParseCount(in.OrdPack06),
		OrdLoose:            ParseCount(in.OrdLoose),
		RecPack30:           ParseCount(in.RecPack30),
		RecPack10:           ParseCount(in.RecPack10),
		RecPack06:           ParseCount(in.RecPack06),
		DisposeEggs:         ParseCount(in.DisposeEggs),
		ReturnedFarm:        ParseCount(in.ReturnedFarm),
		ReturnedNRGP:        ParseCount(in.ReturnedNRGP),
	}

	t.TotalOrderEggs = t.OrdPack30*PackOf30 + t.OrdPack10*PackOf10 + t.OrdPack06*PackOf06 + t.OrdLoose
	t.TotalReceivedEggs = t.RecPack30*PackOf30 + t.RecPack10*PackOf10 + t.RecPack06*PackOf06

	t.ShortPack30 = t.OrdPack30 - t.RecPack30
	t.ShortPack10 = t.OrdPack10 - t.RecPack10
	t.ShortPack06 = t.OrdPack06 - t.RecPack06
	t.TotalShortEggs = t.ShortPack30*PackOf30 + t.ShortPack10*PackOf10 + t.ShortPack06*PackOf06

	return t
}

// TripDiff is the id-set difference between a batch's stored trips and
// an edited submission.
type TripDiff struct {
	Create []models.Trip
	Update []models.Trip
	Delete []int
}

// DiffTrips reconciles an edited trip list against the stored one by
// record id. Trips keeping their id update in place, id-less trips are
// created, and stored ids absent from the edit are deleted. A full
// replace-all would lose per-trip history held outside this engine.
func DiffTrips(existing []models.Trip, edited []models.Trip) TripDiff {
	var diff TripDiff

	known := make(map[int]bool, len(existing))
	for _, t := range existing {
		known[t.ID] = true
	}

	kept := make(map[int]bool, len(edited))
	for _, t := range edited {
		if t.ID != 0 && known[t.ID] {
			diff.Update = append(diff.Update, t)
			kept[t.ID] = true
		} else {
			diff.Create = append(diff.Create, t)
		}
	}

	for _, t := range existing {
		if !kept[t.ID] {
			diff.Delete = append(diff.Delete, t.ID)
		}
	}

	return diff
}
