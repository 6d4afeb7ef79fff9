package services

import (
	"testing"

	"voyago/internal/domain/models"
)

func validTrip(t *testing.T, trip models.Trip, criteria models.SearchCriteria) {
	t.Helper()
	if trip.Origin != criteria.Origin || trip.Destination != criteria.Destination {
		t.Fatalf("trip %s route %s->%s does not match query %s->%s",
			trip.ID, trip.Origin, trip.Destination, criteria.Origin, criteria.Destination)
	}
	if trip.TotalSeats != models.TotalSeats {
		t.Fatalf("trip %s has %d seats, want %d", trip.ID, trip.TotalSeats, models.TotalSeats)
	}
	if trip.Available() < 0 {
		t.Fatalf("trip %s has negative availability: %d", trip.ID, trip.Available())
	}
	if len(trip.OccupiedSeats) > 20 {
		t.Fatalf("trip %s has %d occupied seats, max is 20", trip.ID, len(trip.OccupiedSeats))
	}
	for _, code := range trip.OccupiedSeats {
		if !models.IsValidSeatCode(code) {
			t.Fatalf("trip %s has invalid occupied seat %q", trip.ID, code)
		}
	}
	priceOK := false
	for _, p := range fareTiers {
		if trip.Price == p {
			priceOK = true
		}
	}
	if !priceOK {
		t.Fatalf("trip %s price %d not in fare tiers", trip.ID, trip.Price)
	}
}

func TestSearchAlwaysReturnsMatchingTrips(t *testing.T) {
	svc := NewAvailabilityService(42)

	for _, origin := range Cities {
		for _, destination := range Cities {
			if origin == destination {
				continue
			}
			criteria := models.SearchCriteria{Origin: origin, Destination: destination, Date: "15-08-2025"}
			trips := svc.Search(criteria)
			if len(trips) == 0 {
				t.Fatalf("search %s->%s returned no trips", origin, destination)
			}
			for _, trip := range trips {
				validTrip(t, trip, criteria)
			}
		}
	}
}

func TestSearchSynthesizesWhenPoolHasNoMatch(t *testing.T) {
	// Empty pool forces the synthesis fallback on every query.
	svc := &AvailabilityService{seed: 7}

	criteria := models.SearchCriteria{Origin: "Chennai", Destination: "Bengaluru", Date: "01-01-2026"}
	trips := svc.Search(criteria)
	if len(trips) < 3 || len(trips) > 5 {
		t.Fatalf("fallback returned %d trips, want 3..5", len(trips))
	}
	for _, trip := range trips {
		validTrip(t, trip, criteria)
	}
}

func TestSearchDrawsIndependentOccupancy(t *testing.T) {
	svc := NewAvailabilityService(99)
	criteria := models.SearchCriteria{Origin: "Chennai", Destination: "Bengaluru", Date: "15-08-2025"}

	counts := map[int]bool{}
	for i := 0; i < 8; i++ {
		for _, trip := range svc.Search(criteria) {
			counts[len(trip.OccupiedSeats)] = true
		}
	}
	if len(counts) < 2 {
		t.Fatalf("occupancy identical across repeated searches: %v", counts)
	}
}
