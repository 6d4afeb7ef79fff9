package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sync/atomic"

	"voyago/internal/domain/models"
)

// Cities the simulated network serves. Search criteria must name two of these.
var Cities = []string{
	"Bengaluru", "Chennai", "Hyderabad", "Delhi",
	"Chandigarh", "Mumbai", "Madurai", "Mangalore",
}

func IsKnownCity(name string) bool {
	for _, c := range Cities {
		if c == name {
			return true
		}
	}
	return false
}

var (
	operators      = []string{"Voyago Travels", "GreenLine", "CityConnect", "RoadKing", "StarBus"}
	vehicleClasses = []string{"Sleeper", "Semi-sleeper", "AC Volvo", "Non-AC Seater"}
	fareTiers      = []int64{450, 600, 850, 1200, 1500}
)

// AvailabilityProvider abstracts trip search so the session can run against
// the randomized service in production and fixtures in tests.
type AvailabilityProvider interface {
	Search(criteria models.SearchCriteria) []models.Trip
}

// AvailabilityService simulates a schedule backend. It keeps a fixed pool of
// trip templates and derives a fresh occupancy snapshot per query, so two
// searches for the same route may return different seat availability.
type AvailabilityService struct {
	pool  []models.Trip
	seed  int64
	calls atomic.Int64
}

const templatePoolSize = 50

func NewAvailabilityService(seed int64) *AvailabilityService {
	s := &AvailabilityService{seed: seed}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < templatePoolSize; i++ {
		origin := Cities[rng.Intn(len(Cities))]
		destination := Cities[rng.Intn(len(Cities))]
		for destination == origin {
			destination = Cities[rng.Intn(len(Cities))]
		}
		s.pool = append(s.pool, randomTrip(rng, origin, destination))
	}
	return s
}

// Search returns every pooled trip for the requested pair, each with its own
// random occupancy draw. A pair with no pooled trips gets 3-5 synthesized
// ones, so the result is never empty and never an error.
func (s *AvailabilityService) Search(criteria models.SearchCriteria) []models.Trip {
	rng := s.queryRand(criteria.Date)

	var results []models.Trip
	for _, tpl := range s.pool {
		if tpl.Origin == criteria.Origin && tpl.Destination == criteria.Destination {
			results = append(results, withOccupancy(tpl, rng))
		}
	}
	if len(results) == 0 {
		n := 3 + rng.Intn(3)
		for i := 0; i < n; i++ {
			trip := randomTrip(rng, criteria.Origin, criteria.Destination)
			results = append(results, withOccupancy(trip, rng))
		}
	}
	return results
}

// queryRand derives an RNG independent per call, with the journey date
// hashed into the seed.
func (s *AvailabilityService) queryRand(date string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(date))
	n := s.calls.Add(1)
	return rand.New(rand.NewSource(s.seed ^ int64(h.Sum64()) ^ n*0x9e3779b97f4a7c15))
}

func randomTrip(rng *rand.Rand, origin, destination string) models.Trip {
	depHour := rng.Intn(24)
	depMinute := []int{0, 15, 30, 45}[rng.Intn(4)]
	durationHours := 5 + rng.Intn(8)
	arrHour := (depHour + durationHours) % 24

	return models.Trip{
		ID:            fmt.Sprintf("BUS%d", 1000+rng.Intn(9000)),
		Operator:      operators[rng.Intn(len(operators))],
		VehicleClass:  vehicleClasses[rng.Intn(len(vehicleClasses))],
		Origin:        origin,
		Destination:   destination,
		DepartureTime: fmt.Sprintf("%02d:%02d", depHour, depMinute),
		ArrivalTime:   fmt.Sprintf("%02d:%02d", arrHour, depMinute),
		Duration:      fmt.Sprintf("%dh 00m", durationHours),
		Price:         fareTiers[rng.Intn(len(fareTiers))],
		TotalSeats:    models.TotalSeats,
	}
}

// withOccupancy copies the template and draws 0..20 occupied seats.
func withOccupancy(tpl models.Trip, rng *rand.Rand) models.Trip {
	codes := models.AllSeatCodes()
	count := rng.Intn(21)

	occupied := make([]string, 0, count)
	for _, idx := range rng.Perm(len(codes))[:count] {
		occupied = append(occupied, codes[idx])
	}
	tpl.OccupiedSeats = occupied
	return tpl
}
