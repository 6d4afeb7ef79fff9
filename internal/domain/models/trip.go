package models

// Trip is one schedulable departure for a queried route/date, carrying a
// per-query snapshot of already-occupied seats.
type Trip struct {
	ID            string   `json:"id"`
	Operator      string   `json:"operator"`
	VehicleClass  string   `json:"vehicle_class"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      string   `json:"duration"`
	Price         int64    `json:"price"`
	TotalSeats    int      `json:"total_seats"`
	OccupiedSeats []string `json:"occupied_seats"`
}

// Available is total minus occupied; never negative as long as the
// occupied set is a subset of the valid seat codes.
func (t Trip) Available() int {
	return t.TotalSeats - len(t.OccupiedSeats)
}
