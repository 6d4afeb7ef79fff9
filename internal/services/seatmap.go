package services

import (
	"voyago/internal/domain"
	"voyago/internal/domain/models"
)

// SeatMap tracks the mutable seat selection for one trip. The occupied set
// comes from the trip snapshot and never changes for the map's lifetime;
// selected seats keep insertion order for display and for the ledger row.
type SeatMap struct {
	trip     models.Trip
	occupied map[string]bool
	selected []string
}

func NewSeatMap(trip models.Trip) *SeatMap {
	occupied := make(map[string]bool, len(trip.OccupiedSeats))
	for _, code := range trip.OccupiedSeats {
		occupied[code] = true
	}
	return &SeatMap{trip: trip, occupied: occupied}
}

func (m *SeatMap) Trip() models.Trip { return m.trip }

// Toggle flips the selection of a free seat. Occupied or unknown codes are
// rejected without changing the selection.
func (m *SeatMap) Toggle(code string) error {
	if !models.IsValidSeatCode(code) {
		return domain.InvalidSelectionError{Seat: code, Msg: "unknown seat code"}
	}
	if m.occupied[code] {
		return domain.InvalidSelectionError{Seat: code, Msg: "already booked"}
	}
	for i, s := range m.selected {
		if s == code {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return nil
		}
	}
	m.selected = append(m.selected, code)
	return nil
}

func (m *SeatMap) IsOccupied(code string) bool { return m.occupied[code] }

func (m *SeatMap) IsSelected(code string) bool {
	for _, s := range m.selected {
		if s == code {
			return true
		}
	}
	return false
}

// SelectedSeats returns the selection in the order seats were picked.
func (m *SeatMap) SelectedSeats() []string {
	out := make([]string, len(m.selected))
	copy(out, m.selected)
	return out
}

// TotalFare is always selected-count times the trip price.
func (m *SeatMap) TotalFare() int64 {
	return int64(len(m.selected)) * m.trip.Price
}

// CanProceed reports whether the funnel may advance past seat selection.
func (m *SeatMap) CanProceed() bool {
	return len(m.selected) >= 1
}

// FreeSeats lists seats that are neither occupied nor selected, in layout order.
func (m *SeatMap) FreeSeats() []string {
	var out []string
	for _, code := range models.AllSeatCodes() {
		if !m.occupied[code] && !m.IsSelected(code) {
			out = append(out, code)
		}
	}
	return out
}

// OccupiedSeats lists the immutable occupied set in layout order.
func (m *SeatMap) OccupiedSeats() []string {
	var out []string
	for _, code := range models.AllSeatCodes() {
		if m.occupied[code] {
			out = append(out, code)
		}
	}
	return out
}
