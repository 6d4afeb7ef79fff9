package repositories

import (
	"fmt"
	"strconv"

	"voyago/internal/domain"
	"voyago/internal/domain/models"
	"voyago/internal/utils"
)

// LedgerHeader is the fixed header row of the booking ledger. It is written
// exactly once, when the backing store is empty.
var LedgerHeader = []string{
	"Booking ID", "From", "To", "Date of Journey", "Bus Name",
	"Seat Numbers", "Passenger Name", "Age", "Gender", "Contact", "Email", "Total Fare",
}

// BookingLedger is the append-only record of confirmed bookings. Append is
// all-or-nothing at row granularity: a failed append leaves the store
// unchanged. There is no update or delete.
type BookingLedger interface {
	Append(b models.Booking) (string, error)
	Get(id string) (models.Booking, error)
	List() ([]models.Booking, error)
	Count() (int, error)
}

func bookingRow(b models.Booking) []string {
	return []string{
		b.ID,
		b.Origin,
		b.Destination,
		b.Date,
		b.Operator,
		utils.JoinSeatList(b.Seats),
		b.Passenger.Name,
		strconv.Itoa(b.Passenger.Age),
		b.Passenger.Gender,
		b.Passenger.Phone,
		b.Passenger.Email,
		strconv.FormatInt(b.TotalFare, 10),
	}
}

func bookingFromRow(rec []string) (models.Booking, error) {
	if len(rec) != len(LedgerHeader) {
		return models.Booking{}, fmt.Errorf("ledger row has %d fields, want %d", len(rec), len(LedgerHeader))
	}
	age, err := strconv.Atoi(rec[7])
	if err != nil {
		return models.Booking{}, fmt.Errorf("ledger row %s: bad age %q", rec[0], rec[7])
	}
	fare, err := strconv.ParseInt(rec[11], 10, 64)
	if err != nil {
		return models.Booking{}, fmt.Errorf("ledger row %s: bad fare %q", rec[0], rec[11])
	}
	return models.Booking{
		ID:          rec[0],
		Origin:      rec[1],
		Destination: rec[2],
		Date:        rec[3],
		Operator:    rec[4],
		Seats:       utils.SplitSeatList(rec[5]),
		Passenger: models.PassengerDetails{
			Name:   rec[6],
			Age:    age,
			Gender: rec[8],
			Phone:  rec[9],
			Email:  rec[10],
		},
		TotalFare: fare,
	}, nil
}

func notFound(id string) error {
	return domain.NotFoundError{Resource: fmt.Sprintf("booking %s", id)}
}
