package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"voyago/internal/domain"
	"voyago/internal/domain/models"
	"voyago/internal/repositories"
	"voyago/internal/utils"
)

// SessionState names a stop in the booking funnel. Completed is transient:
// a confirmed payment resets the session straight back to Searching.
type SessionState string

const (
	StateSearching         SessionState = "searching"
	StateBrowsing          SessionState = "browsing"
	StateSelectingSeats    SessionState = "selecting_seats"
	StateEnteringDetails   SessionState = "entering_details"
	StateConfirmingPayment SessionState = "confirming_payment"
)

var genders = []string{"Male", "Female", "Other"}

// BookingSession drives one booking funnel: criteria -> trip -> seats ->
// passenger -> payment -> ledger. All mutation goes through its transition
// methods; the presentation layer only reads back snapshots.
type BookingSession struct {
	Provider AvailabilityProvider
	Ledger   repositories.BookingLedger

	state      SessionState
	criteria   models.SearchCriteria
	trips      []models.Trip
	seatMap    *SeatMap
	details    *models.PassengerDetails
	frozenFare int64

	issued map[string]bool
	rng    *rand.Rand
}

func NewBookingSession(provider AvailabilityProvider, ledger repositories.BookingLedger) *BookingSession {
	return &BookingSession{
		Provider: provider,
		Ledger:   ledger,
		state:    StateSearching,
		issued:   map[string]bool{},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *BookingSession) State() SessionState             { return s.state }
func (s *BookingSession) Criteria() models.SearchCriteria { return s.criteria }
func (s *BookingSession) Trips() []models.Trip            { return s.trips }
func (s *BookingSession) SeatMap() *SeatMap               { return s.seatMap }

func (s *BookingSession) Details() (models.PassengerDetails, bool) {
	if s.details == nil {
		return models.PassengerDetails{}, false
	}
	return *s.details, true
}

// TotalFare is the frozen fare once the funnel passed seat selection,
// otherwise the live seat-map fare.
func (s *BookingSession) TotalFare() int64 {
	if s.frozenFare > 0 {
		return s.frozenFare
	}
	if s.seatMap != nil {
		return s.seatMap.TotalFare()
	}
	return 0
}

// SubmitSearch validates criteria and moves to Browsing with fresh results.
// Invalid criteria leave the session exactly where it was. A valid search
// from a later state starts the funnel over.
func (s *BookingSession) SubmitSearch(criteria models.SearchCriteria) error {
	criteria.Origin = utils.TrimOrEmpty(criteria.Origin)
	criteria.Destination = utils.TrimOrEmpty(criteria.Destination)
	criteria.Date = utils.TrimOrEmpty(criteria.Date)

	if err := validateCriteria(criteria); err != nil {
		return err
	}

	s.reset()
	s.criteria = criteria
	s.trips = s.Provider.Search(criteria)
	s.state = StateBrowsing
	return nil
}

func validateCriteria(c models.SearchCriteria) error {
	if c.Origin == "" {
		return domain.ValidationError{Field: "origin", Msg: "required"}
	}
	if c.Destination == "" {
		return domain.ValidationError{Field: "destination", Msg: "required"}
	}
	if !IsKnownCity(c.Origin) {
		return domain.ValidationError{Field: "origin", Msg: "unknown city"}
	}
	if !IsKnownCity(c.Destination) {
		return domain.ValidationError{Field: "destination", Msg: "unknown city"}
	}
	if c.Origin == c.Destination {
		return domain.ValidationError{Field: "destination", Msg: "source and destination cannot be the same"}
	}
	if _, err := utils.ParseJourneyDate(c.Date); err != nil {
		return domain.ValidationError{Field: "date", Msg: "must be DD-MM-YYYY", Err: err}
	}
	return nil
}

// SelectTrip binds a fresh seat map to one of the browsed trips, discarding
// any previous selection.
func (s *BookingSession) SelectTrip(tripID string) error {
	if s.state != StateBrowsing {
		return domain.PreconditionError{Op: "select_trip", Msg: "no search results to choose from"}
	}
	for _, t := range s.trips {
		if t.ID == tripID {
			s.seatMap = NewSeatMap(t)
			s.details = nil
			s.frozenFare = 0
			s.state = StateSelectingSeats
			return nil
		}
	}
	return domain.NotFoundError{Resource: fmt.Sprintf("trip %s", tripID)}
}

func (s *BookingSession) ToggleSeat(code string) error {
	if s.state != StateSelectingSeats {
		return domain.PreconditionError{Op: "toggle_seat", Msg: "not selecting seats"}
	}
	return s.seatMap.Toggle(strings.ToUpper(utils.TrimOrEmpty(code)))
}

// Proceed freezes the fare and advances to passenger details. It requires
// at least one selected seat.
func (s *BookingSession) Proceed() error {
	if s.state != StateSelectingSeats {
		return domain.PreconditionError{Op: "proceed", Msg: "not selecting seats"}
	}
	if !s.seatMap.CanProceed() {
		return domain.PreconditionError{Op: "proceed", Msg: "select at least one seat"}
	}
	s.frozenFare = s.seatMap.TotalFare()
	s.state = StateEnteringDetails
	return nil
}

// SubmitDetails validates every passenger field; the first failing field is
// reported and the session stays in EnteringDetails.
func (s *BookingSession) SubmitDetails(in models.PassengerInput) error {
	if s.state != StateEnteringDetails {
		return domain.PreconditionError{Op: "submit_details", Msg: "not entering details"}
	}
	details, err := validatePassenger(in)
	if err != nil {
		return err
	}
	s.details = &details
	s.state = StateConfirmingPayment
	return nil
}

func validatePassenger(in models.PassengerInput) (models.PassengerDetails, error) {
	var out models.PassengerDetails

	name := utils.NormalizeSpace(in.Name)
	if name == "" {
		return out, domain.ValidationError{Field: "name", Msg: "required"}
	}

	ageRaw := utils.TrimOrEmpty(in.Age)
	if !utils.IsDigits(ageRaw) {
		return out, domain.ValidationError{Field: "age", Msg: "must be a positive number"}
	}
	age, err := strconv.Atoi(ageRaw)
	if err != nil || age <= 0 {
		return out, domain.ValidationError{Field: "age", Msg: "must be a positive number", Err: err}
	}

	gender := utils.TrimOrEmpty(in.Gender)
	valid := false
	for _, g := range genders {
		if g == gender {
			valid = true
			break
		}
	}
	if !valid {
		return out, domain.ValidationError{Field: "gender", Msg: "must be Male, Female or Other"}
	}

	email := utils.TrimOrEmpty(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return out, domain.ValidationError{Field: "email", Msg: "must contain @"}
	}

	phone := utils.TrimOrEmpty(in.Phone)
	if !utils.IsDigits(phone) || len(phone) != 10 {
		return out, domain.ValidationError{Field: "phone", Msg: "must be exactly 10 digits"}
	}

	out = models.PassengerDetails{Name: name, Age: age, Gender: gender, Email: email, Phone: phone}
	return out, nil
}

// ConfirmPayment assembles the booking and appends it to the ledger. The
// booking is confirmed only once the append succeeds; a failed append keeps
// the session in ConfirmingPayment so the caller can retry. On success the
// session resets for the next funnel pass.
func (s *BookingSession) ConfirmPayment() (models.Booking, error) {
	if s.state != StateConfirmingPayment {
		return models.Booking{}, domain.PreconditionError{Op: "confirm_payment", Msg: "not confirming payment"}
	}

	trip := s.seatMap.Trip()
	booking := models.Booking{
		ID:          s.newBookingID(),
		Origin:      s.criteria.Origin,
		Destination: s.criteria.Destination,
		Date:        s.criteria.Date,
		Operator:    trip.Operator,
		Seats:       s.seatMap.SelectedSeats(),
		Passenger:   *s.details,
		TotalFare:   s.frozenFare,
	}

	if _, err := s.Ledger.Append(booking); err != nil {
		if domain.IsPersistence(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.PersistenceError{Op: "ledger append", Err: err}
	}

	s.issued[booking.ID] = true
	s.reset()
	return booking, nil
}

// GoBack returns to the previous funnel state, discarding everything
// captured after it.
func (s *BookingSession) GoBack() error {
	switch s.state {
	case StateBrowsing:
		s.reset()
	case StateSelectingSeats:
		s.seatMap = nil
		s.details = nil
		s.frozenFare = 0
		s.state = StateBrowsing
	case StateEnteringDetails:
		s.details = nil
		s.frozenFare = 0
		s.state = StateSelectingSeats
	case StateConfirmingPayment:
		s.details = nil
		s.state = StateEnteringDetails
	default:
		return domain.PreconditionError{Op: "go_back", Msg: "nothing to go back to"}
	}
	return nil
}

func (s *BookingSession) reset() {
	s.criteria = models.SearchCriteria{}
	s.trips = nil
	s.seatMap = nil
	s.details = nil
	s.frozenFare = 0
	s.state = StateSearching
}

// newBookingID draws BKG##### ids, redrawing on the rare in-process collision.
func (s *BookingSession) newBookingID() string {
	for {
		id := fmt.Sprintf("BKG%d", 10000+s.rng.Intn(90000))
		if !s.issued[id] {
			return id
		}
	}
}
