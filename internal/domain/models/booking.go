package models

// SearchCriteria is one route/date query. Date stays the DD-MM-YYYY string
// the user entered; it is validated but otherwise opaque.
type SearchCriteria struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// PassengerInput carries raw form fields before validation.
type PassengerInput struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	Gender string `json:"gender"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// PassengerDetails is the validated passenger record kept on the session.
type PassengerDetails struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// Booking is the immutable ledger record created at payment confirmation.
// Seats keep the user's selection order.
type Booking struct {
	ID          string           `json:"id"`
	Origin      string           `json:"origin"`
	Destination string           `json:"destination"`
	Date        string           `json:"date"`
	Operator    string           `json:"operator"`
	Seats       []string         `json:"seats"`
	Passenger   PassengerDetails `json:"passenger"`
	TotalFare   int64            `json:"total_fare"`
}
