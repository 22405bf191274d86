package domain

import "time"

type BookingStatus string

// Checkout only ever produces BookingStatusConfirmed. Pending and cancelled
// have no producing transition yet.
const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusPending   BookingStatus = "pending"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Passenger struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      Gender `json:"gender"`
	SeatNumber  string `json:"seat_number,omitempty"`
}

// Booking is written once to the ledger and never changed afterwards.
// TotalPrice excludes the service fee; AmountCharged includes it.
type Booking struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	FlightID         string        `json:"flight_id"`
	Passengers       []Passenger   `json:"passengers"`
	SeatClass        SeatClass     `json:"seat_class"`
	TotalPrice       int           `json:"total_price"`
	AmountCharged    int           `json:"amount_charged"`
	BookingDate      time.Time     `json:"booking_date"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	BookingReference string        `json:"booking_reference"`
}
