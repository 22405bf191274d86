package domain

import (
	"errors"
	"fmt"
)

type TripType string

const (
	TripTypeOneWay    TripType = "one-way"
	TripTypeRoundTrip TripType = "round-trip"
)

var (
	ErrMissingSearchField    = errors.New("missing required search field")
	ErrInvalidPassengerCount = errors.New("passenger count must be at least 1")
	ErrInvalidTripType       = errors.New("invalid trip type")
)

type SearchFilters struct {
	Departure     string    `json:"departure"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	ReturnDate    string    `json:"return_date,omitempty"`
	Passengers    int       `json:"passengers"`
	SeatClass     SeatClass `json:"seat_class"`
	TripType      TripType  `json:"trip_type"`
}

func ParseTripType(s string) (TripType, error) {
	switch TripType(s) {
	case TripTypeOneWay, TripTypeRoundTrip:
		return TripType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTripType, s)
	}
}

// Validate reports whether the filters are complete enough to run a search.
func (f SearchFilters) Validate() error {
	switch {
	case f.Departure == "":
		return fmt.Errorf("%w: departure", ErrMissingSearchField)
	case f.Destination == "":
		return fmt.Errorf("%w: destination", ErrMissingSearchField)
	case f.DepartureDate == "":
		return fmt.Errorf("%w: departureDate", ErrMissingSearchField)
	case f.Passengers < 1:
		return ErrInvalidPassengerCount
	case !f.SeatClass.Valid():
		return ErrInvalidSeatClass
	}
	return nil
}
