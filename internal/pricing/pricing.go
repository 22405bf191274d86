// Package pricing derives what a seat selection costs. Prices are whole
// currency units; there is no dynamic pricing, conversion or discounting.
package pricing

import (
	"fmt"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// ServiceFee is the flat taxes-and-fees amount added once per booking.
const ServiceFee = 45

type Quote struct {
	SeatClass    domain.SeatClass `json:"seat_class"`
	PerPassenger int              `json:"per_passenger"`
	Passengers   int              `json:"passengers"`
	Subtotal     int              `json:"subtotal"`
	Fees         int              `json:"fees"`
	Total        int              `json:"total"`
}

// Subtotal is the fare for n passengers before fees.
func Subtotal(f domain.Flight, class domain.SeatClass, n int) int {
	return f.Price.Get(class) * n
}

// TotalCharged is what the customer pays at checkout.
func TotalCharged(f domain.Flight, class domain.SeatClass, n int) int {
	return Subtotal(f, class, n) + ServiceFee
}

func NewQuote(f domain.Flight, class domain.SeatClass, n int) (Quote, error) {
	if !class.Valid() {
		return Quote{}, fmt.Errorf("%w: %d", domain.ErrInvalidSeatClass, int(class))
	}
	if n < 1 {
		return Quote{}, domain.ErrInvalidPassengerCount
	}
	subtotal := Subtotal(f, class, n)
	return Quote{
		SeatClass:    class,
		PerPassenger: f.Price.Get(class),
		Passengers:   n,
		Subtotal:     subtotal,
		Fees:         ServiceFee,
		Total:        subtotal + ServiceFee,
	}, nil
}
