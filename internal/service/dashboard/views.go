package dashboard

import (
	"strings"

	"github.com/Domenick1991/skybooking/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type FlightSummary struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
}

type BookingView struct {
	domain.Booking
	PassengerCount  int            `json:"passenger_count"`
	StatusLabel     string         `json:"status_label"`
	FormattedAmount string         `json:"formatted_amount"`
	Flight          *FlightSummary `json:"flight,omitempty"`
}

// NewBookingView derives the display fields of a booking. flight is nil when
// the booking references a flight the catalog no longer has.
func NewBookingView(b domain.Booking, flight *domain.Flight) BookingView {
	view := BookingView{
		Booking:         b,
		PassengerCount:  len(b.Passengers),
		StatusLabel:     StatusLabel(b.Status),
		FormattedAmount: FormatCurrency(b.TotalPrice),
	}
	if flight != nil {
		view.Flight = &FlightSummary{
			Airline:       flight.Airline,
			FlightNumber:  flight.FlightNumber,
			From:          flight.Departure.City,
			To:            flight.Arrival.City,
			DepartureDate: flight.Departure.Date,
			DepartureTime: flight.Departure.Time,
		}
	}
	return view
}

func StatusLabel(s domain.BookingStatus) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// FormatCurrency renders whole dollars with thousands separators: 1995 → "$1,995".
func FormatCurrency(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + message.NewPrinter(language.AmericanEnglish).Sprintf("$%d", amount)
}

// TotalRevenue sums TotalPrice over all bookings, whatever their status.
func TotalRevenue(bookings []domain.Booking) int {
	total := 0
	for _, b := range bookings {
		total += b.TotalPrice
	}
	return total
}
