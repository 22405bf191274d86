// Package catalog provides the demo flight catalog the application boots with.
package catalog

import "github.com/Domenick1991/skybooking/internal/domain"

// DefaultFlights returns a fresh copy of the demo catalog.
func DefaultFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:             "1",
			Airline:        "Air France",
			FlightNumber:   "AF007",
			Departure:      domain.Leg{Airport: "JFK", City: "New York", Time: "14:30", Date: "2024-04-10"},
			Arrival:        domain.Leg{Airport: "CDG", City: "Paris", Time: "03:45+1", Date: "2024-04-11"},
			Duration:       "7h 15m",
			Price:          domain.NewClassTable(650, 2400, 4200),
			AvailableSeats: domain.NewClassTable(45, 12, 4),
			Aircraft:       "Boeing 777-300ER",
			Stops:          0,
			Amenities:      []string{"WiFi", "Entertainment", "Meals", "Power Outlets"},
		},
		{
			ID:             "2",
			Airline:        "Delta Airlines",
			FlightNumber:   "DL125",
			Departure:      domain.Leg{Airport: "JFK", City: "New York", Time: "10:15", Date: "2024-04-10"},
			Arrival:        domain.Leg{Airport: "CDG", City: "Paris", Time: "23:30", Date: "2024-04-10"},
			Duration:       "7h 15m",
			Price:          domain.NewClassTable(720, 2650, 4500),
			AvailableSeats: domain.NewClassTable(32, 8, 2),
			Aircraft:       "Airbus A350-900",
			Stops:          0,
			Amenities:      []string{"WiFi", "Entertainment", "Meals", "Power Outlets", "Lie-flat Seats"},
		},
		{
			ID:             "3",
			Airline:        "British Airways",
			FlightNumber:   "BA117",
			Departure:      domain.Leg{Airport: "JFK", City: "New York", Time: "21:50", Date: "2024-04-10"},
			Arrival:        domain.Leg{Airport: "LHR", City: "London", Time: "08:25+1", Date: "2024-04-11"},
			Duration:       "6h 35m",
			Price:          domain.NewClassTable(580, 2200, 3800),
			AvailableSeats: domain.NewClassTable(67, 15, 6),
			Aircraft:       "Boeing 787-9",
			Stops:          0,
			Amenities:      []string{"WiFi", "Entertainment", "Meals", "Power Outlets"},
		},
		{
			ID:             "4",
			Airline:        "Lufthansa",
			FlightNumber:   "LH441",
			Departure:      domain.Leg{Airport: "JFK", City: "New York", Time: "17:20", Date: "2024-04-10"},
			Arrival:        domain.Leg{Airport: "FRA", City: "Frankfurt", Time: "06:50+1", Date: "2024-04-11"},
			Duration:       "7h 30m",
			Price:          domain.NewClassTable(690, 2350, 4100),
			AvailableSeats: domain.NewClassTable(28, 6, 3),
			Aircraft:       "Airbus A340-600",
			Stops:          0,
			Amenities:      []string{"WiFi", "Entertainment", "Meals", "Power Outlets", "Premium Economy"},
		},
	}
}
