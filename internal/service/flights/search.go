package flights

import (
	"strings"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// Search returns the flights matching the route and date of the filters,
// in catalog order. Cities match as case-insensitive substrings, so an
// empty departure or destination matches every flight. The date must be
// equal as text; no normalization is applied.
func Search(catalog []domain.Flight, filters domain.SearchFilters) []domain.Flight {
	departure := strings.ToLower(filters.Departure)
	destination := strings.ToLower(filters.Destination)

	results := make([]domain.Flight, 0, len(catalog))
	for _, f := range catalog {
		if !strings.Contains(strings.ToLower(f.Departure.City), departure) {
			continue
		}
		if !strings.Contains(strings.ToLower(f.Arrival.City), destination) {
			continue
		}
		if f.Departure.Date != filters.DepartureDate {
			continue
		}
		results = append(results, f)
	}
	return results
}
