package flights

import (
	"errors"
	"testing"

	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortFlights_PriceUsesSelectedClass(t *testing.T) {
	flights := []domain.Flight{
		{ID: "a", Price: domain.NewClassTable(100, 900, 1000)},
		{ID: "b", Price: domain.NewClassTable(200, 800, 3000)},
	}

	assert.Equal(t, []string{"a", "b"}, ids(SortFlights(flights, SortByPrice, domain.SeatClassEconomy, SortLegacy)))
	assert.Equal(t, []string{"b", "a"}, ids(SortFlights(flights, SortByPrice, domain.SeatClassBusiness, SortLegacy)))
}

func TestSortFlights_PriceIsIdempotent(t *testing.T) {
	once := SortFlights(catalog.DefaultFlights(), SortByPrice, domain.SeatClassFirst, SortLegacy)
	twice := SortFlights(once, SortByPrice, domain.SeatClassFirst, SortLegacy)
	assert.Equal(t, once, twice)
}

func TestSortFlights_StableForEqualKeys(t *testing.T) {
	flights := []domain.Flight{
		{ID: "x", Price: domain.NewClassTable(500, 0, 0)},
		{ID: "y", Price: domain.NewClassTable(300, 0, 0)},
		{ID: "z", Price: domain.NewClassTable(500, 0, 0)},
		{ID: "w", Price: domain.NewClassTable(500, 0, 0)},
	}
	assert.Equal(t, []string{"y", "x", "z", "w"}, ids(SortFlights(flights, SortByPrice, domain.SeatClassEconomy, SortLegacy)))
}

func TestSortFlights_DoesNotMutateInput(t *testing.T) {
	flights := catalog.DefaultFlights()
	_ = SortFlights(flights, SortByDeparture, domain.SeatClassEconomy, SortLegacy)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(flights))
}

func TestSortFlights_DurationLegacyComparesLeadingHours(t *testing.T) {
	flights := []domain.Flight{
		{ID: "long", Duration: "9h 55m"},
		{ID: "short", Duration: "9h 5m"},
		{ID: "ten", Duration: "10h"},
	}

	// Same leading hour keeps input order.
	assert.Equal(t, []string{"long", "short", "ten"}, ids(SortFlights(flights, SortByDuration, domain.SeatClassEconomy, SortLegacy)))
	assert.Equal(t, []string{"short", "long", "ten"}, ids(SortFlights(flights, SortByDuration, domain.SeatClassEconomy, SortPrecise)))
}

func TestSortFlights_DepartureLegacyIsLexicographic(t *testing.T) {
	flights := []domain.Flight{
		{ID: "late", Departure: domain.Leg{Time: "14:30"}},
		{ID: "early", Departure: domain.Leg{Time: "09:15"}},
		{ID: "nextday", Departure: domain.Leg{Time: "01:00+1"}},
	}

	assert.Equal(t, []string{"nextday", "early", "late"}, ids(SortFlights(flights, SortByDeparture, domain.SeatClassEconomy, SortLegacy)))
	assert.Equal(t, []string{"early", "late", "nextday"}, ids(SortFlights(flights, SortByDeparture, domain.SeatClassEconomy, SortPrecise)))
}

func TestSortFlights_UnknownKeyKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(SortFlights(catalog.DefaultFlights(), SortKey("rating"), domain.SeatClassEconomy, SortLegacy)))
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	assert.NoError(t, err)
	assert.Equal(t, SortByPrice, key)

	key, err = ParseSortKey("departure")
	assert.NoError(t, err)
	assert.Equal(t, SortByDeparture, key)

	_, err = ParseSortKey("rating")
	assert.True(t, errors.Is(err, ErrInvalidSortKey))
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 7, leadingInt("7h 15m"))
	assert.Equal(t, 12, leadingInt("  12h"))
	assert.Equal(t, 0, leadingInt("h5"))
	assert.Equal(t, 435, durationMinutes("7h 15m"))
	assert.Equal(t, 45, durationMinutes("45m"))
}
