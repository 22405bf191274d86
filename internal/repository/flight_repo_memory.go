package repository

import (
	"context"
	"slices"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) []domain.Flight
	GetByID(ctx context.Context, id string) (domain.Flight, bool)
	Count(ctx context.Context) int
}

// MemoryFlightRepository is the read-only catalog. It copies its input on
// construction and hands out copies, so callers cannot change it.
type MemoryFlightRepository struct {
	flights []domain.Flight
}

func NewFlightRepository(flights []domain.Flight) FlightRepository {
	return &MemoryFlightRepository{flights: cloneFlights(flights)}
}

func (r *MemoryFlightRepository) List(_ context.Context) []domain.Flight {
	return cloneFlights(r.flights)
}

func (r *MemoryFlightRepository) GetByID(_ context.Context, id string) (domain.Flight, bool) {
	for _, f := range r.flights {
		if f.ID == id {
			return cloneFlight(f), true
		}
	}
	return domain.Flight{}, false
}

func (r *MemoryFlightRepository) Count(_ context.Context) int {
	return len(r.flights)
}

func cloneFlights(in []domain.Flight) []domain.Flight {
	out := make([]domain.Flight, len(in))
	for i, f := range in {
		out[i] = cloneFlight(f)
	}
	return out
}

func cloneFlight(f domain.Flight) domain.Flight {
	f.Amenities = slices.Clone(f.Amenities)
	return f
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
