package flights

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	List(ctx context.Context) []domain.Flight
	Search(ctx context.Context, req SearchRequest) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (domain.Flight, bool)
}

type SearchRequest struct {
	Filters domain.SearchFilters
	SortBy  SortKey
}

type FlightService struct {
	repo     repository.FlightRepository
	sortMode SortMode
	logger   *zap.Logger
}

type FlightServiceOption func(*FlightService)

func WithSortMode(mode SortMode) FlightServiceOption {
	return func(s *FlightService) {
		s.sortMode = mode
	}
}

func WithLogger(logger *zap.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.logger = logger
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{repo: repo, sortMode: SortLegacy, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) List(ctx context.Context) []domain.Flight {
	return s.repo.List(ctx)
}

// Search validates the filters, filters the catalog and orders the result.
func (s *FlightService) Search(ctx context.Context, req SearchRequest) ([]domain.Flight, error) {
	if err := req.Filters.Validate(); err != nil {
		return nil, err
	}
	key := req.SortBy
	if key == "" {
		key = SortByPrice
	}

	matched := Search(s.repo.List(ctx), req.Filters)
	s.logger.Debug("flight search",
		zap.String("departure", req.Filters.Departure),
		zap.String("destination", req.Filters.Destination),
		zap.String("departure_date", req.Filters.DepartureDate),
		zap.String("sort_by", string(key)),
		zap.Int("results", len(matched)),
	)
	return SortFlights(matched, key, req.Filters.SeatClass, s.sortMode), nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (domain.Flight, bool) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
