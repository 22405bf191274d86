// Package dashboard computes the profile and admin views. Every figure is
// recomputed from the ledger and catalog on each call.
package dashboard

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
)

// PlaceholderTotalUsers is shown as the admin user count. There is no user
// store to count from.
const PlaceholderTotalUsers = 1247

type Overview struct {
	TotalBookings    int    `json:"total_bookings"`
	TotalFlights     int    `json:"total_flights"`
	TotalRevenue     int    `json:"total_revenue"`
	FormattedRevenue string `json:"formatted_revenue"`
	TotalUsers       int    `json:"total_users"`
}

type DashboardUseCase interface {
	Overview(ctx context.Context, user *domain.User) (Overview, error)
	AdminBookings(ctx context.Context, user *domain.User) ([]BookingView, error)
	AdminFlights(ctx context.Context, user *domain.User) ([]domain.Flight, error)
	ProfileBookings(ctx context.Context, user *domain.User) ([]BookingView, error)
}

type DashboardService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
}

func NewDashboardService(bookings repository.BookingRepository, flights repository.FlightRepository) *DashboardService {
	return &DashboardService{bookings: bookings, flights: flights}
}

func (s *DashboardService) Overview(ctx context.Context, user *domain.User) (Overview, error) {
	if err := requireAdmin(user); err != nil {
		return Overview{}, err
	}
	bookings := s.bookings.List(ctx)
	revenue := TotalRevenue(bookings)
	return Overview{
		TotalBookings:    len(bookings),
		TotalFlights:     s.flights.Count(ctx),
		TotalRevenue:     revenue,
		FormattedRevenue: FormatCurrency(revenue),
		TotalUsers:       PlaceholderTotalUsers,
	}, nil
}

func (s *DashboardService) AdminBookings(ctx context.Context, user *domain.User) ([]BookingView, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}
	return s.views(ctx, s.bookings.List(ctx)), nil
}

func (s *DashboardService) AdminFlights(ctx context.Context, user *domain.User) ([]domain.Flight, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}
	return s.flights.List(ctx), nil
}

func (s *DashboardService) ProfileBookings(ctx context.Context, user *domain.User) ([]BookingView, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.views(ctx, s.bookings.ListByUser(ctx, user.ID)), nil
}

func (s *DashboardService) views(ctx context.Context, bookings []domain.Booking) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		var flight *domain.Flight
		if f, ok := s.flights.GetByID(ctx, b.FlightID); ok {
			flight = &f
		}
		out = append(out, NewBookingView(b, flight))
	}
	return out
}

func requireAdmin(user *domain.User) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}
	if !user.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}

var _ DashboardUseCase = (*DashboardService)(nil)
