package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type BookingRepository interface {
	Add(ctx context.Context, booking domain.Booking)
	ListByUser(ctx context.Context, userID string) []domain.Booking
	List(ctx context.Context) []domain.Booking
}

// MemoryBookingRepository is an append-only ledger. Nothing survives a
// restart. The lock only exists because HTTP handlers run concurrently.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

func NewBookingRepository() BookingRepository {
	return &MemoryBookingRepository{}
}

func (r *MemoryBookingRepository) Add(_ context.Context, booking domain.Booking) {
	booking.Passengers = slices.Clone(booking.Passengers)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
}

// ListByUser scans the whole ledger; there is no per-user index.
func (r *MemoryBookingRepository) ListByUser(_ context.Context, userID string) []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, cloneBooking(b))
		}
	}
	return out
}

func (r *MemoryBookingRepository) List(_ context.Context) []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		out[i] = cloneBooking(b)
	}
	return out
}

func cloneBooking(b domain.Booking) domain.Booking {
	b.Passengers = slices.Clone(b.Passengers)
	return b
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
