package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/pricing"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	StartCheckout(ctx context.Context, input CheckoutInput) (*CheckoutTask, error)
	Checkout(ctx context.Context, input CheckoutInput) (*domain.Booking, error)
	InProgress(ctx context.Context, userID string) bool
	ListForUser(ctx context.Context, userID string) []domain.Booking
}

var (
	ErrFlightNotFound     = errors.New("flight not found")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrNoPassengers       = errors.New("at least one passenger is required")
	ErrInvalidGender      = errors.New("invalid passenger gender")
)

const (
	EventBookingConfirmed = "booking_confirmed"

	defaultLockTTL = time.Minute
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CheckoutInput struct {
	User       *domain.User
	FlightID   string
	SeatClass  domain.SeatClass
	Passengers []domain.Passenger
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	guard              CheckoutGuard
	gateway            PaymentGateway
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	lockTTL            time.Duration
	now                func() time.Time
	logger             *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithLockTTL(ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	guard CheckoutGuard,
	gateway PaymentGateway,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		flights:  flights,
		guard:    guard,
		gateway:  gateway,
		lockTTL:  defaultLockTTL,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// StartCheckout validates the input, takes the user's checkout lock and
// starts the payment step. A second call for the same user while a task is
// running fails with ErrCheckoutInProgress.
func (s *BookingService) StartCheckout(ctx context.Context, input CheckoutInput) (*CheckoutTask, error) {
	if input.User == nil || input.User.ID == "" {
		return nil, domain.ErrUnauthenticated
	}
	flight, ok := s.flights.GetByID(ctx, input.FlightID)
	if !ok {
		return nil, ErrFlightNotFound
	}
	if !input.SeatClass.Valid() {
		return nil, domain.ErrInvalidSeatClass
	}
	passengers, err := preparePassengers(input.Passengers)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	locked, err := s.guard.AcquireCheckoutLock(ctx, input.User.ID, token, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire checkout lock: %w", err)
	}
	if !locked {
		return nil, ErrCheckoutInProgress
	}

	// Once started, a submission runs to completion even if the caller
	// goes away. Only CheckoutTask.Cancel stops it.
	taskCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	task := &CheckoutTask{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(task.done)
		defer s.releaseLock(taskCtx, input.User.ID, token)
		defer cancel()

		task.booking, task.err = s.complete(taskCtx, input.User.ID, flight, input.SeatClass, passengers)
	}()

	return task, nil
}

// Checkout runs a checkout to completion.
func (s *BookingService) Checkout(ctx context.Context, input CheckoutInput) (*domain.Booking, error) {
	task, err := s.StartCheckout(ctx, input)
	if err != nil {
		return nil, err
	}
	return task.Wait()
}

func (s *BookingService) InProgress(ctx context.Context, userID string) bool {
	locked, err := s.guard.CheckoutLocked(ctx, userID)
	if err != nil {
		s.logger.Warn("checkout lock lookup failed", zap.String("user_id", userID), zap.Error(err))
		return false
	}
	return locked
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) []domain.Booking {
	return s.bookings.ListByUser(ctx, userID)
}

// complete charges the customer and, only on success, records the booking.
func (s *BookingService) complete(ctx context.Context, userID string, flight domain.Flight, class domain.SeatClass, passengers []domain.Passenger) (*domain.Booking, error) {
	subtotal := pricing.Subtotal(flight, class, len(passengers))
	charged := subtotal + pricing.ServiceFee

	if err := s.gateway.Charge(ctx, Charge{UserID: userID, FlightID: flight.ID, Amount: charged}); err != nil {
		s.logger.Error("booking failed",
			zap.String("user_id", userID),
			zap.String("flight_id", flight.ID),
			zap.Int("amount", charged),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	now := s.now()
	booking := domain.Booking{
		ID:               uuid.NewString(),
		UserID:           userID,
		FlightID:         flight.ID,
		Passengers:       passengers,
		SeatClass:        class,
		TotalPrice:       subtotal,
		AmountCharged:    charged,
		BookingDate:      now,
		Status:           domain.BookingStatusConfirmed,
		PaymentStatus:    domain.PaymentStatusPaid,
		BookingReference: BookingReference(now),
	}
	s.bookings.Add(ctx, booking)

	s.logger.Info("booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.String("reference", booking.BookingReference),
		zap.String("user_id", userID),
		zap.String("flight_id", flight.ID),
		zap.Int("total_price", booking.TotalPrice),
	)

	if err := s.publish(ctx, EventBookingConfirmed, &booking); err != nil {
		s.logger.Warn("failed to publish booking event", zap.String("booking_id", booking.ID), zap.Error(err))
	}
	return &booking, nil
}

func (s *BookingService) releaseLock(ctx context.Context, userID, token string) {
	if err := s.guard.ReleaseCheckoutLock(context.WithoutCancel(ctx), userID, token); err != nil {
		s.logger.Warn("failed to release checkout lock", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		Reference:     booking.BookingReference,
		UserID:        booking.UserID,
		FlightID:      booking.FlightID,
		SeatClass:     booking.SeatClass.String(),
		Passengers:    len(booking.Passengers),
		TotalPrice:    booking.TotalPrice,
		AmountCharged: booking.AmountCharged,
		Status:        string(booking.Status),
		BookedAt:      booking.BookingDate,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

// BookingReference is "FF" plus the last six digits of the Unix millisecond
// clock. Two bookings in the same millisecond, or 1000 seconds apart, collide.
func BookingReference(t time.Time) string {
	return fmt.Sprintf("FF%06d", t.UnixMilli()%1_000_000)
}

func preparePassengers(in []domain.Passenger) ([]domain.Passenger, error) {
	if len(in) == 0 {
		return nil, ErrNoPassengers
	}
	out := make([]domain.Passenger, len(in))
	for i, p := range in {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		switch p.Gender {
		case "":
			p.Gender = domain.GenderMale
		case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidGender, p.Gender)
		}
		out[i] = p
	}
	return out, nil
}

var _ BookingUseCase = (*BookingService)(nil)
