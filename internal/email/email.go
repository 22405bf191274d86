package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/service/dashboard"
	"go.uber.org/zap"
)

// Sender delivers booking notifications. Delivery is simulated: the message
// is written to the log.
type Sender struct {
	logger *zap.Logger
	sent   int
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.UserID == "" {
		return fmt.Errorf("booking %s has no recipient", event.BookingID)
	}
	s.logger.Info("send booking email",
		zap.String("user_id", event.UserID),
		zap.String("type", event.Type),
		zap.String("booking_id", event.BookingID),
		zap.String("subject", Subject(event)),
		zap.String("body", Body(event)),
	)
	s.sent++
	return nil
}

// Sent reports how many messages went out.
func (s *Sender) Sent() int {
	return s.sent
}

func Subject(event kafka.BookingEvent) string {
	return fmt.Sprintf("Booking %s confirmed", event.Reference)
}

func Body(event kafka.BookingEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Booking confirmed! Your booking reference is %s.\n", event.Reference)
	fmt.Fprintf(&b, "Flight %s, %s class, %d passenger(s).\n", event.FlightID, event.SeatClass, event.Passengers)
	fmt.Fprintf(&b, "Amount charged: %s.", dashboard.FormatCurrency(event.AmountCharged))
	return b.String()
}
