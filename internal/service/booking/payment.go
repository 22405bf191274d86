package booking

import (
	"context"
	"time"
)

type Charge struct {
	UserID   string
	FlightID string
	Amount   int
}

type PaymentGateway interface {
	Charge(ctx context.Context, charge Charge) error
}

// SimulatedGateway stands in for a payment provider: it waits Delay and
// then succeeds, unless the context ends first. Nothing is charged.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Charge(ctx context.Context, _ Charge) error {
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ PaymentGateway = SimulatedGateway{}
