package booking

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// CheckoutTask is a running checkout. The payment pause happens on its own
// goroutine; Cancel stops it and no booking is recorded.
type CheckoutTask struct {
	cancel  context.CancelFunc
	done    chan struct{}
	booking *domain.Booking
	err     error
}

func (t *CheckoutTask) Done() <-chan struct{} {
	return t.done
}

func (t *CheckoutTask) Cancel() {
	t.cancel()
}

// Wait blocks until the task finishes.
func (t *CheckoutTask) Wait() (*domain.Booking, error) {
	<-t.done
	return t.booking, t.err
}
