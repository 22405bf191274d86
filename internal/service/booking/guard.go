package booking

import (
	"context"
	"sync"
	"time"
)

// CheckoutGuard keeps at most one checkout per user in flight. A failed
// acquire means the caller must reject the submission, not wait for it.
// token identifies the holder; release with a stale token is a no-op.
type CheckoutGuard interface {
	AcquireCheckoutLock(ctx context.Context, userID, token string, ttl time.Duration) (bool, error)
	ReleaseCheckoutLock(ctx context.Context, userID, token string) error
	CheckoutLocked(ctx context.Context, userID string) (bool, error)
}

// LocalGuard is the in-process CheckoutGuard used when Redis is not
// configured. The ttl is ignored; locks live until released.
type LocalGuard struct {
	mu     sync.Mutex
	active map[string]string
}

func NewLocalGuard() *LocalGuard {
	return &LocalGuard{active: make(map[string]string)}
}

func (g *LocalGuard) AcquireCheckoutLock(_ context.Context, userID, token string, _ time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[userID]; busy {
		return false, nil
	}
	g.active[userID] = token
	return true, nil
}

func (g *LocalGuard) ReleaseCheckoutLock(_ context.Context, userID, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active[userID] == token {
		delete(g.active, userID)
	}
	return nil
}

func (g *LocalGuard) CheckoutLocked(_ context.Context, userID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[userID]
	return busy, nil
}

var _ CheckoutGuard = (*LocalGuard)(nil)
