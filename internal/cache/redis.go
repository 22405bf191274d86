package cache

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/skybooking/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds short-lived checkout locks so a second submission for the
// same user is rejected even when it lands on another instance.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// releaseIfOwner deletes the lock only while it still holds the caller's
// token, so an expired holder cannot drop a lock taken after it.
var releaseIfOwner = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (c *RedisCache) AcquireCheckoutLock(ctx context.Context, userID, token string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, CheckoutLockKey(userID), token, ttl).Result()
}

func (c *RedisCache) ReleaseCheckoutLock(ctx context.Context, userID, token string) error {
	return releaseIfOwner.Run(ctx, c.client, []string{CheckoutLockKey(userID)}, token).Err()
}

func (c *RedisCache) CheckoutLocked(ctx context.Context, userID string) (bool, error) {
	_, err := c.client.Get(ctx, CheckoutLockKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func CheckoutLockKey(userID string) string {
	return "lock:checkout:user:" + userID
}
