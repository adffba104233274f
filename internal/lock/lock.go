package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned when the lock could not be acquired within the
// configured wait window.
var ErrLockHeld = errors.New("affiliate lock is already held")

const unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

// Manager serializes balance-mutating operations per affiliate. The lock
// must be held only around the check-and-mutate step, never across
// provider network calls.
type Manager interface {
	WithAffiliate(ctx context.Context, affiliateID int64, fn func(ctx context.Context) error) error
}

type RedisManager struct {
	client      redis.UniversalClient
	lockTTL     time.Duration
	waitTimeout time.Duration
}

func NewRedisManager(client redis.UniversalClient, lockTTL, waitTimeout time.Duration) *RedisManager {
	return &RedisManager{
		client:      client,
		lockTTL:     lockTTL,
		waitTimeout: waitTimeout,
	}
}

func (m *RedisManager) WithAffiliate(ctx context.Context, affiliateID int64, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:affiliate:%d", affiliateID)
	token := uuid.NewString()

	if err := m.acquire(ctx, key, token); err != nil {
		return err
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, _ = m.client.Eval(unlockCtx, unlockScript, []string{key}, token).Result()
	}()

	return fn(ctx)
}

func (m *RedisManager) acquire(ctx context.Context, key, token string) error {
	try := func() error {
		ok, err := m.client.SetNX(ctx, key, token, m.lockTTL).Result()
		if err != nil {
			return backoff.Permanent(err)
		}
		if !ok {
			return ErrLockHeld
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = m.waitTimeout

	if err := backoff.Retry(try, backoff.WithContext(bo, ctx)); err != nil {
		return err
	}
	return nil
}
