package lock

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-reservation-engine/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultLeaseTTL      = 10 * time.Second
	defaultRetryInterval = 25 * time.Millisecond
	releaseTimeout       = 2 * time.Second
)

var releaseLockScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// RedisLocker is a ShowtimeLocker shared by every process talking to the same
// Redis. The lease expires on its own if the holder dies.
type RedisLocker struct {
	client        redis.UniversalClient
	logger        *slog.Logger
	leaseTTL      time.Duration
	waitTimeout   time.Duration
	retryInterval time.Duration
}

type RedisOption func(*RedisLocker)

func WithLeaseTTL(ttl time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if ttl > 0 {
			l.leaseTTL = ttl
		}
	}
}

func WithWaitTimeout(timeout time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if timeout > 0 {
			l.waitTimeout = timeout
		}
	}
}

func WithRetryInterval(interval time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if interval > 0 {
			l.retryInterval = interval
		}
	}
}

func NewRedisLocker(client redis.UniversalClient, logger *slog.Logger, opts ...RedisOption) *RedisLocker {
	l := &RedisLocker{
		client:        client,
		logger:        logger,
		leaseTTL:      DefaultLeaseTTL,
		waitTimeout:   DefaultWaitTimeout,
		retryInterval: defaultRetryInterval,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func lockKey(showtimeID string) string {
	return fmt.Sprintf("lock:showtime:%s", showtimeID)
}

func (l *RedisLocker) Lock(ctx context.Context, showtimeID string) (func(), error) {
	key := lockKey(showtimeID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.waitTimeout)

	for {
		acquired, err := l.client.SetNX(ctx, key, token, l.leaseTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock for showtime %s: %w", showtimeID, err)
		}

		if acquired {
			return l.unlockFunc(ctx, key, token), nil
		}

		wait := l.retryInterval + rand.N(l.retryInterval)
		if time.Now().Add(wait).After(deadline) {
			return nil, domain.ErrBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (l *RedisLocker) unlockFunc(ctx context.Context, key, token string) func() {
	var once sync.Once

	return func() {
		once.Do(func() {
			l.release(ctx, key, token)
		})
	}
}

func (l *RedisLocker) release(ctx context.Context, key, token string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	err := releaseLockScript.Run(releaseCtx, l.client, []string{key}, token).Err()
	if err != nil {
		l.logger.Error("failed to release showtime lock", "key", key, "error", err)
	}
}
