// Package ratelimit throttles outbound calls to the scrape vendor. A
// distributed Redis limiter shares the budget across processes; a local
// limiter takes over when Redis is unreachable.
package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/logger"
)

const redisKeyPrefix = "flashsell:limiter:"

//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter

// Limiter gates outbound vendor requests.
type Limiter interface {
	// Acquire blocks until a request token is available or ctx is done.
	Acquire(ctx context.Context) error
}

type limiter struct {
	name              string
	requestsPerSecond int

	distributed    adapter.RedisRateLimiter
	local          *rate.Limiter
	clock          adapter.Clock
	redisAvailable atomic.Bool
}

// NewLimiter creates a limiter for the named vendor. The local fallback runs
// at half the configured rate so multiple processes without Redis coordination
// stay under the vendor budget.
func NewLimiter(name string, requestsPerSecond, burst int, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if requestsPerSecond <= 0 {
		return nil, fmt.Errorf("requests_per_second must be positive")
	}
	if burst <= 0 {
		burst = requestsPerSecond
	}

	localRate := max(float64(requestsPerSecond)*0.5, 1.0)

	l := &limiter{
		name:              name,
		requestsPerSecond: requestsPerSecond,
		distributed:       rc.NewRateLimiter(),
		local:             rate.NewLimiter(rate.Limit(localRate), burst),
		clock:             clock,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, rate limiting locally", zap.String("vendor", name), zap.Error(err))
	} else {
		l.redisAvailable.Store(true)
	}

	return l, nil
}

func (l *limiter) Acquire(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !l.redisAvailable.Load() {
			return l.local.Wait(ctx)
		}

		res, err := l.distributed.Allow(ctx, redisKeyPrefix+l.name, redis_rate.PerSecond(l.requestsPerSecond))
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.redisAvailable.Store(false)
			logger.Warn("Redis rate limiter error, falling back to local",
				zap.String("vendor", l.name),
				zap.Error(err),
			)
			return l.local.Wait(ctx)
		}

		if res.Allowed > 0 {
			return nil
		}

		// Jitter spreads retries from competing processes (50-150% of retry_after)
		wait := res.RetryAfter
		if wait <= 0 {
			wait = 100 * time.Millisecond
		}
		jittered := time.Duration(float64(wait) * (0.5 + rand.Float64())) //nolint:gosec,G404
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(jittered):
		}
	}
}
