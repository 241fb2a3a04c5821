// Package gateway wraps calls to the scrape vendor with last-known-good
// fallback. Every successful fetch snapshots its payload to Redis; when the
// vendor fails, the snapshot is served as stale data instead of surfacing the
// failure. Callers always get a result with an explicit freshness status and
// never an error for vendor unavailability.
package gateway

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/logger"
)

const keyPrefix = "brightdata:fallback:"

// DefaultSnapshotTTL bounds how long a last-known-good snapshot stays
// servable. Past this window an outage degrades to EMPTY rather than serving
// arbitrarily old data.
const DefaultSnapshotTTL = 24 * time.Hour

// Result carries a payload together with its freshness status.
type Result[T any] struct {
	Data      T
	Freshness domain.Freshness
}

// Gateway provides last-known-good fallback for vendor fetches.
type Gateway struct {
	cache adapter.Cache
	json  adapter.JSON
	clock adapter.Clock
	ttl   time.Duration
}

// New creates a Gateway. A non-positive ttl falls back to DefaultSnapshotTTL.
func New(cache adapter.Cache, json adapter.JSON, clock adapter.Clock, ttl time.Duration) *Gateway {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &Gateway{
		cache: cache,
		json:  json,
		clock: clock,
		ttl:   ttl,
	}
}

// snapshot is the cached envelope for a last-known-good payload
type snapshot[T any] struct {
	Data      T         `json:"data"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fetch runs fetch and classifies the outcome. A successful fetch returns
// FRESH and replaces the snapshot under key. A failed fetch (including
// timeout) returns the snapshot as STALE when one exists, otherwise EMPTY
// with the zero payload. The error return is reserved for context
// cancellation; vendor failure is never an error here.
func Fetch[T any](ctx context.Context, g *Gateway, key string, fetch func(ctx context.Context) (T, error)) (Result[T], error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return Result[T]{}, err
	}

	data, err := fetch(ctx)
	if err == nil {
		now := g.clock.Now()
		g.storeSnapshot(ctx, key, snapshot[T]{Data: data, FetchedAt: now})
		return Result[T]{Data: data, Freshness: domain.Fresh(now)}, nil
	}

	if ctx.Err() != nil {
		return Result[T]{}, ctx.Err()
	}

	logger.WarnCtx(ctx, "Vendor fetch failed, trying fallback snapshot",
		zap.String("key", key),
		zap.Error(err),
	)

	snap, ok := loadSnapshot[T](ctx, g, key)
	if !ok {
		return Result[T]{Data: zero, Freshness: domain.NoData()}, nil
	}

	return Result[T]{
		Data:      snap.Data,
		Freshness: domain.Stale(snap.FetchedAt, ""),
	}, nil
}

// Invalidate drops the snapshot under key
func (g *Gateway) Invalidate(ctx context.Context, key string) error {
	return g.cache.Delete(ctx, keyPrefix+key)
}

func loadSnapshot[T any](ctx context.Context, g *Gateway, key string) (snapshot[T], bool) {
	var snap snapshot[T]

	payload, found, err := g.cache.Get(ctx, keyPrefix+key)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read fallback snapshot", zap.String("key", key), zap.Error(err))
		return snap, false
	}
	if !found {
		return snap, false
	}

	if err := g.json.Unmarshal(payload, &snap); err != nil {
		logger.ErrorCtx(ctx, errors.New("corrupt fallback snapshot, dropping"), zap.String("key", key), zap.Error(err))
		_ = g.cache.Delete(ctx, keyPrefix+key)
		return snap, false
	}

	return snap, true
}

func (g *Gateway) storeSnapshot(ctx context.Context, key string, snap any) {
	payload, err := g.json.Marshal(snap)
	if err != nil {
		logger.ErrorCtx(ctx, errors.New("failed to marshal fallback snapshot"), zap.String("key", key), zap.Error(err))
		return
	}
	if err := g.cache.Set(ctx, keyPrefix+key, payload, g.ttl); err != nil {
		// Snapshot write failure costs fallback coverage, not correctness
		logger.WarnCtx(ctx, "Failed to store fallback snapshot", zap.String("key", key), zap.Error(err))
	}
}
