package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/logger"
	"github.com/flashsell/flashsell/internal/ranking"
	"github.com/flashsell/flashsell/internal/store"
)

// warmupTask runs once at startup: it primes the category catalog and
// touches today's rankings so the first requests hit warm paths. Failures
// are logged and ignored; warmup must never take the process down.
type warmupTask struct {
	store     store.Store
	ranker    *ranking.Ranker
	clock     adapter.Clock
	running   atomic.Bool
	stoppedCh chan struct{}
}

// NewWarmupTask creates the startup cache warmup task
func NewWarmupTask(st store.Store, ranker *ranking.Ranker, clock adapter.Clock) Task {
	return &warmupTask{
		store:     st,
		ranker:    ranker,
		clock:     clock,
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the task's name
func (t *warmupTask) Name() string {
	return "cache-warmup-task"
}

// Start runs the warmup once and returns
func (t *warmupTask) Start(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return fmt.Errorf("task already running")
	}
	defer func() {
		t.running.Store(false)
		close(t.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting cache warmup")
	startTime := t.clock.Now()

	categories, err := t.store.ListCategories(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Warmup could not load categories", zap.Error(err))
		return nil
	}

	warmed := 0
	for _, category := range categories {
		if ctx.Err() != nil {
			return nil
		}
		if _, err := t.ranker.GetRanking(ctx, t.clock.Now(), category.ID); err != nil {
			logger.WarnCtx(ctx, "Warmup ranking read failed",
				zap.Int64("category_id", category.ID),
				zap.Error(err),
			)
			continue
		}
		warmed++
	}

	logger.InfoCtx(ctx, "Cache warmup complete",
		zap.Int("categories", len(categories)),
		zap.Int("warmed", warmed),
		zap.Duration("elapsed", t.clock.Since(startTime)),
	)
	return nil
}

// Stop waits for the warmup run to finish
func (t *warmupTask) Stop(ctx context.Context) error {
	if !t.running.Load() {
		return nil
	}
	select {
	case <-t.stoppedCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
