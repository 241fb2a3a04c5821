package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/logger"
	"github.com/flashsell/flashsell/internal/ranking"
	"github.com/flashsell/flashsell/internal/store"
)

// DailyRankingConfig holds configuration for the daily ranking task
type DailyRankingConfig struct {
	RunAt          string // "HH:MM" local time, defaults to 02:00
	Retention      time.Duration
	WorkerPoolSize int
	QueueSize      int
}

// dailyRankingTask regenerates every category's hot product ranking once a
// day and prunes rankings past the retention window
type dailyRankingTask struct {
	config    *DailyRankingConfig
	store     store.Store
	ranker    *ranking.Ranker
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewDailyRankingTask creates the daily ranking regeneration task
func NewDailyRankingTask(config *DailyRankingConfig, st store.Store, ranker *ranking.Ranker, clock adapter.Clock) Task {
	if config.RunAt == "" {
		config.RunAt = "02:00"
	}
	if config.Retention <= 0 {
		config.Retention = 7 * 24 * time.Hour
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 4
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 64
	}
	return &dailyRankingTask{
		config:    config,
		store:     st,
		ranker:    ranker,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the task's name
func (t *dailyRankingTask) Name() string {
	return "daily-ranking-task"
}

// Start begins the task's main loop, waking at the configured time each day
func (t *dailyRankingTask) Start(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return fmt.Errorf("task already running")
	}
	defer func() {
		t.running.Store(false)
		close(t.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting daily ranking task",
		zap.String("run_at", t.config.RunAt),
		zap.Duration("retention", t.config.Retention),
	)

	t.pool = pond.NewPool(
		t.config.WorkerPoolSize,
		pond.WithQueueSize(t.config.QueueSize),
		pond.WithContext(ctx),
	)

	for {
		wait := t.untilNextRun()
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Daily ranking task stopping due to context cancellation", zap.Error(ctx.Err()))
			t.cleanup()
			return nil
		case <-t.stopChan:
			logger.InfoCtx(ctx, "Daily ranking task stop requested")
			t.cleanup()
			return nil
		case <-t.clock.After(wait):
			// A failed run is fatal only to that run; yesterday's rankings
			// stay authoritative
			if err := t.RunOnce(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (t *dailyRankingTask) cleanup() {
	if t.pool != nil {
		t.pool.StopAndWait()
	}
}

// Stop gracefully stops the task with timeout support
func (t *dailyRankingTask) Stop(ctx context.Context) error {
	if !t.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping daily ranking task")
	close(t.stopChan)

	select {
	case <-t.stoppedCh:
		logger.InfoCtx(ctx, "Daily ranking task stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Daily ranking task stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce regenerates all category rankings for today. Categories run in
// parallel; a failing category never aborts the others.
func (t *dailyRankingTask) RunOnce(ctx context.Context) error {
	startTime := t.clock.Now()
	today := startTime

	categories, err := t.store.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	logger.InfoCtx(ctx, "Starting ranking run", zap.Int("categories", len(categories)))

	var failures atomic.Int32
	group := t.pool.NewGroup()
	for _, category := range categories {
		categoryID := category.ID
		group.Submit(func() {
			if err := t.ranker.RankCategory(ctx, today, categoryID); err != nil {
				if errors.Is(err, domain.ErrRankingInProgress) {
					logger.WarnCtx(ctx, "Ranking already in progress, skipping",
						zap.Int64("category_id", categoryID))
					return
				}
				failures.Add(1)
				logger.ErrorCtx(ctx, err, zap.Int64("category_id", categoryID))
			}
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("ranking group failed: %w", err)
	}

	cutoff := today.Add(-t.config.Retention)
	deleted, err := t.store.DeleteHotRankingsBefore(ctx, cutoff)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to prune expired rankings", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Ranking run complete",
		zap.Int("categories", len(categories)),
		zap.Int32("failures", failures.Load()),
		zap.Int64("pruned_rows", deleted),
		zap.Duration("elapsed", t.clock.Since(startTime)),
	)
	return nil
}

// untilNextRun computes the wait until the next configured run time
func (t *dailyRankingTask) untilNextRun() time.Duration {
	now := t.clock.Now()
	runAt, err := time.Parse("15:04", t.config.RunAt)
	if err != nil {
		runAt, _ = time.Parse("15:04", "02:00")
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), runAt.Hour(), runAt.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
