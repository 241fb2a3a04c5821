package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/config"
	"github.com/flashsell/flashsell/internal/logger"
	"github.com/flashsell/flashsell/internal/ranking"
	"github.com/flashsell/flashsell/internal/scheduler"
	"github.com/flashsell/flashsell/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	migrate    = flag.Bool("migrate", false, "Run schema migration before starting")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadRankerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "rankerd",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting rankerd")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	if *migrate {
		if err := store.Migrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate schema", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Schema migration complete")
	}

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Initialize ranker with the default scoring policy
	scoring := ranking.NewHeuristicModel()
	ranker := ranking.NewRanker(dataStore, scoring, jsonAdapter, cfg.Ranking.TopN, cfg.Ranking.HistoryWindow)

	// Initialize background tasks
	rankingTask := scheduler.NewDailyRankingTask(&scheduler.DailyRankingConfig{
		RunAt:          cfg.Ranking.RunAt,
		Retention:      cfg.Ranking.Retention,
		WorkerPoolSize: cfg.Worker.PoolSize,
		QueueSize:      cfg.Worker.QueueSize,
	}, dataStore, ranker, clock)

	warmup := scheduler.NewWarmupTask(dataStore, ranker, clock)

	// Warmup is fire-and-forget; a failure never blocks startup
	go func() {
		if err := warmup.Start(ctx); err != nil {
			logger.WarnCtx(ctx, "Cache warmup failed", zap.Error(err))
		}
	}()

	// Start the ranking task in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := rankingTask.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the tasks
	cancel()

	// Give the tasks time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := rankingTask.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if err := warmup.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "rankerd stopped")
}
