// Command search runs one product search end to end and prints the result
// as JSON. It exercises the full pipeline: intent analysis, fallback-backed
// vendor fetch, filtering, pagination and response caching.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/catalog"
	"github.com/flashsell/flashsell/internal/config"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/gateway"
	"github.com/flashsell/flashsell/internal/logger"
	"github.com/flashsell/flashsell/internal/normalize"
	"github.com/flashsell/flashsell/internal/product"
	"github.com/flashsell/flashsell/internal/ratelimit"
	"github.com/flashsell/flashsell/internal/scrape"
	"github.com/flashsell/flashsell/internal/search"
	"github.com/flashsell/flashsell/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	query      = flag.String("query", "", "Free-text search query")
	categoryID = flag.Int64("category", 0, "Explicit category id filter")
	priceMin   = flag.String("price-min", "", "Minimum price filter")
	priceMax   = flag.String("price-max", "", "Maximum price filter")
	minRating  = flag.Float64("min-rating", 0, "Minimum rating filter")
	page       = flag.Int("page", 1, "Result page, 1-based")
	pageSize   = flag.Int("page-size", 10, "Results per page")
	timeout    = flag.Duration("timeout", 60*time.Second, "Overall request timeout")
)

func main() {
	flag.Parse()
	if *query == "" {
		fmt.Fprintln(os.Stderr, "usage: search -query <text> [-category id] [-price-min x] [-price-max y] [-min-rating r] [-page n] [-page-size n]")
		os.Exit(2)
	}

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSearcherConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "search",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Scrape.Timeout)
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", zap.Error(err))
		}
	}()
	cache := redisClient.NewCache()

	// Vendor client behind the rate limiter and fallback gateway
	limiter, err := ratelimit.NewLimiter(scrape.VENDOR_NAME, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	source := scrape.NewBrightDataSource(httpClient, limiter, cfg.Scrape.APIURL, cfg.Scrape.APIKey, jsonAdapter)
	gw := gateway.New(cache, jsonAdapter, clock, cfg.Scrape.FallbackTTL)

	// Normalization and product acquisition
	resolver := catalog.NewCatalog(dataStore)
	normalizer := normalize.NewNormalizer(resolver, clock)
	recorder := normalize.NewPriceRecorder(dataStore, clock)
	products := product.NewService(source, gw, normalizer, recorder, dataStore, clock)

	// Intent analysis
	intentClient := adapter.NewHTTPClient(cfg.Intent.Timeout)
	intent := search.NewHTTPIntentAnalyzer(intentClient, cfg.Intent.APIURL, cfg.Intent.APIKey, cfg.Intent.Model, jsonAdapter)

	orchestrator := search.NewOrchestrator(intent, products, dataStore, cache, jsonAdapter, clock, search.Config{
		CacheTTL:        cfg.Search.CacheTTL,
		DefaultPageSize: cfg.Search.DefaultPageSize,
		MaxPageSize:     cfg.Search.MaxPageSize,
	})

	req := domain.SearchRequest{
		Query:    *query,
		Page:     *page,
		PageSize: *pageSize,
	}
	if *categoryID > 0 {
		req.CategoryID = categoryID
	}
	if *priceMin != "" {
		v, err := decimal.NewFromString(*priceMin)
		if err != nil {
			logger.FatalCtx(ctx, "Invalid -price-min", zap.String("value", *priceMin))
		}
		req.PriceMin = &v
	}
	if *priceMax != "" {
		v, err := decimal.NewFromString(*priceMax)
		if err != nil {
			logger.FatalCtx(ctx, "Invalid -price-max", zap.String("value", *priceMax))
		}
		req.PriceMax = &v
	}
	if *minRating > 0 {
		req.MinRating = minRating
	}

	result, err := orchestrator.Search(ctx, req)
	if err != nil {
		logger.FatalCtx(ctx, "Search failed", zap.Error(err))
	}

	out, err := jsonAdapter.Marshal(result)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to marshal result", zap.Error(err))
	}
	fmt.Println(string(out))
}
