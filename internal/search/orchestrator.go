// Package search orchestrates AI-assisted product search: response caching,
// intent extraction, category resolution, filtering and pagination.
package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/logger"
	"github.com/flashsell/flashsell/internal/product"
	"github.com/flashsell/flashsell/internal/store"
	"github.com/flashsell/flashsell/internal/store/schema"
)

const (
	cacheKeyPrefix = "search:result:"

	// DefaultCacheTTL bounds how long a search response stays cached
	DefaultCacheTTL = 15 * time.Minute

	// DefaultPageSize applies when a request leaves the page size unset
	DefaultPageSize = 10

	// DefaultMaxPageSize caps the page size a request may ask for
	DefaultMaxPageSize = 50

	// OutOfScopeSummary is returned when the AI suggested categories but
	// none exist in the catalog
	OutOfScopeSummary = "This search falls outside the product categories we track, so no results are available."
)

// Config holds orchestrator tuning; zero values fall back to the defaults
type Config struct {
	CacheTTL        time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

// Orchestrator runs the search pipeline end to end
type Orchestrator struct {
	intent          IntentAnalyzer
	products        product.Service
	store           store.Store
	cache           adapter.Cache
	json            adapter.JSON
	clock           adapter.Clock
	cacheTTL        time.Duration
	defaultPageSize int
	maxPageSize     int
}

// NewOrchestrator creates a search orchestrator
func NewOrchestrator(
	intent IntentAnalyzer,
	products product.Service,
	s store.Store,
	cache adapter.Cache,
	json adapter.JSON,
	clock adapter.Clock,
	config Config,
) *Orchestrator {
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if config.DefaultPageSize <= 0 {
		config.DefaultPageSize = DefaultPageSize
	}
	if config.MaxPageSize <= 0 {
		config.MaxPageSize = DefaultMaxPageSize
	}
	return &Orchestrator{
		intent:          intent,
		products:        products,
		store:           s,
		cache:           cache,
		json:            json,
		clock:           clock,
		cacheTTL:        config.CacheTTL,
		defaultPageSize: config.DefaultPageSize,
		maxPageSize:     config.MaxPageSize,
	}
}

// Search executes one search request. Explicit filters take precedence over
// AI-suggested ones; vendor unavailability degrades to stale or empty data
// rather than an error.
func (o *Orchestrator) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	req = o.normalizeRequest(req)
	key := o.cacheKey(req)

	if cached := o.lookupCached(ctx, key); cached != nil {
		o.recordHistory(ctx, req.Query, cached.Total)
		return cached, nil
	}

	intent := o.analyzeIntent(ctx, req.Query)

	categoryID, err := o.resolveCategory(ctx, req.CategoryID, intent.CategoryIDs)
	if err != nil {
		return nil, err
	}

	// AI named categories, none of them exist in the catalog: answer without
	// touching the vendor
	if categoryID == nil && len(intent.CategoryIDs) > 0 && req.CategoryID == nil {
		result := &domain.SearchResult{
			Products:  []domain.Product{},
			Total:     0,
			Page:      req.Page,
			PageSize:  req.PageSize,
			AISummary: OutOfScopeSummary,
			Freshness: domain.NoData(),
		}
		o.recordHistory(ctx, req.Query, 0)
		return result, nil
	}

	// A cancelled search must stop before the expensive fetch
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keyword := req.Query
	if len(intent.Keywords) > 0 {
		keyword = strings.Join(intent.Keywords, " ")
	}

	products, freshness, err := o.products.SearchWithFallback(ctx, keyword, domain.SourceMarketplace)
	if err != nil {
		return nil, err
	}

	filtered := o.applyFilters(products, req, intent, categoryID)
	page, hasMore := paginate(filtered, req.Page, req.PageSize)

	result := &domain.SearchResult{
		Products:  page,
		Total:     len(filtered),
		Page:      req.Page,
		PageSize:  req.PageSize,
		HasMore:   hasMore,
		AISummary: intent.Summary,
		Freshness: freshness,
	}

	if ctx.Err() != nil {
		// Cancelled mid-flight: no cache writes, no history rows
		return nil, ctx.Err()
	}

	o.storeCached(ctx, key, result)
	o.recordHistory(ctx, req.Query, result.Total)
	return result, nil
}

// analyzeIntent extracts intent, degrading to an empty intent when the
// analyzer fails. Search still works without AI assistance.
func (o *Orchestrator) analyzeIntent(ctx context.Context, query string) *domain.QueryIntent {
	intent, err := o.intent.Analyze(ctx, query)
	if err != nil {
		logger.WarnCtx(ctx, "Intent analysis failed, searching without it",
			zap.String("query", query),
			zap.Error(err),
		)
		return &domain.QueryIntent{}
	}
	return intent
}

// resolveCategory picks one working category: the caller's explicit id when
// it exists in the catalog, else the first AI-suggested id that does. Unknown
// ids are "filter not applicable", not errors.
func (o *Orchestrator) resolveCategory(ctx context.Context, explicit *int64, suggested []int64) (*int64, error) {
	if explicit != nil {
		category, err := o.store.GetCategoryByID(ctx, *explicit)
		if err != nil {
			return nil, err
		}
		if category != nil {
			return explicit, nil
		}
	}
	for _, id := range suggested {
		category, err := o.store.GetCategoryByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if category != nil {
			resolved := id
			return &resolved, nil
		}
	}
	return nil, nil
}

// applyFilters applies category, price and rating filters conjunctively.
// Explicit request filters win over AI suggestions field by field.
func (o *Orchestrator) applyFilters(products []domain.Product, req domain.SearchRequest, intent *domain.QueryIntent, categoryID *int64) []domain.Product {
	priceMin := req.PriceMin
	if priceMin == nil {
		priceMin = intent.PriceMin
	}
	priceMax := req.PriceMax
	if priceMax == nil {
		priceMax = intent.PriceMax
	}
	minRating := req.MinRating
	if minRating == nil {
		minRating = intent.MinRating
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if categoryID != nil && (p.CategoryID == nil || *p.CategoryID != *categoryID) {
			continue
		}
		if priceMin != nil && p.CurrentPrice.LessThan(*priceMin) {
			continue
		}
		if priceMax != nil && p.CurrentPrice.GreaterThan(*priceMax) {
			continue
		}
		if minRating != nil && (p.Rating == nil || *p.Rating < *minRating) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (o *Orchestrator) cacheKey(req domain.SearchRequest) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.Join(strings.Fields(req.Query), " ")))
	b.WriteString("|")
	if req.CategoryID != nil {
		fmt.Fprintf(&b, "%d", *req.CategoryID)
	}
	b.WriteString("|")
	if req.PriceMin != nil {
		b.WriteString(req.PriceMin.String())
	}
	b.WriteString("|")
	if req.PriceMax != nil {
		b.WriteString(req.PriceMax.String())
	}
	b.WriteString("|")
	if req.MinRating != nil {
		fmt.Fprintf(&b, "%.2f", *req.MinRating)
	}
	fmt.Fprintf(&b, "|%d|%d", req.Page, req.PageSize)

	sum := sha256.Sum256([]byte(b.String()))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (o *Orchestrator) lookupCached(ctx context.Context, key string) *domain.SearchResult {
	payload, found, err := o.cache.Get(ctx, key)
	if err != nil {
		// Cache outage degrades to a miss
		logger.WarnCtx(ctx, "Search cache read failed", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var result domain.SearchResult
	if err := o.json.Unmarshal(payload, &result); err != nil {
		logger.WarnCtx(ctx, "Corrupt cached search result, dropping", zap.Error(err))
		_ = o.cache.Delete(ctx, key)
		return nil
	}
	return &result
}

func (o *Orchestrator) storeCached(ctx context.Context, key string, result *domain.SearchResult) {
	payload, err := o.json.Marshal(result)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to marshal search result for cache", zap.Error(err))
		return
	}
	if err := o.cache.Set(ctx, key, payload, o.cacheTTL); err != nil {
		logger.WarnCtx(ctx, "Search cache write failed", zap.Error(err))
	}
}

// recordHistory persists the search best-effort; it never blocks or fails
// the response
func (o *Orchestrator) recordHistory(ctx context.Context, query string, resultCount int) {
	entry := &schema.SearchHistory{
		ID:          uuid.NewString(),
		Query:       query,
		ResultCount: resultCount,
		CreatedAt:   o.clock.Now(),
	}
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := o.store.RecordSearch(bgCtx, entry); err != nil {
			logger.Warn("Failed to record search history", zap.String("query", query), zap.Error(err))
		}
	}()
}

func (o *Orchestrator) normalizeRequest(req domain.SearchRequest) domain.SearchRequest {
	req.Query = strings.TrimSpace(req.Query)
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = o.defaultPageSize
	}
	if req.PageSize > o.maxPageSize {
		req.PageSize = o.maxPageSize
	}
	return req
}

func paginate(products []domain.Product, page, pageSize int) ([]domain.Product, bool) {
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []domain.Product{}, false
	}
	end := min(start+pageSize, len(products))
	return products[start:end], end < len(products)
}
