// Package catalog resolves raw category hints from scraped records to
// canonical catalog categories.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/flashsell/flashsell/internal/store"
	"github.com/flashsell/flashsell/internal/store/schema"
)

//go:generate mockgen -source=catalog.go -destination=../mocks/catalog.go -package=mocks -mock_names=Resolver=MockCategoryResolver

// Resolver maps raw category identifiers and names to canonical categories.
type Resolver interface {
	// Resolve maps a raw category hint to a canonical category. Either
	// externalID or name may be empty. A nil result with nil error means no
	// category matched; an unmatched hint is not an error.
	Resolve(ctx context.Context, externalID, name string) (*schema.Category, error)

	// InvalidateCache drops all cached fuzzy-match results. Call after the
	// category catalog changes.
	InvalidateCache()
}

// Catalog is a store-backed Resolver with an in-memory keyword cache for
// fuzzy matches. Resolution order: external-id exact match, keyword cache,
// bidirectional substring match, token overlap. Fuzzy hits populate the
// cache so repeated hints skip the scan.
type Catalog struct {
	store store.Store

	mu    sync.RWMutex
	cache map[string]int64 // normalized name -> category id

	loadOnce   sync.Once
	loadErr    error
	categories []*schema.Category
}

func NewCatalog(s store.Store) *Catalog {
	return &Catalog{
		store: s,
		cache: make(map[string]int64),
	}
}

func (c *Catalog) Resolve(ctx context.Context, externalID, name string) (*schema.Category, error) {
	// Tier 1: exact external id
	if externalID != "" {
		category, err := c.store.GetCategoryByExternalID(ctx, externalID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			return category, nil
		}
	}

	normalized := normalizeName(name)
	if normalized == "" {
		return nil, nil
	}

	// Tier 2: keyword cache
	c.mu.RLock()
	id, ok := c.cache[normalized]
	c.mu.RUnlock()
	if ok {
		return c.store.GetCategoryByID(ctx, id)
	}

	categories, err := c.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	// Tier 3: bidirectional substring
	for _, category := range categories {
		candidate := normalizeName(category.Name)
		if candidate == "" {
			continue
		}
		if strings.Contains(normalized, candidate) || strings.Contains(candidate, normalized) {
			c.remember(normalized, category.ID)
			return category, nil
		}
	}

	// Tier 4: token overlap, tokens shorter than 3 chars are too ambiguous
	hintTokens := tokenize(normalized)
	for _, category := range categories {
		for _, token := range tokenize(normalizeName(category.Name)) {
			if len(token) < 3 {
				continue
			}
			if containsToken(hintTokens, token) {
				c.remember(normalized, category.ID)
				return category, nil
			}
		}
	}

	return nil, nil
}

func (c *Catalog) InvalidateCache() {
	c.mu.Lock()
	c.cache = make(map[string]int64)
	c.mu.Unlock()
}

// loadCategories fetches the catalog once and keeps it for the process
// lifetime. The catalog is small and changes rarely; InvalidateCache only
// clears fuzzy results, a restart picks up new categories.
func (c *Catalog) loadCategories(ctx context.Context) ([]*schema.Category, error) {
	c.loadOnce.Do(func() {
		c.categories, c.loadErr = c.store.ListCategories(ctx)
	})
	return c.categories, c.loadErr
}

func (c *Catalog) remember(key string, id int64) {
	c.mu.Lock()
	c.cache[key] = id
	c.mu.Unlock()
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '&' || r == ',' || r == '/' || r == '-'
	})
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
