// Package normalize converts raw vendor records into canonical products.
package normalize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/catalog"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/scrape"
)

// CNYToUSDRate converts wholesale CNY prices to the canonical currency.
// Fixed by policy; updated with vendor contract reviews, not market rates.
var CNYToUSDRate = decimal.RequireFromString("0.139")

// Normalizer converts raw records of both source schemas into canonical
// products. Normalization is pure given a raw record: the same input always
// yields the same product.
type Normalizer struct {
	catalog catalog.Resolver
	clock   adapter.Clock
}

func NewNormalizer(c catalog.Resolver, clock adapter.Clock) *Normalizer {
	return &Normalizer{catalog: c, clock: clock}
}

// FromMarketplace converts a primary marketplace record. Prices are already
// in the canonical currency.
func (n *Normalizer) FromMarketplace(ctx context.Context, raw *scrape.MarketplaceProduct) (*domain.Product, error) {
	if !raw.Valid() {
		return nil, fmt.Errorf("%w: marketplace record missing asin, title or price", domain.ErrInvalidRecord)
	}

	price, err := parsePrice(raw.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}

	categoryID, err := n.resolveCategory(ctx, raw.CategoryID, raw.Category)
	if err != nil {
		return nil, err
	}

	return &domain.Product{
		ExternalID:   raw.ASIN,
		Source:       domain.SourceMarketplace,
		Title:        strings.TrimSpace(raw.Title),
		ImageURL:     raw.ImageURL,
		CurrentPrice: price,
		BSRRank:      raw.BSRRank,
		ReviewCount:  raw.ReviewCount,
		Rating:       raw.Rating,
		CategoryID:   categoryID,
		LastUpdated:  n.fetchedAt(raw.FetchedAt),
	}, nil
}

// FromWholesale converts a secondary wholesale record. CNY prices are
// converted at the fixed rate and rounded half-up to two decimals.
func (n *Normalizer) FromWholesale(ctx context.Context, raw *scrape.WholesaleProduct) (*domain.Product, error) {
	if !raw.Valid() {
		return nil, fmt.Errorf("%w: wholesale record missing offer id, title or price", domain.ErrInvalidRecord)
	}

	cny, err := parsePrice(raw.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	price := ConvertCNY(cny)

	categoryID, err := n.resolveCategory(ctx, "", raw.Category)
	if err != nil {
		return nil, err
	}

	return &domain.Product{
		ExternalID:   raw.OfferID,
		Source:       domain.SourceWholesale,
		Title:        strings.TrimSpace(raw.Title),
		ImageURL:     raw.ImageURL,
		CurrentPrice: price,
		ReviewCount:  raw.SoldCount,
		Rating:       raw.Rating,
		CategoryID:   categoryID,
		LastUpdated:  n.fetchedAt(raw.FetchedAt),
	}, nil
}

// ConvertCNY converts a CNY amount to the canonical currency, rounding
// half-up to two decimals
func ConvertCNY(cny decimal.Decimal) decimal.Decimal {
	return cny.Mul(CNYToUSDRate).Round(2)
}

func (n *Normalizer) resolveCategory(ctx context.Context, externalID, name string) (*int64, error) {
	category, err := n.catalog.Resolve(ctx, externalID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	if category == nil {
		return nil, nil
	}
	id := category.ID
	return &id, nil
}

func (n *Normalizer) fetchedAt(at time.Time) time.Time {
	if at.IsZero() {
		return n.clock.Now()
	}
	return at
}

// parsePrice parses a vendor price string, tolerating currency symbols and
// thousands separators, and rounds half-up to two decimals
func parsePrice(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimLeft(cleaned, "$¥€£")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty price")
	}

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable price %q", s)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %q", s)
	}
	return price.Round(2), nil
}
