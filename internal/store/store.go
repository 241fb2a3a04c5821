package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flashsell/flashsell/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertProduct creates or updates a product keyed by (source, external_id).
	// Writes are last-fresh-wins; the product's ID is populated on return.
	UpsertProduct(ctx context.Context, product *schema.Product) error
	// GetProductByExternalID retrieves a product by its source and external id
	GetProductByExternalID(ctx context.Context, source, externalID string) (*schema.Product, error)
	// GetProductByID retrieves a product by its internal id
	GetProductByID(ctx context.Context, id int64) (*schema.Product, error)

	// UpsertPricePoint records a price for (productID, date), updating in place
	// when a point for that day already exists
	UpsertPricePoint(ctx context.Context, productID int64, date time.Time, price decimal.Decimal) error
	// GetPriceHistory returns price points for a product since the given date, oldest first
	GetPriceHistory(ctx context.Context, productID int64, since time.Time) ([]*schema.PricePoint, error)

	// ListProductsByCategory returns all products mapped to the given category
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]*schema.Product, error)

	// ListCategories returns the full category catalog
	ListCategories(ctx context.Context) ([]*schema.Category, error)
	// GetCategoryByID retrieves a category by its internal id
	GetCategoryByID(ctx context.Context, id int64) (*schema.Category, error)
	// GetCategoryByExternalID retrieves a category by its marketplace-side id
	GetCategoryByExternalID(ctx context.Context, externalID string) (*schema.Category, error)

	// GetHotRanking returns the ranking rows for (date, categoryID) ordered by rank
	GetHotRanking(ctx context.Context, date time.Time, categoryID int64) ([]*schema.HotProduct, error)
	// CountRankingAppearances counts, per product, how many rankings of the given
	// category each product appeared in within [from, to]
	CountRankingAppearances(ctx context.Context, categoryID int64, productIDs []int64, from, to time.Time) (map[int64]int, error)
	// ReplaceHotRanking atomically replaces all rows for (date, categoryID) with
	// the given set. On any failure the previous ranking remains untouched.
	ReplaceHotRanking(ctx context.Context, date time.Time, categoryID int64, rows []*schema.HotProduct) error
	// DeleteHotRankingsBefore removes ranking rows older than cutoff, returning the count
	DeleteHotRankingsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// TopHotProducts returns the highest-scored rows across all categories for a date
	TopHotProducts(ctx context.Context, date time.Time, limit int) ([]*schema.HotProduct, error)
	// ProductHotHistory returns a product's ranking rows within [from, to], oldest first
	ProductHotHistory(ctx context.Context, productID int64, from, to time.Time) ([]*schema.HotProduct, error)

	// RecordSearch persists one search history row
	RecordSearch(ctx context.Context, entry *schema.SearchHistory) error
	// DeleteSearchHistoryBefore removes history rows older than cutoff, returning the count
	DeleteSearchHistoryBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
