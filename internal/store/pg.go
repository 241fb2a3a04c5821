package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flashsell/flashsell/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the database schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Category{},
		&schema.Product{},
		&schema.PricePoint{},
		&schema.HotProduct{},
		&schema.SearchHistory{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// DateOnly truncates t to midnight UTC so date-keyed rows compare consistently
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UpsertProduct creates or updates a product keyed by (source, external_id)
func (s *pgStore) UpsertProduct(ctx context.Context, product *schema.Product) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source"}, {Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "image_url", "current_price", "bsr_rank",
			"review_count", "rating", "category_id", "last_updated",
		}),
	}).Create(product).Error
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}

	// On conflict the returned ID can be 0 with some drivers; fetch it explicitly
	if product.ID == 0 {
		var existing schema.Product
		if err := s.db.WithContext(ctx).
			Where("source = ? AND external_id = ?", product.Source, product.ExternalID).
			First(&existing).Error; err != nil {
			return fmt.Errorf("failed to get upserted product: %w", err)
		}
		product.ID = existing.ID
	}

	return nil
}

// GetProductByExternalID retrieves a product by its source and external id
func (s *pgStore) GetProductByExternalID(ctx context.Context, source, externalID string) (*schema.Product, error) {
	var product schema.Product
	err := s.db.WithContext(ctx).
		Where("source = ? AND external_id = ?", source, externalID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// GetProductByID retrieves a product by its internal id
func (s *pgStore) GetProductByID(ctx context.Context, id int64) (*schema.Product, error) {
	var product schema.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// UpsertPricePoint records a price for (productID, date), updating in place
// when a point for that day already exists
func (s *pgStore) UpsertPricePoint(ctx context.Context, productID int64, date time.Time, price decimal.Decimal) error {
	point := schema.PricePoint{
		ProductID:    productID,
		RecordedDate: DateOnly(date),
		Price:        price,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "recorded_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"price"}),
	}).Create(&point).Error
	if err != nil {
		return fmt.Errorf("failed to upsert price point: %w", err)
	}
	return nil
}

// GetPriceHistory returns price points for a product since the given date, oldest first
func (s *pgStore) GetPriceHistory(ctx context.Context, productID int64, since time.Time) ([]*schema.PricePoint, error) {
	var points []*schema.PricePoint
	err := s.db.WithContext(ctx).
		Where("product_id = ? AND recorded_date >= ?", productID, DateOnly(since)).
		Order("recorded_date ASC").
		Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get price history: %w", err)
	}
	return points, nil
}

// ListProductsByCategory returns all products mapped to the given category
func (s *pgStore) ListProductsByCategory(ctx context.Context, categoryID int64) ([]*schema.Product, error) {
	var products []*schema.Product
	err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return products, nil
}

// ListCategories returns the full category catalog ordered by id
func (s *pgStore) ListCategories(ctx context.Context) ([]*schema.Category, error) {
	var categories []*schema.Category
	err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by its internal id
func (s *pgStore) GetCategoryByID(ctx context.Context, id int64) (*schema.Category, error) {
	var category schema.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetCategoryByExternalID retrieves a category by its marketplace-side id
func (s *pgStore) GetCategoryByExternalID(ctx context.Context, externalID string) (*schema.Category, error) {
	var category schema.Category
	err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetHotRanking returns the ranking rows for (date, categoryID) ordered by rank
func (s *pgStore) GetHotRanking(ctx context.Context, date time.Time, categoryID int64) ([]*schema.HotProduct, error) {
	var rows []*schema.HotProduct
	err := s.db.WithContext(ctx).
		Where("recommend_date = ? AND category_id = ?", DateOnly(date), categoryID).
		Order("rank_in_category ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get hot ranking: %w", err)
	}
	return rows, nil
}

// CountRankingAppearances counts, per product, how many rankings of the given
// category each product appeared in within [from, to]
func (s *pgStore) CountRankingAppearances(ctx context.Context, categoryID int64, productIDs []int64, from, to time.Time) (map[int64]int, error) {
	counts := make(map[int64]int, len(productIDs))
	if len(productIDs) == 0 {
		return counts, nil
	}

	var results []struct {
		ProductID int64
		N         int
	}
	err := s.db.WithContext(ctx).
		Model(&schema.HotProduct{}).
		Select("product_id, COUNT(*) AS n").
		Where("category_id = ? AND product_id IN ? AND recommend_date BETWEEN ? AND ?",
			categoryID, productIDs, DateOnly(from), DateOnly(to)).
		Group("product_id").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count ranking appearances: %w", err)
	}

	for _, r := range results {
		counts[r.ProductID] = r.N
	}
	return counts, nil
}

// ReplaceHotRanking atomically replaces all rows for (date, categoryID) with the
// given set. The delete and insert share one transaction; any failure rolls back
// fully so the previous ranking stays authoritative.
func (s *pgStore) ReplaceHotRanking(ctx context.Context, date time.Time, categoryID int64, rows []*schema.HotProduct) error {
	day := DateOnly(date)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("recommend_date = ? AND category_id = ?", day, categoryID).
			Delete(&schema.HotProduct{}).Error; err != nil {
			return fmt.Errorf("failed to delete existing ranking: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		for _, row := range rows {
			row.RecommendDate = day
			row.CategoryID = categoryID
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert ranking: %w", err)
		}
		return nil
	})
}

// DeleteHotRankingsBefore removes ranking rows older than cutoff, returning the count
func (s *pgStore) DeleteHotRankingsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("recommend_date < ?", DateOnly(cutoff)).
		Delete(&schema.HotProduct{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired rankings: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// TopHotProducts returns the highest-scored rows across all categories for a date
func (s *pgStore) TopHotProducts(ctx context.Context, date time.Time, limit int) ([]*schema.HotProduct, error) {
	var rows []*schema.HotProduct
	err := s.db.WithContext(ctx).
		Where("recommend_date = ?", DateOnly(date)).
		Order("hot_score DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top hot products: %w", err)
	}
	return rows, nil
}

// ProductHotHistory returns a product's ranking rows within [from, to], oldest first
func (s *pgStore) ProductHotHistory(ctx context.Context, productID int64, from, to time.Time) ([]*schema.HotProduct, error) {
	var rows []*schema.HotProduct
	err := s.db.WithContext(ctx).
		Where("product_id = ? AND recommend_date BETWEEN ? AND ?", productID, DateOnly(from), DateOnly(to)).
		Order("recommend_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product hot history: %w", err)
	}
	return rows, nil
}

// RecordSearch persists one search history row
func (s *pgStore) RecordSearch(ctx context.Context, entry *schema.SearchHistory) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// DeleteSearchHistoryBefore removes history rows older than cutoff, returning the count
func (s *pgStore) DeleteSearchHistoryBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&schema.SearchHistory{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete search history: %w", result.Error)
	}
	return result.RowsAffected, nil
}
