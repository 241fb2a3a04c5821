package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/flashsell/flashsell/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestProduct(source, externalID string) *schema.Product {
	bsr := 321
	reviews := 1200
	rating := 4.5
	return &schema.Product{
		Source:       source,
		ExternalID:   externalID,
		Title:        "Test Product " + externalID,
		ImageURL:     "https://img.example.com/" + externalID,
		CurrentPrice: decimal.NewFromFloat(49.99),
		BSRRank:      &bsr,
		ReviewCount:  &reviews,
		Rating:       &rating,
		LastUpdated:  time.Now().UTC(),
	}
}

func buildTestCategory(name, externalID string) *schema.Category {
	return &schema.Category{
		Name:       name,
		ExternalID: externalID,
		GroupName:  "Test Group",
	}
}

func buildTestHotRow(productID int64, rank int, score float64) *schema.HotProduct {
	return &schema.HotProduct{
		ProductID:      productID,
		HotScore:       decimal.NewFromFloat(score),
		RankInCategory: rank,
		DaysOnList:     1,
		Recommendation: "solid pick",
		Reasons:        datatypes.JSON([]byte(`["test signal"]`)),
	}
}

func mustCreateCategory(t *testing.T, store Store, name string) int64 {
	t.Helper()
	pg := store.(*pgStore)
	category := buildTestCategory(name, "ext-"+name)
	require.NoError(t, pg.db.Create(category).Error)
	return category.ID
}

func mustCreateProduct(t *testing.T, store Store, externalID string, categoryID *int64) int64 {
	t.Helper()
	ctx := context.Background()
	product := buildTestProduct("marketplace", externalID)
	product.CategoryID = categoryID
	require.NoError(t, store.UpsertProduct(ctx, product))
	require.NotZero(t, product.ID)
	return product.ID
}

// =============================================================================
// Test: Products
// =============================================================================

func testUpsertProduct(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("insert populates the internal id", func(t *testing.T) {
		product := buildTestProduct("marketplace", "B0INSERT01")
		require.NoError(t, store.UpsertProduct(ctx, product))
		assert.NotZero(t, product.ID)
	})

	t.Run("second upsert updates in place", func(t *testing.T) {
		first := buildTestProduct("marketplace", "B0UPSERT01")
		require.NoError(t, store.UpsertProduct(ctx, first))

		second := buildTestProduct("marketplace", "B0UPSERT01")
		second.Title = "Renamed Product"
		second.CurrentPrice = decimal.NewFromFloat(39.99)
		require.NoError(t, store.UpsertProduct(ctx, second))
		assert.Equal(t, first.ID, second.ID)

		stored, err := store.GetProductByExternalID(ctx, "marketplace", "B0UPSERT01")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Renamed Product", stored.Title)
		assert.True(t, stored.CurrentPrice.Equal(decimal.NewFromFloat(39.99)))
	})

	t.Run("same external id on another source is a distinct product", func(t *testing.T) {
		marketplace := buildTestProduct("marketplace", "SHARED01")
		wholesale := buildTestProduct("wholesale", "SHARED01")
		require.NoError(t, store.UpsertProduct(ctx, marketplace))
		require.NoError(t, store.UpsertProduct(ctx, wholesale))
		assert.NotEqual(t, marketplace.ID, wholesale.ID)
	})

	t.Run("lookup misses return nil without error", func(t *testing.T) {
		stored, err := store.GetProductByExternalID(ctx, "marketplace", "B0MISSING")
		require.NoError(t, err)
		assert.Nil(t, stored)

		byID, err := store.GetProductByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, byID)
	})
}

func testListProductsByCategory(t *testing.T, store Store) {
	ctx := context.Background()

	categoryID := mustCreateCategory(t, store, "Electronics")
	otherID := mustCreateCategory(t, store, "Home & Kitchen")

	mustCreateProduct(t, store, "B0CAT01", &categoryID)
	mustCreateProduct(t, store, "B0CAT02", &categoryID)
	mustCreateProduct(t, store, "B0CAT03", &otherID)
	mustCreateProduct(t, store, "B0CAT04", nil)

	products, err := store.ListProductsByCategory(ctx, categoryID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		require.NotNil(t, p.CategoryID)
		assert.Equal(t, categoryID, *p.CategoryID)
	}
}

// =============================================================================
// Test: Price Points
// =============================================================================

func testUpsertPricePoint(t *testing.T, store Store) {
	ctx := context.Background()
	productID := mustCreateProduct(t, store, "B0PRICE01", nil)
	day := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	t.Run("same day records one point with the latest price", func(t *testing.T) {
		require.NoError(t, store.UpsertPricePoint(ctx, productID, day, decimal.NewFromFloat(49.99)))
		// A later fetch the same day overwrites, never duplicates
		require.NoError(t, store.UpsertPricePoint(ctx, productID, day.Add(3*time.Hour), decimal.NewFromFloat(44.99)))

		points, err := store.GetPriceHistory(ctx, productID, day.AddDate(0, 0, -1))
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.True(t, points[0].Price.Equal(decimal.NewFromFloat(44.99)))
	})

	t.Run("history is ordered oldest first", func(t *testing.T) {
		require.NoError(t, store.UpsertPricePoint(ctx, productID, day.AddDate(0, 0, 1), decimal.NewFromFloat(47.50)))
		require.NoError(t, store.UpsertPricePoint(ctx, productID, day.AddDate(0, 0, 2), decimal.NewFromFloat(45.00)))

		points, err := store.GetPriceHistory(ctx, productID, day.AddDate(0, 0, -1))
		require.NoError(t, err)
		require.Len(t, points, 3)
		for i := 1; i < len(points); i++ {
			assert.True(t, points[i-1].RecordedDate.Before(points[i].RecordedDate))
		}
	})

	t.Run("since excludes older points", func(t *testing.T) {
		points, err := store.GetPriceHistory(ctx, productID, day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Len(t, points, 2)
	})
}

// =============================================================================
// Test: Categories
// =============================================================================

func testCategories(t *testing.T, store Store) {
	ctx := context.Background()

	electronics := mustCreateCategory(t, store, "Electronics")
	mustCreateCategory(t, store, "Home & Kitchen")

	t.Run("list returns the full catalog", func(t *testing.T) {
		categories, err := store.ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 2)
	})

	t.Run("lookup by id", func(t *testing.T) {
		category, err := store.GetCategoryByID(ctx, electronics)
		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "Electronics", category.Name)
	})

	t.Run("lookup by external id", func(t *testing.T) {
		category, err := store.GetCategoryByExternalID(ctx, "ext-Electronics")
		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, electronics, category.ID)
	})

	t.Run("unknown ids return nil without error", func(t *testing.T) {
		category, err := store.GetCategoryByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, category)

		byExternal, err := store.GetCategoryByExternalID(ctx, "no-such-external")
		require.NoError(t, err)
		assert.Nil(t, byExternal)
	})
}

// =============================================================================
// Test: Hot Rankings
// =============================================================================

func testReplaceHotRanking(t *testing.T, store Store) {
	ctx := context.Background()
	categoryID := mustCreateCategory(t, store, "Electronics")
	day := DateOnly(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))

	p1 := mustCreateProduct(t, store, "B0RANK01", &categoryID)
	p2 := mustCreateProduct(t, store, "B0RANK02", &categoryID)
	p3 := mustCreateProduct(t, store, "B0RANK03", &categoryID)

	t.Run("replace swaps the full ranking atomically", func(t *testing.T) {
		err := store.ReplaceHotRanking(ctx, day, categoryID, []*schema.HotProduct{
			buildTestHotRow(p1, 1, 92.5),
			buildTestHotRow(p2, 2, 88.0),
		})
		require.NoError(t, err)

		err = store.ReplaceHotRanking(ctx, day, categoryID, []*schema.HotProduct{
			buildTestHotRow(p2, 1, 95.0),
			buildTestHotRow(p3, 2, 90.0),
		})
		require.NoError(t, err)

		rows, err := store.GetHotRanking(ctx, day, categoryID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, p2, rows[0].ProductID)
		assert.Equal(t, p3, rows[1].ProductID)
		assert.Equal(t, 1, rows[0].RankInCategory)
		assert.Equal(t, 2, rows[1].RankInCategory)
	})

	t.Run("rankings on other days stay untouched", func(t *testing.T) {
		yesterday := day.AddDate(0, 0, -1)
		err := store.ReplaceHotRanking(ctx, yesterday, categoryID, []*schema.HotProduct{
			buildTestHotRow(p1, 1, 80.0),
		})
		require.NoError(t, err)

		err = store.ReplaceHotRanking(ctx, day, categoryID, []*schema.HotProduct{
			buildTestHotRow(p1, 1, 85.0),
		})
		require.NoError(t, err)

		rows, err := store.GetHotRanking(ctx, yesterday, categoryID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("failed insert leaves the previous ranking intact", func(t *testing.T) {
		err := store.ReplaceHotRanking(ctx, day, categoryID, []*schema.HotProduct{
			buildTestHotRow(p1, 1, 92.5),
			buildTestHotRow(p2, 2, 88.0),
		})
		require.NoError(t, err)

		// Two rows claiming rank 1 violate the (date, category, rank) unique
		// index, so the delete half must roll back with the insert
		err = store.ReplaceHotRanking(ctx, day, categoryID, []*schema.HotProduct{
			buildTestHotRow(p2, 1, 95.0),
			buildTestHotRow(p3, 1, 90.0),
		})
		require.Error(t, err)

		rows, err := store.GetHotRanking(ctx, day, categoryID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, p1, rows[0].ProductID)
		assert.Equal(t, p2, rows[1].ProductID)
		assert.Equal(t, 1, rows[0].RankInCategory)
		assert.Equal(t, 2, rows[1].RankInCategory)
	})
}

func testCountRankingAppearances(t *testing.T, store Store) {
	ctx := context.Background()
	categoryID := mustCreateCategory(t, store, "Electronics")
	day := DateOnly(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))

	p1 := mustCreateProduct(t, store, "B0DAYS01", &categoryID)
	p2 := mustCreateProduct(t, store, "B0DAYS02", &categoryID)

	// p1 appeared the last three days, p2 only yesterday
	for i := 1; i <= 3; i++ {
		rows := []*schema.HotProduct{buildTestHotRow(p1, 1, 90.0)}
		if i == 1 {
			rows = append(rows, buildTestHotRow(p2, 2, 85.0))
		}
		require.NoError(t, store.ReplaceHotRanking(ctx, day.AddDate(0, 0, -i), categoryID, rows))
	}

	counts, err := store.CountRankingAppearances(ctx, categoryID, []int64{p1, p2},
		day.AddDate(0, 0, -6), day.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, 3, counts[p1])
	assert.Equal(t, 1, counts[p2])
}

func testTopHotProducts(t *testing.T, store Store) {
	ctx := context.Background()
	electronics := mustCreateCategory(t, store, "Electronics")
	kitchen := mustCreateCategory(t, store, "Home & Kitchen")
	day := DateOnly(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))

	p1 := mustCreateProduct(t, store, "B0TOP01", &electronics)
	p2 := mustCreateProduct(t, store, "B0TOP02", &kitchen)
	p3 := mustCreateProduct(t, store, "B0TOP03", &electronics)

	require.NoError(t, store.ReplaceHotRanking(ctx, day, electronics, []*schema.HotProduct{
		buildTestHotRow(p1, 1, 95.0),
		buildTestHotRow(p3, 2, 70.0),
	}))
	require.NoError(t, store.ReplaceHotRanking(ctx, day, kitchen, []*schema.HotProduct{
		buildTestHotRow(p2, 1, 88.0),
	}))

	rows, err := store.TopHotProducts(ctx, day, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, p1, rows[0].ProductID)
	assert.Equal(t, p2, rows[1].ProductID)
}

func testProductHotHistory(t *testing.T, store Store) {
	ctx := context.Background()
	categoryID := mustCreateCategory(t, store, "Electronics")
	day := DateOnly(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	productID := mustCreateProduct(t, store, "B0HIST01", &categoryID)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.ReplaceHotRanking(ctx, day.AddDate(0, 0, -i), categoryID, []*schema.HotProduct{
			buildTestHotRow(productID, 1, 90.0),
		}))
	}

	rows, err := store.ProductHotHistory(ctx, productID, day.AddDate(0, 0, -1), day)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].RecommendDate.Before(rows[1].RecommendDate))
}

func testDeleteHotRankingsBefore(t *testing.T, store Store) {
	ctx := context.Background()
	categoryID := mustCreateCategory(t, store, "Electronics")
	day := DateOnly(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	productID := mustCreateProduct(t, store, "B0PRUNE01", &categoryID)

	for i := 0; i < 10; i++ {
		require.NoError(t, store.ReplaceHotRanking(ctx, day.AddDate(0, 0, -i), categoryID, []*schema.HotProduct{
			buildTestHotRow(productID, 1, 90.0),
		}))
	}

	deleted, err := store.DeleteHotRankingsBefore(ctx, day.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	rows, err := store.ProductHotHistory(ctx, productID, day.AddDate(0, 0, -30), day)
	require.NoError(t, err)
	assert.Len(t, rows, 8)
}

// =============================================================================
// Test: Search History
// =============================================================================

func testSearchHistory(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("record and prune", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			entry := &schema.SearchHistory{
				ID:          uuid.NewString(),
				Query:       fmt.Sprintf("query %d", i),
				ResultCount: i,
				CreatedAt:   time.Now().UTC().AddDate(0, 0, -i),
			}
			require.NoError(t, store.RecordSearch(ctx, entry))
		}

		deleted, err := store.DeleteSearchHistoryBefore(ctx, time.Now().UTC().AddDate(0, 0, -1))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})
}

// =============================================================================
// Suite Runner
// =============================================================================

// RunStoreTests runs the shared store suite against any Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertProduct", testUpsertProduct},
		{"ListProductsByCategory", testListProductsByCategory},
		{"UpsertPricePoint", testUpsertPricePoint},
		{"Categories", testCategories},
		{"ReplaceHotRanking", testReplaceHotRanking},
		{"CountRankingAppearances", testCountRankingAppearances},
		{"TopHotProducts", testTopHotProducts},
		{"ProductHotHistory", testProductHotHistory},
		{"DeleteHotRankingsBefore", testDeleteHotRankingsBefore},
		{"SearchHistory", testSearchHistory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
