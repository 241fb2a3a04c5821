// Package product implements product acquisition and lookup on top of the
// fallback gateway. Fresh vendor data is persisted as it flows through;
// stale data is served but never written back.
package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/gateway"
	"github.com/flashsell/flashsell/internal/logger"
	"github.com/flashsell/flashsell/internal/normalize"
	"github.com/flashsell/flashsell/internal/scrape"
	"github.com/flashsell/flashsell/internal/store"
	"github.com/flashsell/flashsell/internal/store/schema"
)

// detailTTL is how long a stored product counts as current before a detail
// lookup triggers a vendor refresh
const detailTTL = time.Hour

// Service defines product acquisition and lookup operations
//
//go:generate mockgen -source=service.go -destination=../mocks/product_service.go -package=mocks -mock_names=Service=MockProductService
type Service interface {
	// SearchWithFallback fetches products for keyword from the given source,
	// falling back to the last-known-good snapshot when the vendor fails
	SearchWithFallback(ctx context.Context, keyword string, source domain.Source) ([]domain.Product, domain.Freshness, error)

	// GetDetail returns one product, refreshing from the vendor when the
	// stored copy is missing or older than an hour
	GetDetail(ctx context.Context, source domain.Source, externalID string) (*domain.Product, domain.Freshness, error)

	// GetPriceHistory returns daily price points for the last `days` days
	GetPriceHistory(ctx context.Context, productID int64, days int) ([]domain.PricePoint, error)
}

type service struct {
	source     scrape.Source
	gateway    *gateway.Gateway
	normalizer *normalize.Normalizer
	recorder   *normalize.PriceRecorder
	store      store.Store
	clock      adapter.Clock
}

// NewService creates a product service
func NewService(
	src scrape.Source,
	gw *gateway.Gateway,
	normalizer *normalize.Normalizer,
	recorder *normalize.PriceRecorder,
	s store.Store,
	clock adapter.Clock,
) Service {
	return &service{
		source:     src,
		gateway:    gw,
		normalizer: normalizer,
		recorder:   recorder,
		store:      s,
		clock:      clock,
	}
}

func (s *service) SearchWithFallback(ctx context.Context, keyword string, source domain.Source) ([]domain.Product, domain.Freshness, error) {
	key := fmt.Sprintf("search:%s:%s", source, normalizeKeyword(keyword))

	var products []domain.Product
	var result gateway.Result[[]domain.Product]
	var err error

	switch source {
	case domain.SourceWholesale:
		result, err = gateway.Fetch(ctx, s.gateway, key, func(ctx context.Context) ([]domain.Product, error) {
			raws, err := s.source.SearchWholesale(ctx, keyword)
			if err != nil {
				return nil, err
			}
			return s.normalizeWholesale(ctx, raws)
		})
	default:
		result, err = gateway.Fetch(ctx, s.gateway, key, func(ctx context.Context) ([]domain.Product, error) {
			raws, err := s.source.SearchMarketplace(ctx, keyword)
			if err != nil {
				return nil, err
			}
			return s.normalizeMarketplace(ctx, raws)
		})
	}
	if err != nil {
		return nil, domain.Freshness{}, err
	}
	products = result.Data

	if result.Freshness.IsFresh() {
		s.persist(ctx, products)
		products = s.withStoredIDs(ctx, products)
	}

	return products, result.Freshness, nil
}

func (s *service) GetDetail(ctx context.Context, source domain.Source, externalID string) (*domain.Product, domain.Freshness, error) {
	stored, err := s.store.GetProductByExternalID(ctx, string(source), externalID)
	if err != nil {
		return nil, domain.Freshness{}, err
	}
	if stored != nil && s.clock.Since(stored.LastUpdated) < detailTTL {
		product := fromSchema(stored)
		return &product, domain.Fresh(stored.LastUpdated), nil
	}

	key := fmt.Sprintf("product:%s:%s", source, externalID)
	result, err := gateway.Fetch(ctx, s.gateway, key, func(ctx context.Context) (domain.Product, error) {
		return s.fetchDetail(ctx, source, externalID)
	})
	if err != nil {
		return nil, domain.Freshness{}, err
	}

	if result.Freshness.IsEmpty() {
		// Vendor gone and no snapshot left, the stored row is still the
		// best answer we have
		if stored != nil {
			product := fromSchema(stored)
			return &product, domain.Stale(stored.LastUpdated, ""), nil
		}
		return nil, result.Freshness, domain.ErrProductNotFound
	}

	product := result.Data
	if result.Freshness.IsFresh() {
		s.persist(ctx, []domain.Product{product})
		refreshed := s.withStoredIDs(ctx, []domain.Product{product})
		product = refreshed[0]
	}

	return &product, result.Freshness, nil
}

func (s *service) GetPriceHistory(ctx context.Context, productID int64, days int) ([]domain.PricePoint, error) {
	if days <= 0 {
		days = 30
	}
	since := s.clock.Now().AddDate(0, 0, -days)

	rows, err := s.store.GetPriceHistory(ctx, productID, since)
	if err != nil {
		return nil, err
	}

	points := make([]domain.PricePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.PricePoint{
			ProductID:    row.ProductID,
			RecordedDate: row.RecordedDate,
			Price:        row.Price,
		})
	}
	return points, nil
}

func (s *service) fetchDetail(ctx context.Context, source domain.Source, externalID string) (domain.Product, error) {
	switch source {
	case domain.SourceWholesale:
		raw, err := s.source.GetWholesaleProduct(ctx, externalID)
		if err != nil {
			return domain.Product{}, err
		}
		product, err := s.normalizer.FromWholesale(ctx, raw)
		if err != nil {
			return domain.Product{}, err
		}
		return *product, nil
	default:
		raw, err := s.source.GetMarketplaceProduct(ctx, externalID)
		if err != nil {
			return domain.Product{}, err
		}
		product, err := s.normalizer.FromMarketplace(ctx, raw)
		if err != nil {
			return domain.Product{}, err
		}
		return *product, nil
	}
}

func (s *service) normalizeMarketplace(ctx context.Context, raws []scrape.MarketplaceProduct) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(raws))
	for i := range raws {
		product, err := s.normalizer.FromMarketplace(ctx, &raws[i])
		if err != nil {
			// Invalid records are skipped, not fatal to the batch
			logger.WarnCtx(ctx, "Skipping invalid marketplace record",
				zap.String("asin", raws[i].ASIN),
				zap.Error(err),
			)
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

func (s *service) normalizeWholesale(ctx context.Context, raws []scrape.WholesaleProduct) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(raws))
	for i := range raws {
		product, err := s.normalizer.FromWholesale(ctx, &raws[i])
		if err != nil {
			logger.WarnCtx(ctx, "Skipping invalid wholesale record",
				zap.String("offer_id", raws[i].OfferID),
				zap.Error(err),
			)
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

// persist upserts fresh products and records their daily price points.
// Persistence failures are logged rather than failing the read path.
func (s *service) persist(ctx context.Context, products []domain.Product) {
	for i := range products {
		row := toSchema(&products[i])
		if err := s.store.UpsertProduct(ctx, row); err != nil {
			logger.WarnCtx(ctx, "Failed to persist product",
				zap.String("external_id", products[i].ExternalID),
				zap.Error(err),
			)
			continue
		}
		if err := s.recorder.Record(ctx, row.ID, products[i].CurrentPrice); err != nil {
			logger.WarnCtx(ctx, "Failed to record price point",
				zap.Int64("product_id", row.ID),
				zap.Error(err),
			)
		}
	}
}

// withStoredIDs backfills internal ids after persistence so callers see the
// same identifiers the store does
func (s *service) withStoredIDs(ctx context.Context, products []domain.Product) []domain.Product {
	for i := range products {
		if products[i].ID != 0 {
			continue
		}
		stored, err := s.store.GetProductByExternalID(ctx, string(products[i].Source), products[i].ExternalID)
		if err != nil || stored == nil {
			continue
		}
		products[i].ID = stored.ID
	}
	return products
}

func normalizeKeyword(keyword string) string {
	return strings.ToLower(strings.Join(strings.Fields(keyword), " "))
}

func toSchema(p *domain.Product) *schema.Product {
	return &schema.Product{
		ID:           p.ID,
		ExternalID:   p.ExternalID,
		Source:       string(p.Source),
		Title:        p.Title,
		ImageURL:     p.ImageURL,
		CurrentPrice: p.CurrentPrice,
		BSRRank:      p.BSRRank,
		ReviewCount:  p.ReviewCount,
		Rating:       p.Rating,
		CategoryID:   p.CategoryID,
		LastUpdated:  p.LastUpdated,
	}
}

func fromSchema(row *schema.Product) domain.Product {
	return domain.Product{
		ID:           row.ID,
		ExternalID:   row.ExternalID,
		Source:       domain.Source(row.Source),
		Title:        row.Title,
		ImageURL:     row.ImageURL,
		CurrentPrice: row.CurrentPrice,
		BSRRank:      row.BSRRank,
		ReviewCount:  row.ReviewCount,
		Rating:       row.Rating,
		CategoryID:   row.CategoryID,
		LastUpdated:  row.LastUpdated,
	}
}
