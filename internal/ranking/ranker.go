// Package ranking regenerates the per-category hot product rankings.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/logger"
	"github.com/flashsell/flashsell/internal/store"
	"github.com/flashsell/flashsell/internal/store/schema"
)

const (
	// DefaultTopN is how many products a category ranking keeps
	DefaultTopN = 20

	// DefaultHistoryWindow is the trailing window for daysOnList, today included
	DefaultHistoryWindow = 7 * 24 * time.Hour

	minQualifyingRating = 3.0
)

// Ranker orchestrates qualification, scoring and persistence of the daily
// hot product ranking. Scoring itself is delegated to the ScoringModel.
type Ranker struct {
	store       store.Store
	scoring     ScoringModel
	json        adapter.JSON
	topN        int
	historyDays int

	// inflight serializes regeneration per (date, category) key
	inflight sync.Map
}

// NewRanker creates a ranker. A non-positive topN falls back to DefaultTopN,
// a non-positive historyWindow to DefaultHistoryWindow.
func NewRanker(s store.Store, scoring ScoringModel, json adapter.JSON, topN int, historyWindow time.Duration) *Ranker {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if historyWindow <= 0 {
		historyWindow = DefaultHistoryWindow
	}
	historyDays := int(historyWindow / (24 * time.Hour))
	if historyDays < 1 {
		historyDays = 1
	}
	return &Ranker{
		store:       s,
		scoring:     scoring,
		json:        json,
		topN:        topN,
		historyDays: historyDays,
	}
}

// scored pairs a candidate with its model verdict for sorting
type scored struct {
	product *schema.Product
	score   Score
}

// RankCategory regenerates the ranking for (date, categoryID). Concurrent
// regeneration of the same key returns ErrRankingInProgress; different keys
// run independently.
func (r *Ranker) RankCategory(ctx context.Context, date time.Time, categoryID int64) error {
	day := store.DateOnly(date)
	key := fmt.Sprintf("%s:%d", day.Format(time.DateOnly), categoryID)

	lock, _ := r.inflight.LoadOrStore(key, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	if !mu.TryLock() {
		return domain.ErrRankingInProgress
	}
	// The key changes daily, so a finished run's entry is dead weight
	defer func() {
		r.inflight.Delete(key)
		mu.Unlock()
	}()

	candidates, err := r.store.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}

	eligible := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		if !qualifies(candidate) {
			continue
		}
		product := toDomain(candidate)
		score, err := r.scoring.Score(ctx, &product)
		if err != nil {
			// A product the model cannot score drops out of this run
			logger.WarnCtx(ctx, "Scoring failed, skipping product",
				zap.Int64("product_id", candidate.ID),
				zap.Error(err),
			)
			continue
		}
		eligible = append(eligible, scored{product: candidate, score: score})
	}

	// hotScore desc, then BSR asc, then product id for a total order
	sort.Slice(eligible, func(i, j int) bool {
		if !eligible[i].score.HotScore.Equal(eligible[j].score.HotScore) {
			return eligible[i].score.HotScore.GreaterThan(eligible[j].score.HotScore)
		}
		if *eligible[i].product.BSRRank != *eligible[j].product.BSRRank {
			return *eligible[i].product.BSRRank < *eligible[j].product.BSRRank
		}
		return eligible[i].product.ID < eligible[j].product.ID
	})

	if len(eligible) > r.topN {
		eligible = eligible[:r.topN]
	}

	previousRanks, err := r.previousRanks(ctx, day, categoryID)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(eligible))
	for _, e := range eligible {
		ids = append(ids, e.product.ID)
	}
	appearances, err := r.store.CountRankingAppearances(ctx, categoryID, ids,
		day.AddDate(0, 0, -(r.historyDays-1)), day.AddDate(0, 0, -1))
	if err != nil {
		return fmt.Errorf("failed to count ranking appearances: %w", err)
	}

	rows := make([]*schema.HotProduct, 0, len(eligible))
	for i, e := range eligible {
		rank := i + 1
		rankChange := 0
		if prev, ok := previousRanks[e.product.ID]; ok {
			rankChange = prev - rank
		}

		reasons, err := r.json.Marshal(e.score.Reasons)
		if err != nil {
			return fmt.Errorf("failed to marshal score reasons: %w", err)
		}

		rows = append(rows, &schema.HotProduct{
			ProductID:      e.product.ID,
			CategoryID:     categoryID,
			RecommendDate:  day,
			HotScore:       e.score.HotScore,
			RankInCategory: rank,
			DaysOnList:     appearances[e.product.ID] + 1,
			RankChange:     rankChange,
			Recommendation: e.score.Recommendation,
			Reasons:        datatypes.JSON(reasons),
		})
	}

	if err := r.store.ReplaceHotRanking(ctx, day, categoryID, rows); err != nil {
		return fmt.Errorf("failed to replace ranking: %w", err)
	}

	logger.InfoCtx(ctx, "Ranking regenerated",
		zap.Int64("category_id", categoryID),
		zap.String("date", day.Format(time.DateOnly)),
		zap.Int("products", len(rows)),
	)
	return nil
}

// GetRanking returns the stored ranking for (date, categoryID) in rank order
func (r *Ranker) GetRanking(ctx context.Context, date time.Time, categoryID int64) ([]domain.HotProductScore, error) {
	rows, err := r.store.GetHotRanking(ctx, date, categoryID)
	if err != nil {
		return nil, err
	}
	return r.toScores(rows)
}

// TopOverall returns the highest-scored products across all categories for date
func (r *Ranker) TopOverall(ctx context.Context, date time.Time, limit int) ([]domain.HotProductScore, error) {
	if limit <= 0 {
		limit = r.topN
	}
	rows, err := r.store.TopHotProducts(ctx, date, limit)
	if err != nil {
		return nil, err
	}
	return r.toScores(rows)
}

// ProductHistory returns a product's ranking appearances within [from, to]
func (r *Ranker) ProductHistory(ctx context.Context, productID int64, from, to time.Time) ([]domain.HotProductScore, error) {
	rows, err := r.store.ProductHotHistory(ctx, productID, from, to)
	if err != nil {
		return nil, err
	}
	return r.toScores(rows)
}

func (r *Ranker) previousRanks(ctx context.Context, day time.Time, categoryID int64) (map[int64]int, error) {
	rows, err := r.store.GetHotRanking(ctx, day.AddDate(0, 0, -1), categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous ranking: %w", err)
	}
	ranks := make(map[int64]int, len(rows))
	for _, row := range rows {
		ranks[row.ProductID] = row.RankInCategory
	}
	return ranks, nil
}

func (r *Ranker) toScores(rows []*schema.HotProduct) ([]domain.HotProductScore, error) {
	scores := make([]domain.HotProductScore, 0, len(rows))
	for _, row := range rows {
		var reasons []string
		if len(row.Reasons) > 0 {
			if err := r.json.Unmarshal(row.Reasons, &reasons); err != nil {
				return nil, fmt.Errorf("failed to unmarshal score reasons: %w", err)
			}
		}
		scores = append(scores, domain.HotProductScore{
			ProductID:      row.ProductID,
			CategoryID:     row.CategoryID,
			RecommendDate:  row.RecommendDate,
			HotScore:       row.HotScore,
			RankInCategory: row.RankInCategory,
			DaysOnList:     row.DaysOnList,
			RankChange:     row.RankChange,
			Recommendation: row.Recommendation,
			Reasons:        reasons,
		})
	}
	return scores, nil
}

func qualifies(p *schema.Product) bool {
	return p.BSRRank != nil && *p.BSRRank > 0 &&
		p.ReviewCount != nil && *p.ReviewCount > 0 &&
		p.Rating != nil && *p.Rating >= minQualifyingRating
}

func toDomain(row *schema.Product) domain.Product {
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
