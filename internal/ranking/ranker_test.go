package ranking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/mocks"
	"github.com/flashsell/flashsell/internal/ranking"
	"github.com/flashsell/flashsell/internal/store/schema"
)

func candidate(id int64, bsr, reviews int, rating float64) *schema.Product {
	return &schema.Product{
		ID:           id,
		Source:       string(domain.SourceMarketplace),
		ExternalID:   "B00TEST",
		Title:        "Test Product",
		CurrentPrice: decimal.NewFromFloat(19.99),
		BSRRank:      &bsr,
		ReviewCount:  &reviews,
		Rating:       &rating,
	}
}

func scoreByProduct(scores map[int64]float64) func(context.Context, *domain.Product) (ranking.Score, error) {
	return func(_ context.Context, p *domain.Product) (ranking.Score, error) {
		return ranking.Score{
			HotScore:       decimal.NewFromFloat(scores[p.ID]),
			Recommendation: "solid pick",
			Reasons:        []string{"test signal"},
		}, nil
	}
}

func TestRanker_RankCategory_TieBreakByBSR(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	model := mocks.NewMockScoringModel(ctrl)
	ranker := ranking.NewRanker(st, model, adapter.NewJSON(), 20, 0)

	ctx := context.Background()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	categoryID := int64(1)

	// P1 and P2 tie on score; P2 wins on the lower best-seller rank
	p1 := candidate(1, 500, 1000, 4.5)
	p2 := candidate(2, 50, 1000, 4.5)
	p3 := candidate(3, 5000, 200, 4.0)

	st.EXPECT().ListProductsByCategory(ctx, categoryID).Return([]*schema.Product{p1, p2, p3}, nil)
	model.EXPECT().Score(ctx, gomock.Any()).
		DoAndReturn(scoreByProduct(map[int64]float64{1: 90, 2: 90, 3: 80})).
		Times(3)
	st.EXPECT().GetHotRanking(ctx, day.AddDate(0, 0, -1), categoryID).Return(nil, nil)
	st.EXPECT().CountRankingAppearances(ctx, categoryID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[int64]int{}, nil)
	st.EXPECT().ReplaceHotRanking(ctx, day, categoryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, _ int64, rows []*schema.HotProduct) error {
			require.Len(t, rows, 3)
			assert.Equal(t, int64(2), rows[0].ProductID)
			assert.Equal(t, int64(1), rows[1].ProductID)
			assert.Equal(t, int64(3), rows[2].ProductID)
			for i, row := range rows {
				assert.Equal(t, i+1, row.RankInCategory)
			}
			return nil
		})

	require.NoError(t, ranker.RankCategory(ctx, day, categoryID))
}

func TestRanker_RankCategory_RankChangeAndDaysOnList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	model := mocks.NewMockScoringModel(ctrl)
	ranker := ranking.NewRanker(st, model, adapter.NewJSON(), 20, 0)

	ctx := context.Background()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	categoryID := int64(1)

	// Yesterday ranked A(10):1, B(11):2, C(12):3. Today A is gone and D(13)
	// is a new entrant, so B and C each climb one spot and D starts at 0.
	b := candidate(11, 100, 5000, 4.7)
	c := candidate(12, 300, 2000, 4.4)
	d := candidate(13, 900, 800, 4.1)

	st.EXPECT().ListProductsByCategory(ctx, categoryID).Return([]*schema.Product{b, c, d}, nil)
	model.EXPECT().Score(ctx, gomock.Any()).
		DoAndReturn(scoreByProduct(map[int64]float64{11: 95, 12: 85, 13: 70})).
		Times(3)
	st.EXPECT().GetHotRanking(ctx, day.AddDate(0, 0, -1), categoryID).Return([]*schema.HotProduct{
		{ProductID: 10, RankInCategory: 1},
		{ProductID: 11, RankInCategory: 2},
		{ProductID: 12, RankInCategory: 3},
	}, nil)
	st.EXPECT().CountRankingAppearances(ctx, categoryID, []int64{11, 12, 13},
		day.AddDate(0, 0, -6), day.AddDate(0, 0, -1)).
		Return(map[int64]int{11: 3, 12: 1}, nil)
	st.EXPECT().ReplaceHotRanking(ctx, day, categoryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, _ int64, rows []*schema.HotProduct) error {
			require.Len(t, rows, 3)

			assert.Equal(t, int64(11), rows[0].ProductID)
			assert.Equal(t, 1, rows[0].RankChange)
			assert.Equal(t, 4, rows[0].DaysOnList)

			assert.Equal(t, int64(12), rows[1].ProductID)
			assert.Equal(t, 1, rows[1].RankChange)
			assert.Equal(t, 2, rows[1].DaysOnList)

			assert.Equal(t, int64(13), rows[2].ProductID)
			assert.Equal(t, 0, rows[2].RankChange)
			assert.Equal(t, 1, rows[2].DaysOnList)
			return nil
		})

	require.NoError(t, ranker.RankCategory(ctx, day, categoryID))
}

func TestRanker_RankCategory_ConfiguredHistoryWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	model := mocks.NewMockScoringModel(ctrl)
	ranker := ranking.NewRanker(st, model, adapter.NewJSON(), 20, 14*24*time.Hour)

	ctx := context.Background()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	categoryID := int64(1)

	p := candidate(1, 100, 5000, 4.7)

	st.EXPECT().ListProductsByCategory(ctx, categoryID).Return([]*schema.Product{p}, nil)
	model.EXPECT().Score(ctx, gomock.Any()).
		DoAndReturn(scoreByProduct(map[int64]float64{1: 95}))
	st.EXPECT().GetHotRanking(ctx, day.AddDate(0, 0, -1), categoryID).Return(nil, nil)
	// A 14-day window counts appearances over the trailing 13 days
	st.EXPECT().CountRankingAppearances(ctx, categoryID, []int64{1},
		day.AddDate(0, 0, -13), day.AddDate(0, 0, -1)).
		Return(map[int64]int{1: 9}, nil)
	st.EXPECT().ReplaceHotRanking(ctx, day, categoryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, _ int64, rows []*schema.HotProduct) error {
			require.Len(t, rows, 1)
			assert.Equal(t, 10, rows[0].DaysOnList)
			return nil
		})

	require.NoError(t, ranker.RankCategory(ctx, day, categoryID))
}

func TestRanker_RankCategory_QualificationGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	model := mocks.NewMockScoringModel(ctrl)
	ranker := ranking.NewRanker(st, model, adapter.NewJSON(), 20, 0)

	ctx := context.Background()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	categoryID := int64(1)

	qualified := candidate(1, 100, 500, 4.5)
	noBSR := candidate(2, 0, 500, 4.5)
	noReviews := candidate(3, 100, 0, 4.5)
	lowRating := candidate(4, 100, 500, 2.9)
	missingSignals := &schema.Product{ID: 5, Source: string(domain.SourceMarketplace), ExternalID: "B00X", Title: "Bare"}

	st.EXPECT().ListProductsByCategory(ctx, categoryID).
		Return([]*schema.Product{qualified, noBSR, noReviews, lowRating, missingSignals}, nil)
	// Only the qualified product ever reaches the model
	model.EXPECT().Score(ctx, gomock.Any()).
		DoAndReturn(scoreByProduct(map[int64]float64{1: 88})).
		Times(1)
	st.EXPECT().GetHotRanking(ctx, day.AddDate(0, 0, -1), categoryID).Return(nil, nil)
	st.EXPECT().CountRankingAppearances(ctx, categoryID, []int64{1}, gomock.Any(), gomock.Any()).
		Return(map[int64]int{}, nil)
	st.EXPECT().ReplaceHotRanking(ctx, day, categoryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, _ int64, rows []*schema.HotProduct) error {
			require.Len(t, rows, 1)
			assert.Equal(t, int64(1), rows[0].ProductID)
			return nil
		})

	require.NoError(t, ranker.RankCategory(ctx, day, categoryID))
}

func TestRanker_RankCategory_TruncatesToTopN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	model := mocks.NewMockScoringModel(ctrl)
	ranker := ranking.NewRanker(st, model, adapter.NewJSON(), 2, 0)

	ctx := context.Background()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	categoryID := int64(1)

	st.EXPECT().ListProductsByCategory(ctx, categoryID).Return([]*schema.Product{
		candidate(1, 10, 100, 4.0),
		candidate(2, 20, 100, 4.0),
		candidate(3, 30, 100, 4.0),
	}, nil)
	model.EXPECT().Score(ctx, gomock.Any()).
		DoAndReturn(scoreByProduct(map[int64]float64{1: 90, 2: 80, 3: 70})).
		Times(3)
	st.EXPECT().GetHotRanking(ctx, day.AddDate(0, 0, -1), categoryID).Return(nil, nil)
	st.EXPECT().CountRankingAppearances(ctx, categoryID, []int64{1, 2}, gomock.Any(), gomock.Any()).
		Return(map[int64]int{}, nil)
	st.EXPECT().ReplaceHotRanking(ctx, day, categoryID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, _ int64, rows []*schema.HotProduct) error {
			require.Len(t, rows, 2)
			assert.Equal(t, 1, rows[0].RankInCategory)
			assert.Equal(t, 2, rows[1].RankInCategory)
			return nil
		})

	require.NoError(t, ranker.RankCategory(ctx, day, categoryID))
}

func TestRanker_RankCategory_ReentrancyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	model := mocks.NewMockScoringModel(ctrl)
	ranker := ranking.NewRanker(st, model, adapter.NewJSON(), 20, 0)

	ctx := context.Background()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	categoryID := int64(1)

	st.EXPECT().ListProductsByCategory(ctx, categoryID).
		Return([]*schema.Product{candidate(1, 100, 500, 4.5)}, nil)
	// A regeneration already holding the key makes a second attempt bail out
	model.EXPECT().Score(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *domain.Product) (ranking.Score, error) {
			err := ranker.RankCategory(ctx, day, categoryID)
			assert.ErrorIs(t, err, domain.ErrRankingInProgress)
			return ranking.Score{HotScore: decimal.NewFromInt(50)}, nil
		})
	st.EXPECT().GetHotRanking(ctx, day.AddDate(0, 0, -1), categoryID).Return(nil, nil)
	st.EXPECT().CountRankingAppearances(ctx, categoryID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[int64]int{}, nil)
	st.EXPECT().ReplaceHotRanking(ctx, day, categoryID, gomock.Any()).Return(nil)

	require.NoError(t, ranker.RankCategory(ctx, day, categoryID))
}

func TestRanker_RankCategory_ReleasesInflightLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	model := mocks.NewMockScoringModel(ctrl)
	ranker := ranking.NewRanker(st, model, adapter.NewJSON(), 20, 0)

	ctx := context.Background()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	categoryID := int64(1)

	t.Run("after a completed run", func(t *testing.T) {
		st.EXPECT().ListProductsByCategory(ctx, categoryID).
			Return([]*schema.Product{candidate(1, 100, 500, 4.5)}, nil)
		model.EXPECT().Score(ctx, gomock.Any()).
			DoAndReturn(scoreByProduct(map[int64]float64{1: 80}))
		st.EXPECT().GetHotRanking(ctx, day.AddDate(0, 0, -1), categoryID).Return(nil, nil)
		st.EXPECT().CountRankingAppearances(ctx, categoryID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[int64]int{}, nil)
		st.EXPECT().ReplaceHotRanking(ctx, day, categoryID, gomock.Any()).Return(nil)

		require.NoError(t, ranker.RankCategory(ctx, day, categoryID))
		assert.Equal(t, 0, ranker.InflightLocks())
	})

	t.Run("after a failed run", func(t *testing.T) {
		st.EXPECT().ListProductsByCategory(ctx, categoryID).
			Return(nil, errors.New("connection reset"))

		require.Error(t, ranker.RankCategory(ctx, day, categoryID))
		assert.Equal(t, 0, ranker.InflightLocks())
	})
}

func TestRanker_GetRanking_RoundTripsReasons(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	model := mocks.NewMockScoringModel(ctrl)
	ranker := ranking.NewRanker(st, model, adapter.NewJSON(), 20, 0)

	ctx := context.Background()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	st.EXPECT().GetHotRanking(ctx, day, int64(1)).Return([]*schema.HotProduct{
		{
			ProductID:      7,
			CategoryID:     1,
			RecommendDate:  day,
			HotScore:       decimal.NewFromFloat(91.5),
			RankInCategory: 1,
			DaysOnList:     3,
			RankChange:     2,
			Recommendation: "strong pick",
			Reasons:        []byte(`["strong best-seller rank #42"]`),
		},
	}, nil)

	scores, err := ranker.GetRanking(ctx, day, 1)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, int64(7), scores[0].ProductID)
	assert.Equal(t, []string{"strong best-seller rank #42"}, scores[0].Reasons)
	assert.True(t, scores[0].HotScore.Equal(decimal.NewFromFloat(91.5)))
}
