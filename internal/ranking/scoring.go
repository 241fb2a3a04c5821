package ranking

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/flashsell/flashsell/internal/domain"
)

// Score is a scoring model's verdict on one product snapshot
type Score struct {
	// HotScore is bounded to [0,100]
	HotScore decimal.Decimal
	// Recommendation is a short human-readable verdict
	Recommendation string
	// Reasons lists the signals behind the score
	Reasons []string
}

// ScoringModel scores one product snapshot. Implementations must be
// deterministic: the same snapshot always yields the same score.
//
//go:generate mockgen -source=scoring.go -destination=../mocks/scoring_model.go -package=mocks -mock_names=ScoringModel=MockScoringModel
type ScoringModel interface {
	Score(ctx context.Context, product *domain.Product) (Score, error)
}

// heuristicModel is the default scoring policy. It splits the 100-point
// budget across best-seller rank (40), review volume (30) and rating (30)
// using fixed thresholds, so scores are stable run to run.
type heuristicModel struct{}

// NewHeuristicModel returns the default deterministic scoring policy
func NewHeuristicModel() ScoringModel {
	return heuristicModel{}
}

func (heuristicModel) Score(_ context.Context, product *domain.Product) (Score, error) {
	if product.BSRRank == nil || product.ReviewCount == nil || product.Rating == nil {
		return Score{}, fmt.Errorf("product %d missing scoring signals", product.ID)
	}

	bsrPoints := bsrPoints(*product.BSRRank)
	reviewPoints := reviewPoints(*product.ReviewCount)
	ratingPoints := decimal.NewFromFloat(*product.Rating).
		Div(decimal.NewFromInt(5)).
		Mul(decimal.NewFromInt(30)).
		Round(2)

	total := decimal.NewFromInt(int64(bsrPoints + reviewPoints)).Add(ratingPoints)

	var reasons []string
	if *product.BSRRank <= 1000 {
		reasons = append(reasons, fmt.Sprintf("strong best-seller rank #%d", *product.BSRRank))
	}
	if *product.ReviewCount >= 1000 {
		reasons = append(reasons, fmt.Sprintf("high review volume (%d reviews)", *product.ReviewCount))
	}
	if *product.Rating >= 4.5 {
		reasons = append(reasons, fmt.Sprintf("excellent rating %.1f", *product.Rating))
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "qualified with moderate signals")
	}

	return Score{
		HotScore:       total,
		Recommendation: recommendation(total),
		Reasons:        reasons,
	}, nil
}

func bsrPoints(bsr int) int {
	switch {
	case bsr <= 100:
		return 40
	case bsr <= 1000:
		return 32
	case bsr <= 10000:
		return 22
	case bsr <= 100000:
		return 12
	default:
		return 5
	}
}

func reviewPoints(reviews int) int {
	switch {
	case reviews >= 10000:
		return 30
	case reviews >= 1000:
		return 24
	case reviews >= 100:
		return 16
	case reviews >= 10:
		return 8
	default:
		return 4
	}
}

func recommendation(score decimal.Decimal) string {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return "strong pick: consistently high demand signals"
	case score.GreaterThanOrEqual(decimal.NewFromInt(60)):
		return "solid pick: healthy demand with some room to grow"
	case score.GreaterThanOrEqual(decimal.NewFromInt(40)):
		return "watch: demand signals are mixed"
	default:
		return "weak: consider only for niche assortments"
	}
}
