package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which raw marketplace schema a product was scraped from
type Source string

const (
	// SourceMarketplace is the primary retail marketplace (prices already in USD)
	SourceMarketplace Source = "marketplace"
	// SourceWholesale is the secondary wholesale marketplace (prices in CNY)
	SourceWholesale Source = "wholesale"
)

// FreshnessStatus classifies how current a gateway-derived result is
type FreshnessStatus string

const (
	// FreshnessFresh means the data comes from a successful live fetch in this call
	FreshnessFresh FreshnessStatus = "FRESH"
	// FreshnessStale means the data is a last-known-good copy from a prior fetch
	FreshnessStale FreshnessStatus = "STALE"
	// FreshnessEmpty means no data is available at all
	FreshnessEmpty FreshnessStatus = "EMPTY"
)

// Freshness is attached to every fallback-gateway result. Unavailability of the
// upstream source is expressed here, never as an error.
type Freshness struct {
	Status    FreshnessStatus `json:"status"`
	FetchedAt *time.Time      `json:"fetched_at,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// Fresh marks data obtained from a successful live fetch at the given time
func Fresh(at time.Time) Freshness {
	return Freshness{Status: FreshnessFresh, FetchedAt: &at}
}

// Stale marks last-known-good data with its original fetch time
func Stale(at time.Time, message string) Freshness {
	if message == "" {
		message = "data served from cache and may be out of date"
	}
	return Freshness{Status: FreshnessStale, FetchedAt: &at, Message: message}
}

// NoData marks the absence of both live and cached data
func NoData() Freshness {
	return Freshness{Status: FreshnessEmpty, Message: "no data available"}
}

func (f Freshness) IsFresh() bool { return f.Status == FreshnessFresh }
func (f Freshness) IsStale() bool { return f.Status == FreshnessStale }
func (f Freshness) IsEmpty() bool { return f.Status == FreshnessEmpty }

// Product is the canonical product entity all raw schemas normalize into.
// CurrentPrice is always in the canonical currency (USD).
type Product struct {
	ID           int64           `json:"id"`
	ExternalID   string          `json:"external_id"`
	Source       Source          `json:"source"`
	Title        string          `json:"title"`
	ImageURL     string          `json:"image_url"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	BSRRank      *int            `json:"bsr_rank,omitempty"`
	ReviewCount  *int            `json:"review_count,omitempty"`
	Rating       *float64        `json:"rating,omitempty"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// PricePoint is one observed price for a product on a given day.
// At most one point exists per (product, day).
type PricePoint struct {
	ProductID    int64           `json:"product_id"`
	RecordedDate time.Time       `json:"recorded_date"`
	Price        decimal.Decimal `json:"price"`
}

// HotProductScore is one row of a per-category, per-day ranking
type HotProductScore struct {
	ProductID      int64           `json:"product_id"`
	CategoryID     int64           `json:"category_id"`
	RecommendDate  time.Time       `json:"recommend_date"`
	HotScore       decimal.Decimal `json:"hot_score"`
	RankInCategory int             `json:"rank_in_category"`
	DaysOnList     int             `json:"days_on_list"`
	RankChange     int             `json:"rank_change"`
	Recommendation string          `json:"recommendation"`
	Reasons        []string        `json:"reasons,omitempty"`
}

// Category is one entry of the supported category catalog
type Category struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ExternalID string `json:"external_id,omitempty"`
	GroupName  string `json:"group_name,omitempty"`
}

// QueryIntent is the output of the query-intent analyzer collaborator
type QueryIntent struct {
	Keywords    []string         `json:"keywords"`
	CategoryIDs []int64          `json:"category_ids"`
	PriceMin    *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax    *decimal.Decimal `json:"price_max,omitempty"`
	MinRating   *float64         `json:"min_rating,omitempty"`
	Summary     string           `json:"summary"`
}

// SearchRequest carries the caller's query and explicit filters. Explicit
// filters always take precedence over AI-suggested ones.
type SearchRequest struct {
	Query      string           `json:"query"`
	CategoryID *int64           `json:"category_id,omitempty"`
	PriceMin   *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax   *decimal.Decimal `json:"price_max,omitempty"`
	MinRating  *float64         `json:"min_rating,omitempty"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

// SearchResult is the response shape surfaced to callers
type SearchResult struct {
	Products  []Product `json:"products"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	HasMore   bool      `json:"has_more"`
	AISummary string    `json:"ai_summary,omitempty"`
	Freshness Freshness `json:"data_freshness"`
}
