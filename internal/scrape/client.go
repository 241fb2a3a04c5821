// Package scrape talks to the external scrape vendor. The vendor may fail or
// time out at any point; callers are expected to wrap every call in the
// fallback gateway rather than assume availability.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/ratelimit"
)

const VENDOR_NAME = "brightdata"

var ErrNoAPIKey = errors.New("no API key provided")

// Source defines the interface for scrape vendor operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/scrape_source.go -package=mocks -mock_names=Source=MockScrapeSource
type Source interface {
	// SearchMarketplace fetches marketplace records matching keyword
	SearchMarketplace(ctx context.Context, keyword string) ([]MarketplaceProduct, error)

	// SearchWholesale fetches wholesale records matching keyword
	SearchWholesale(ctx context.Context, keyword string) ([]WholesaleProduct, error)

	// GetMarketplaceProduct fetches a single marketplace record by external id
	GetMarketplaceProduct(ctx context.Context, externalID string) (*MarketplaceProduct, error)

	// GetWholesaleProduct fetches a single wholesale record by external id
	GetWholesaleProduct(ctx context.Context, externalID string) (*WholesaleProduct, error)
}

type searchResponse[T any] struct {
	Results []T      `json:"results"`
	Errors  []string `json:"errors,omitempty"`
}

type productResponse[T any] struct {
	Product T        `json:"product"`
	Errors  []string `json:"errors,omitempty"`
}

// BrightDataSource implements Source against the Bright Data dataset API
type BrightDataSource struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	apiURL     string
	apiKey     string
	json       adapter.JSON
}

// NewBrightDataSource creates a new Bright Data scrape source
func NewBrightDataSource(httpClient adapter.HTTPClient, limiter ratelimit.Limiter, apiURL, apiKey string, json adapter.JSON) Source {
	return &BrightDataSource{
		httpClient: httpClient,
		limiter:    limiter,
		apiURL:     apiURL,
		apiKey:     apiKey,
		json:       json,
	}
}

// SearchMarketplace fetches marketplace records matching keyword
func (s *BrightDataSource) SearchMarketplace(ctx context.Context, keyword string) ([]MarketplaceProduct, error) {
	endpoint := fmt.Sprintf("%s/datasets/amazon/search?keyword=%s", s.apiURL, url.QueryEscape(keyword))
	return fetchList[MarketplaceProduct](ctx, s, endpoint)
}

// SearchWholesale fetches wholesale records matching keyword
func (s *BrightDataSource) SearchWholesale(ctx context.Context, keyword string) ([]WholesaleProduct, error) {
	endpoint := fmt.Sprintf("%s/datasets/1688/search?keyword=%s", s.apiURL, url.QueryEscape(keyword))
	return fetchList[WholesaleProduct](ctx, s, endpoint)
}

// GetMarketplaceProduct fetches a single marketplace record by external id
func (s *BrightDataSource) GetMarketplaceProduct(ctx context.Context, externalID string) (*MarketplaceProduct, error) {
	endpoint := fmt.Sprintf("%s/datasets/amazon/products/%s", s.apiURL, url.PathEscape(externalID))
	return fetchOne[MarketplaceProduct](ctx, s, endpoint)
}

// GetWholesaleProduct fetches a single wholesale record by external id
func (s *BrightDataSource) GetWholesaleProduct(ctx context.Context, externalID string) (*WholesaleProduct, error) {
	endpoint := fmt.Sprintf("%s/datasets/1688/products/%s", s.apiURL, url.PathEscape(externalID))
	return fetchOne[WholesaleProduct](ctx, s, endpoint)
}

func (s *BrightDataSource) get(ctx context.Context, endpoint string) ([]byte, error) {
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	headers := map[string]string{
		"Authorization": "Bearer " + s.apiKey,
	}

	if s.limiter != nil {
		if err := s.limiter.Acquire(ctx); err != nil {
			return nil, err
		}
	}

	respBody, err := s.httpClient.GetBytes(ctx, endpoint, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call scrape API: %w", err)
	}
	return respBody, nil
}

func fetchList[T any](ctx context.Context, s *BrightDataSource, endpoint string) ([]T, error) {
	respBody, err := s.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response searchResponse[T]
	if err := s.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scrape response: %w", err)
	}
	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("scrape API errors: %v", response.Errors)
	}

	return response.Results, nil
}

func fetchOne[T any](ctx context.Context, s *BrightDataSource, endpoint string) (*T, error) {
	respBody, err := s.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response productResponse[T]
	if err := s.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scrape response: %w", err)
	}
	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("scrape API errors: %v", response.Errors)
	}

	return &response.Product, nil
}
