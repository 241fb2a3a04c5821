package search

import (
	"bytes"
	"context"
	"fmt"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/domain"
)

// IntentAnalyzer extracts structured search intent from a free-text query
//
//go:generate mockgen -source=intent.go -destination=../mocks/intent_analyzer.go -package=mocks -mock_names=IntentAnalyzer=MockIntentAnalyzer
type IntentAnalyzer interface {
	Analyze(ctx context.Context, query string) (*domain.QueryIntent, error)
}

type intentRequest struct {
	Model string `json:"model"`
	Query string `json:"query"`
}

type intentResponse struct {
	Intent domain.QueryIntent `json:"intent"`
	Errors []string           `json:"errors,omitempty"`
}

// HTTPIntentAnalyzer calls an external intent extraction API
type HTTPIntentAnalyzer struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
	model      string
	json       adapter.JSON
}

// NewHTTPIntentAnalyzer creates an analyzer backed by the configured API
func NewHTTPIntentAnalyzer(httpClient adapter.HTTPClient, apiURL, apiKey, model string, json adapter.JSON) IntentAnalyzer {
	return &HTTPIntentAnalyzer{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		json:       json,
	}
}

func (a *HTTPIntentAnalyzer) Analyze(ctx context.Context, query string) (*domain.QueryIntent, error) {
	payload, err := a.json.Marshal(intentRequest{Model: a.model, Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intent request: %w", err)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + a.apiKey,
	}
	respBody, err := a.httpClient.Post(ctx, a.apiURL+"/v1/intent", headers, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to call intent API: %w", err)
	}

	var response intentResponse
	if err := a.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intent response: %w", err)
	}
	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("intent API errors: %v", response.Errors)
	}

	return &response.Intent, nil
}
