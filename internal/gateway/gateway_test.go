package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/domain"
	"github.com/flashsell/flashsell/internal/gateway"
	"github.com/flashsell/flashsell/internal/mocks"
)

type payload struct {
	Items []string `json:"items"`
}

func TestGateway_Fetch_Fresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	clock := mocks.NewMockClock(ctrl)
	gw := gateway.New(cache, adapter.NewJSON(), clock, 24*time.Hour)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	clock.EXPECT().Now().Return(now)
	cache.EXPECT().
		Set(ctx, "brightdata:fallback:search:test", gomock.Any(), 24*time.Hour).
		Return(nil)

	result, err := gateway.Fetch(ctx, gw, "search:test", func(ctx context.Context) (payload, error) {
		return payload{Items: []string{"a", "b"}}, nil
	})
	require.NoError(t, err)

	assert.True(t, result.Freshness.IsFresh())
	require.NotNil(t, result.Freshness.FetchedAt)
	assert.Equal(t, now, *result.Freshness.FetchedAt)
	assert.Equal(t, []string{"a", "b"}, result.Data.Items)
}

func TestGateway_Fetch_StaleOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	clock := mocks.NewMockClock(ctrl)
	gw := gateway.New(cache, adapter.NewJSON(), clock, 24*time.Hour)

	ctx := context.Background()
	fetchedAt := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	snapshot := []byte(`{"data":{"items":["cached"]},"fetched_at":"2026-08-28T18:00:00Z"}`)

	cache.EXPECT().
		Get(ctx, "brightdata:fallback:search:test").
		Return(snapshot, true, nil)

	result, err := gateway.Fetch(ctx, gw, "search:test", func(ctx context.Context) (payload, error) {
		return payload{}, errors.New("vendor down")
	})
	require.NoError(t, err, "vendor failure must not surface as an error")

	assert.True(t, result.Freshness.IsStale())
	require.NotNil(t, result.Freshness.FetchedAt)
	assert.True(t, fetchedAt.Equal(*result.Freshness.FetchedAt))
	assert.NotEmpty(t, result.Freshness.Message)
	assert.Equal(t, []string{"cached"}, result.Data.Items)
}

func TestGateway_Fetch_EmptyWhenNoSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	clock := mocks.NewMockClock(ctrl)
	gw := gateway.New(cache, adapter.NewJSON(), clock, 24*time.Hour)

	ctx := context.Background()
	cache.EXPECT().
		Get(ctx, "brightdata:fallback:search:test").
		Return(nil, false, nil)

	result, err := gateway.Fetch(ctx, gw, "search:test", func(ctx context.Context) (payload, error) {
		return payload{}, errors.New("vendor down")
	})
	require.NoError(t, err)

	assert.True(t, result.Freshness.IsEmpty())
	assert.Equal(t, domain.FreshnessEmpty, result.Freshness.Status)
	assert.Empty(t, result.Data.Items)
}

func TestGateway_Fetch_CacheErrorDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	clock := mocks.NewMockClock(ctrl)
	gw := gateway.New(cache, adapter.NewJSON(), clock, 24*time.Hour)

	ctx := context.Background()
	cache.EXPECT().
		Get(ctx, "brightdata:fallback:search:test").
		Return(nil, false, errors.New("redis down"))

	result, err := gateway.Fetch(ctx, gw, "search:test", func(ctx context.Context) (payload, error) {
		return payload{}, errors.New("vendor down")
	})
	require.NoError(t, err)
	assert.True(t, result.Freshness.IsEmpty())
}

func TestGateway_Fetch_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	clock := mocks.NewMockClock(ctrl)
	gw := gateway.New(cache, adapter.NewJSON(), clock, 24*time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Fetch(ctx, gw, "search:test", func(ctx context.Context) (payload, error) {
		t.Fatal("fetch must not run after cancellation")
		return payload{}, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGateway_Fetch_FreshAfterSnapshotWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCache(ctrl)
	clock := mocks.NewMockClock(ctrl)
	gw := gateway.New(cache, adapter.NewJSON(), clock, 24*time.Hour)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	clock.EXPECT().Now().Return(now)
	cache.EXPECT().
		Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	result, err := gateway.Fetch(ctx, gw, "search:test", func(ctx context.Context) (payload, error) {
		return payload{Items: []string{"a"}}, nil
	})
	require.NoError(t, err)
	assert.True(t, result.Freshness.IsFresh())
}
