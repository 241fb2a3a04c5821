package normalize

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/flashsell/flashsell/internal/adapter"
	"github.com/flashsell/flashsell/internal/store"
)

// PriceRecorder appends daily price points. At most one point exists per
// product per day; recording again on the same day overwrites the price.
type PriceRecorder struct {
	store store.Store
	clock adapter.Clock
}

func NewPriceRecorder(s store.Store, clock adapter.Clock) *PriceRecorder {
	return &PriceRecorder{store: s, clock: clock}
}

// Record writes today's price point for productID
func (r *PriceRecorder) Record(ctx context.Context, productID int64, price decimal.Decimal) error {
	if err := r.store.UpsertPricePoint(ctx, productID, r.clock.Now(), price); err != nil {
		return fmt.Errorf("failed to record price point: %w", err)
	}
	return nil
}
