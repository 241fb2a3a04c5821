package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint represents the price_points table. One row exists per
// (product_id, recorded_date); re-fetches within a day update the price in place.
type PricePoint struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProductID references the canonical product
	ProductID int64 `gorm:"column:product_id;not null;uniqueIndex:idx_price_points_product_date,priority:1"`
	// RecordedDate is the day this price was observed (date only)
	RecordedDate time.Time `gorm:"column:recorded_date;not null;type:date;uniqueIndex:idx_price_points_product_date,priority:2"`
	// Price in the canonical currency
	Price decimal.Decimal `gorm:"column:price;not null;type:numeric(12,2)"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the PricePoint model
func (PricePoint) TableName() string {
	return "price_points"
}
