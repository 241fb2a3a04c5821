package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents the products table - the canonical product entity shared by
// every scrape source. Prices are stored in the canonical currency (USD).
type Product struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Source identifies the raw schema this product was normalized from (marketplace, wholesale)
	Source string `gorm:"column:source;not null;type:text;uniqueIndex:idx_products_source_external,priority:1"`
	// ExternalID is the marketplace identifier (ASIN for marketplace, offer id for wholesale)
	ExternalID string `gorm:"column:external_id;not null;type:text;uniqueIndex:idx_products_source_external,priority:2"`
	// Title is the product listing title
	Title string `gorm:"column:title;not null;type:text"`
	// ImageURL is the main listing image
	ImageURL string `gorm:"column:image_url;type:text"`
	// CurrentPrice is the latest observed price in the canonical currency
	CurrentPrice decimal.Decimal `gorm:"column:current_price;not null;type:numeric(12,2)"`
	// BSRRank is the marketplace best-seller rank, lower is more popular
	BSRRank *int `gorm:"column:bsr_rank"`
	// ReviewCount is the number of customer reviews
	ReviewCount *int `gorm:"column:review_count"`
	// Rating is the average customer rating (0-5)
	Rating *float64 `gorm:"column:rating"`
	// CategoryID is the mapped internal category, nil when unmapped
	CategoryID *int64 `gorm:"column:category_id;index"`
	// LastUpdated is the time of the most recent fresh fetch; drives staleness decisions
	LastUpdated time.Time `gorm:"column:last_updated;not null"`
	// CreatedAt is when this product was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	PricePoints []PricePoint `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	HotProducts []HotProduct `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
