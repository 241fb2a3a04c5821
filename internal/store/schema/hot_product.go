package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// HotProduct represents the hot_products table - one row of a per-category,
// per-day ranking. Rows for a given (recommend_date, category_id) are always
// replaced as a whole inside one transaction, never partially overwritten.
type HotProduct struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProductID references the ranked product
	ProductID int64 `gorm:"column:product_id;not null;index"`
	// CategoryID is the category this ranking belongs to
	CategoryID int64 `gorm:"column:category_id;not null;uniqueIndex:idx_hot_products_date_category_rank,priority:2;index:idx_hot_products_category_date,priority:1"`
	// RecommendDate is the ranking day (date only)
	RecommendDate time.Time `gorm:"column:recommend_date;not null;type:date;uniqueIndex:idx_hot_products_date_category_rank,priority:1;index:idx_hot_products_category_date,priority:2"`
	// HotScore is the bounded [0,100] score from the scoring model
	HotScore decimal.Decimal `gorm:"column:hot_score;not null;type:numeric(5,2)"`
	// RankInCategory is the 1-based position within (recommend_date, category_id)
	RankInCategory int `gorm:"column:rank_in_category;not null;uniqueIndex:idx_hot_products_date_category_rank,priority:3"`
	// DaysOnList counts appearances in this category's rankings over a trailing 7-day window
	DaysOnList int `gorm:"column:days_on_list;not null;default:0"`
	// RankChange is previousDayRank - currentRank; 0 for new entrants
	RankChange int `gorm:"column:rank_change;not null;default:0"`
	// Recommendation is the short recommendation text from the scoring model
	Recommendation string `gorm:"column:recommendation;type:text"`
	// Reasons holds the scoring model's reason list as JSON
	Reasons datatypes.JSON `gorm:"column:reasons;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the HotProduct model
func (HotProduct) TableName() string {
	return "hot_products"
}
