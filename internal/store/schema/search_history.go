package schema

import "time"

// SearchHistory represents the search_history table. Rows are written
// best-effort from the search path and never block a response.
type SearchHistory struct {
	// ID is a caller-generated UUID
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Query is the raw free-text query as entered
	Query string `gorm:"column:query;not null;type:text"`
	// ResultCount is the total matching products before pagination
	ResultCount int `gorm:"column:result_count;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();index"`
}

// TableName specifies the table name for the SearchHistory model
func (SearchHistory) TableName() string {
	return "search_history"
}
