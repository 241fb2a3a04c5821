package schema

import "time"

// Category represents the categories table - the supported category catalog
type Category struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name, unique across the catalog
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// ExternalID is the marketplace-side category identifier, when known
	ExternalID string `gorm:"column:external_id;type:text;index"`
	// GroupName is the coarse grouping the category belongs to
	GroupName string `gorm:"column:group_name;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
