package model

import (
	"time"
)

// BookmarkModel is the GORM-specific struct for the 'location_bookmarks' table.
// created_at is filled by the database default and read back through RETURNING.
type BookmarkModel struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string     `gorm:"column:user_id;type:text;not null;index:idx_location_bookmarks_user_id"`
	Name      string     `gorm:"column:name;type:text;not null"`
	Notes     *string    `gorm:"column:notes;type:text"`
	Lat       float64    `gorm:"column:lat;type:double precision;not null"`
	Lng       float64    `gorm:"column:lng;type:double precision;not null"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime:false"`
	UpdatedAt *time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "location_bookmarks"
}
