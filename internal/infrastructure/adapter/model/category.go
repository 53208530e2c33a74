package model

import (
	"time"
)

// Category represents the database model for categories. UserID is null for
// the global defaults.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    *string   `gorm:"size:36;index;uniqueIndex:idx_categories_user_name,where:user_id IS NOT NULL"`
	Name      string    `gorm:"not null;size:100;uniqueIndex:idx_categories_user_name,where:user_id IS NOT NULL"`
	Type      string    `gorm:"not null;size:20"`
	Icon      string    `gorm:"not null;size:50"`
	Color     string    `gorm:"not null;size:20"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
