package model

import (
	"time"
)

// Budget represents the database model for budgets. The compound unique
// index enforces one budget per (user, category, month, year).
type Budget struct {
	ID         string    `gorm:"primaryKey;size:36"`
	UserID     string    `gorm:"not null;size:36;uniqueIndex:idx_budgets_key"`
	CategoryID string    `gorm:"not null;size:36;uniqueIndex:idx_budgets_key"`
	Amount     float64   `gorm:"not null"`
	Spent      float64   `gorm:"not null;default:0"`
	Month      int       `gorm:"not null;uniqueIndex:idx_budgets_key"`
	Year       int       `gorm:"not null;uniqueIndex:idx_budgets_key"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}
