package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID         string    `gorm:"primaryKey;size:36"`
	UserID     string    `gorm:"not null;size:36;index"`
	CategoryID string    `gorm:"not null;size:36;index"`
	Type       string    `gorm:"not null;size:20;index"`
	Amount     float64   `gorm:"not null"`
	Date       time.Time `gorm:"not null;index"`
	Note       string    `gorm:"type:text"`
	Merchant   string    `gorm:"size:255"`
	RawText    string    `gorm:"type:text"`
	AICategory string    `gorm:"size:100"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
