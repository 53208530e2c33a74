package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"not null;size:100"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	Roles        string    `gorm:"not null;size:50;default:USER"` // comma-separated role list
	Approved     string    `gorm:"not null;size:20;default:PENDING"`
	ProfileURL   string    `gorm:"size:512"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
