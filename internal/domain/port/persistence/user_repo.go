package persistence

import (
	"context"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Create stores a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by email (stored lowercased)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user
	Update(ctx context.Context, user *entity.User) error

	// List returns all users
	List(ctx context.Context) ([]*entity.User, error)

	// Engagement returns account-activity counts excluding admin accounts.
	// monthStart is the lower bound for the new-this-month count.
	Engagement(ctx context.Context, monthStart time.Time) (*entity.UserEngagement, error)
}
