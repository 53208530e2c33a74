package persistence

import (
	"context"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	// Create stores a new category
	Create(ctx context.Context, category *entity.Category) error

	// GetByID retrieves a category by ID
	GetByID(ctx context.Context, id string) (*entity.Category, error)

	// Update persists changes to an existing category
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category
	Delete(ctx context.Context, id string) error

	// ListVisible returns the global defaults plus the user's own categories
	ListVisible(ctx context.Context, userID string) ([]*entity.Category, error)

	// FindByName looks up a category by name for a user, case-insensitively,
	// searching their own categories and the defaults. Returns
	// ErrCategoryNotFound when no match exists.
	FindByName(ctx context.Context, userID, name string) (*entity.Category, error)
}
