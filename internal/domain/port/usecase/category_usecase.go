package usecase

import (
	"context"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// CreateCategoryInput carries the fields of a category creation request.
type CreateCategoryInput struct {
	Name  string
	Type  entity.CategoryType
	Icon  string
	Color string
}

// UpdateCategoryInput carries optional category edits. Nil fields are left
// untouched.
type UpdateCategoryInput struct {
	Name  *string
	Type  *entity.CategoryType
	Icon  *string
	Color *string
}

// CategoryUseCase handles category management. Default categories are
// immutable and undeletable for every caller.
type CategoryUseCase interface {
	// List returns the defaults plus the user's own categories
	List(ctx context.Context, userID string) ([]*entity.Category, error)

	// Create adds a user-owned category; duplicate names (case-insensitive)
	// conflict
	Create(ctx context.Context, userID string, input CreateCategoryInput) (*entity.Category, error)

	// Update edits a user-owned category
	Update(ctx context.Context, userID, id string, input UpdateCategoryInput) (*entity.Category, error)

	// Delete removes a user-owned category
	Delete(ctx context.Context, userID, id string) error
}
