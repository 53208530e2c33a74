package usecase

import (
	"context"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// CreateBudgetInput carries the fields of a budget creation request.
type CreateBudgetInput struct {
	CategoryID string
	Amount     float64
	Month      int
	Year       int
}

// UpdateBudgetInput carries optional budget edits. Nil fields are left
// untouched.
type UpdateBudgetInput struct {
	CategoryID *string
	Amount     *float64
	Month      *int
	Year       *int
}

// BudgetUseCase handles budget management and spent reconciliation.
type BudgetUseCase interface {
	// Create adds a budget; its spent counter starts at the sum of the
	// already-matching transactions. A duplicate key conflicts.
	Create(ctx context.Context, userID string, input CreateBudgetInput) (*entity.Budget, error)

	// List returns the user's budgets, optionally filtered by period
	List(ctx context.Context, userID string, month, year int) ([]*entity.Budget, error)

	// Latest returns the user's most recently created budgets
	Latest(ctx context.Context, userID string, limit int) ([]*entity.Budget, error)

	// ListAll returns every budget (admin)
	ListAll(ctx context.Context) ([]*entity.Budget, error)

	// Update edits a budget. Moving it to a key held by another budget of
	// the same user conflicts; a key change recomputes spent from source.
	Update(ctx context.Context, userID, id string, input UpdateBudgetInput) (*entity.Budget, error)

	// Delete removes a budget
	Delete(ctx context.Context, userID, id string) error

	// Reconcile recomputes the spent counter from the matching transactions
	Reconcile(ctx context.Context, userID, id string) (*entity.Budget, error)
}
