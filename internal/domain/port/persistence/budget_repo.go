package persistence

import (
	"context"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// BudgetRepository defines persistence operations for budgets
type BudgetRepository interface {
	// Create stores a new budget. A duplicate (user, category, month, year)
	// key yields ErrDuplicateBudget.
	Create(ctx context.Context, budget *entity.Budget) error

	// GetByID retrieves a budget by ID
	GetByID(ctx context.Context, id string) (*entity.Budget, error)

	// GetByKey retrieves the budget matching a key, or ErrBudgetNotFound
	GetByKey(ctx context.Context, key entity.BudgetKey) (*entity.Budget, error)

	// Update persists changes to an existing budget
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget
	Delete(ctx context.Context, id string) error

	// ListByUser returns a user's budgets; month/year of 0 mean no period
	// filter
	ListByUser(ctx context.Context, userID string, month, year int) ([]*entity.Budget, error)

	// Latest returns the user's most recently created budgets
	Latest(ctx context.Context, userID string, limit int) ([]*entity.Budget, error)

	// ListAll returns every budget (admin view)
	ListAll(ctx context.Context) ([]*entity.Budget, error)

	// AddSpent atomically adds delta to the spent counter of the budget
	// matching the key. No matching budget is not an error: the amount is
	// simply unaccounted.
	AddSpent(ctx context.Context, key entity.BudgetKey, delta float64) error
}
