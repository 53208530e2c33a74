package persistence

import (
	"context"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// TransactionFilter narrows transaction listings. Zero values mean "no
// filter"; an empty UserID selects every user (admin listings).
type TransactionFilter struct {
	UserID     string
	CategoryID string
	Type       entity.CategoryType
	From       *time.Time
	To         *time.Time
	Limit      int
}

// TransactionRepository defines persistence and aggregation operations for
// transactions
type TransactionRepository interface {
	// Create stores a new transaction
	Create(ctx context.Context, tx *entity.Transaction) error

	// GetByID retrieves a transaction by ID
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// Update persists changes to an existing transaction
	Update(ctx context.Context, tx *entity.Transaction) error

	// Delete removes a transaction
	Delete(ctx context.Context, id string) error

	// List returns transactions matching the filter, newest first
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// SumByType sums amounts grouped by transaction type
	SumByType(ctx context.Context, filter TransactionFilter) (entity.Summary, error)

	// MonthlyTotals groups amounts by (year, month, type). Months with no
	// transactions are absent from the result. Chronological order.
	MonthlyTotals(ctx context.Context, filter TransactionFilter) ([]entity.MonthlyTotal, error)

	// CategoryTotals sums amounts per category joined to the category name,
	// descending by total. A missing category resolves to fallbackName.
	CategoryTotals(ctx context.Context, filter TransactionFilter, fallbackName string) ([]entity.CategoryTotal, error)

	// TopCategories returns the limit highest-total categories across the
	// filtered set, all types included
	TopCategories(ctx context.Context, filter TransactionFilter, limit int) ([]entity.CategoryTotal, error)

	// SumForBudgetKey sums the amounts of the transactions matching a budget
	// key. This is the ground truth the spent counter is reconciled against.
	SumForBudgetKey(ctx context.Context, key entity.BudgetKey) (float64, error)
}
