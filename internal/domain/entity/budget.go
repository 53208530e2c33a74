package entity

import (
	"time"

	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/google/uuid"
)

// BudgetKey identifies the budget a transaction contributes to. Budgets are
// scoped per user, category and calendar month.
type BudgetKey struct {
	UserID     string
	CategoryID string
	Month      int
	Year       int
}

// Budget is a per-user, per-category, per-month spending limit. Spent is a
// denormalized sum of the matching transactions, adjusted in the same
// database transaction as every transaction write so it cannot drift.
type Budget struct {
	ID         string
	UserID     string
	CategoryID string
	Amount     float64
	Spent      float64
	Month      int
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a budget for the given key with zero spend.
func NewBudget(userID, categoryID string, amount float64, month, year int, now time.Time) (*Budget, error) {
	if userID == "" || categoryID == "" {
		return nil, errs.ErrMissingFields
	}
	if amount < 0 {
		return nil, errs.ErrNegativeAmount
	}
	if month < 1 || month > 12 {
		return nil, errs.ErrInvalidPeriod
	}
	if year < 2000 || year > 2100 {
		return nil, errs.ErrInvalidPeriod
	}

	return &Budget{
		ID:         uuid.NewString(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
		Year:       year,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Key returns the budget's match key.
func (b *Budget) Key() BudgetKey {
	return BudgetKey{
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Month:      b.Month,
		Year:       b.Year,
	}
}

// Remaining returns the unspent portion of the limit. Negative when the
// budget is exceeded.
func (b *Budget) Remaining() float64 {
	return b.Amount - b.Spent
}
