package usecase

import (
	"context"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// CreateTransactionInput carries the fields of a transaction creation
// request.
type CreateTransactionInput struct {
	CategoryID string
	Type       entity.CategoryType
	Amount     float64
	Date       time.Time
	Note       string
	Merchant   string
	RawText    string
	AICategory string
}

// UpdateTransactionInput carries optional transaction edits. Nil fields are
// left untouched.
type UpdateTransactionInput struct {
	CategoryID *string
	Amount     *float64
	Date       *time.Time
	Note       *string
	Merchant   *string
}

// ListTransactionsInput narrows transaction listings.
type ListTransactionsInput struct {
	CategoryID string
	Type       entity.CategoryType
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionUseCase handles transaction CRUD. Every mutation adjusts the
// matching budget's spent counter inside the same database transaction.
type TransactionUseCase interface {
	// Create logs a transaction and increments the matching budget
	Create(ctx context.Context, userID string, input CreateTransactionInput) (*entity.Transaction, error)

	// Get returns one of the user's transactions
	Get(ctx context.Context, userID, id string) (*entity.Transaction, error)

	// List returns the user's transactions matching the filter, newest first
	List(ctx context.Context, userID string, input ListTransactionsInput) ([]*entity.Transaction, error)

	// Latest returns the user's most recent transactions
	Latest(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)

	// ListAll returns transactions across all users (admin)
	ListAll(ctx context.Context, input ListTransactionsInput) ([]*entity.Transaction, error)

	// Update edits a transaction, moving its contribution between budgets
	// when the amount, category or date changes
	Update(ctx context.Context, userID, id string, input UpdateTransactionInput) (*entity.Transaction, error)

	// Delete removes a transaction and decrements the matching budget
	Delete(ctx context.Context, userID, id string) error
}
