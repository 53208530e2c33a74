package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across multiple repositories inside one
// database transaction. Transaction mutations and their budget adjustments
// commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Transactions returns a transaction repository bound to the current
	// transaction
	Transactions(ctx context.Context) TransactionRepository

	// Budgets returns a budget repository bound to the current transaction
	Budgets(ctx context.Context) BudgetRepository
}
