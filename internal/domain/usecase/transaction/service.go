package transaction

import (
	"context"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
)

// Service implements the transaction use case. Every mutation runs the
// transaction write and its budget spent adjustments inside one unit of work,
// so the pair commits or rolls back together.
type Service struct {
	uow          persistence.UnitOfWork
	transactions persistence.TransactionRepository
	categories   persistence.CategoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a transaction service instance
func NewService(
	uow persistence.UnitOfWork,
	transactions persistence.TransactionRepository,
	categories persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.TransactionUseCase {
	return &Service{
		uow:          uow,
		transactions: transactions,
		categories:   categories,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// visibleCategory loads a category and checks the user may reference it.
func (s *Service) visibleCategory(ctx context.Context, userID, categoryID string) (*entity.Category, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !category.VisibleTo(userID) {
		return nil, errs.ErrCategoryNotFound
	}
	return category, nil
}

// Create logs a transaction and increments the matching budget's spent
// counter in the same database transaction.
func (s *Service) Create(ctx context.Context, userID string, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	if _, err := s.visibleCategory(ctx, userID, input.CategoryID); err != nil {
		return nil, err
	}

	tx, err := entity.NewTransaction(userID, input.CategoryID, input.Type, input.Amount, input.Date, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	tx.Note = input.Note
	tx.Merchant = input.Merchant
	tx.RawText = input.RawText
	tx.AICategory = input.AICategory

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.uow.Transactions(txCtx).Create(txCtx, tx); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	key := tx.BudgetKey()
	if err := s.uow.Budgets(txCtx).AddSpent(txCtx, key, tx.Amount); err != nil {
		_ = s.uow.Rollback(txCtx)
		recErr := &errs.ReconciliationError{
			TransactionID: tx.ID,
			UserID:        userID,
			CategoryID:    tx.CategoryID,
			Delta:         tx.Amount,
			Err:           err,
		}
		s.logger.Error("Budget reconciliation failed on create", recErr.LogFields())
		return nil, recErr
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        userID,
		"category_id":    tx.CategoryID,
		"type":           tx.Type,
		"amount":         tx.Amount,
	})
	return tx, nil
}

// Get returns one of the user's transactions
func (s *Service) Get(ctx context.Context, userID, id string) (*entity.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, errs.ErrNotOwner
	}
	return tx, nil
}

// List returns the user's transactions matching the filter, newest first
func (s *Service) List(ctx context.Context, userID string, input usecase.ListTransactionsInput) ([]*entity.Transaction, error) {
	return s.transactions.List(ctx, persistence.TransactionFilter{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		From:       input.StartDate,
		To:         input.EndDate,
	})
}

// Latest returns the user's most recent transactions
func (s *Service) Latest(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.transactions.List(ctx, persistence.TransactionFilter{
		UserID: userID,
		Limit:  limit,
	})
}

// ListAll returns transactions across all users (admin)
func (s *Service) ListAll(ctx context.Context, input usecase.ListTransactionsInput) ([]*entity.Transaction, error) {
	return s.transactions.List(ctx, persistence.TransactionFilter{
		CategoryID: input.CategoryID,
		Type:       input.Type,
		From:       input.StartDate,
		To:         input.EndDate,
	})
}

// Update edits a transaction. When the amount, category or date changes, the
// old contribution is subtracted from the previous matching budget and the
// new contribution added to the new one, all inside the same database
// transaction as the row update.
func (s *Service) Update(ctx context.Context, userID, id string, input usecase.UpdateTransactionInput) (*entity.Transaction, error) {
	tx, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	oldKey := tx.BudgetKey()
	oldAmount := tx.Amount

	if input.CategoryID != nil {
		if _, err := s.visibleCategory(ctx, userID, *input.CategoryID); err != nil {
			return nil, err
		}
		tx.CategoryID = *input.CategoryID
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, errs.ErrNegativeAmount
		}
		tx.Amount = *input.Amount
	}
	if input.Date != nil && !input.Date.IsZero() {
		tx.Date = *input.Date
	}
	if input.Note != nil {
		tx.Note = *input.Note
	}
	if input.Merchant != nil {
		tx.Merchant = *input.Merchant
	}
	tx.UpdatedAt = s.timeProvider.Now()

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.uow.Transactions(txCtx).Update(txCtx, tx); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	budgets := s.uow.Budgets(txCtx)
	newKey := tx.BudgetKey()

	if err := budgets.AddSpent(txCtx, oldKey, -oldAmount); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, s.reconcileError(tx.ID, oldKey, -oldAmount, err)
	}
	if err := budgets.AddSpent(txCtx, newKey, tx.Amount); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, s.reconcileError(tx.ID, newKey, tx.Amount, err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        userID,
		"old_amount":     oldAmount,
		"new_amount":     tx.Amount,
	})
	return tx, nil
}

// Delete removes a transaction and decrements the matching budget in the
// same database transaction.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	tx, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := s.uow.Transactions(txCtx).Delete(txCtx, tx.ID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	key := tx.BudgetKey()
	if err := s.uow.Budgets(txCtx).AddSpent(txCtx, key, -tx.Amount); err != nil {
		_ = s.uow.Rollback(txCtx)
		return s.reconcileError(tx.ID, key, -tx.Amount, err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        userID,
		"amount":         tx.Amount,
	})
	return nil
}

func (s *Service) reconcileError(transactionID string, key entity.BudgetKey, delta float64, err error) error {
	recErr := &errs.ReconciliationError{
		TransactionID: transactionID,
		UserID:        key.UserID,
		CategoryID:    key.CategoryID,
		Delta:         delta,
		Err:           err,
	}
	s.logger.Error("Budget reconciliation failed", recErr.LogFields())
	return recErr
}
