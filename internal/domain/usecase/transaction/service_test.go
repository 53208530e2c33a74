package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	coremocks "github.com/Alokafernando/Smart-Personal-Finance-Tracker/mocks/port/core"
	persistencemocks "github.com/Alokafernando/Smart-Personal-Finance-Tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transactionFixture struct {
	uow          *persistencemocks.MockUnitOfWork
	transactions *persistencemocks.MockTransactionRepository
	txRepo       *persistencemocks.MockTransactionRepository
	budgets      *persistencemocks.MockBudgetRepository
	categories   *persistencemocks.MockCategoryRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      usecase.TransactionUseCase
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	f := &transactionFixture{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		transactions: persistencemocks.NewMockTransactionRepository(t),
		txRepo:       persistencemocks.NewMockTransactionRepository(t),
		budgets:      persistencemocks.NewMockBudgetRepository(t),
		categories:   persistencemocks.NewMockCategoryRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.service = NewService(f.uow, f.transactions, f.categories, f.timeProvider, f.logger)
	return f
}

func visibleCategory(id, owner string) *entity.Category {
	return &entity.Category{ID: id, UserID: &owner, Type: entity.TypeExpense}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Creates and increments budget in one unit of work", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(visibleCategory("cat1", "user1"), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Budgets(mock.Anything).Return(f.budgets).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.UserID == "user1" && tx.Amount == 42.50
		})).Return(nil).Once()

		expectedKey := entity.BudgetKey{UserID: "user1", CategoryID: "cat1", Month: 3, Year: 2024}
		f.budgets.EXPECT().AddSpent(mock.Anything, expectedKey, 42.50).Return(nil).Once()

		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		tx, err := f.service.Create(ctx, "user1", usecase.CreateTransactionInput{
			CategoryID: "cat1",
			Type:       entity.TypeExpense,
			Amount:     42.50,
			Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Note:       "groceries",
		})

		require.NoError(t, err)
		assert.Equal(t, "user1", tx.UserID)
		assert.Equal(t, "groceries", tx.Note)
	})

	t.Run("Rolls back when budget adjustment fails", func(t *testing.T) {
		f := newTransactionFixture(t)
		dbErr := errors.New("deadlock detected")

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(visibleCategory("cat1", "user1"), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Budgets(mock.Anything).Return(f.budgets).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.budgets.EXPECT().AddSpent(mock.Anything, mock.Anything, 42.50).Return(dbErr).Once()

		f.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		tx, err := f.service.Create(ctx, "user1", usecase.CreateTransactionInput{
			CategoryID: "cat1",
			Type:       entity.TypeExpense,
			Amount:     42.50,
		})

		assert.Nil(t, tx)
		var recErr *errs.ReconciliationError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, 42.50, recErr.Delta)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Rolls back when the row insert fails", func(t *testing.T) {
		f := newTransactionFixture(t)
		dbErr := errors.New("insert failed")

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(visibleCategory("cat1", "user1"), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()

		tx, err := f.service.Create(ctx, "user1", usecase.CreateTransactionInput{
			CategoryID: "cat1",
			Type:       entity.TypeExpense,
			Amount:     10.0,
		})

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Rejects a category belonging to another user", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(visibleCategory("cat1", "someone-else"), nil).Once()

		tx, err := f.service.Create(ctx, "user1", usecase.CreateTransactionInput{
			CategoryID: "cat1",
			Type:       entity.TypeExpense,
			Amount:     10.0,
		})

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})

	t.Run("Default categories are usable by anyone", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "def1").
			Return(&entity.Category{ID: "def1", IsDefault: true, Type: entity.TypeExpense}, nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Budgets(mock.Anything).Return(f.budgets).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.budgets.EXPECT().AddSpent(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		_, err := f.service.Create(ctx, "user1", usecase.CreateTransactionInput{
			CategoryID: "def1",
			Type:       entity.TypeExpense,
			Amount:     10.0,
		})

		assert.NoError(t, err)
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

	existing := func() *entity.Transaction {
		return &entity.Transaction{
			ID:         "tx1",
			UserID:     "user1",
			CategoryID: "cat1",
			Type:       entity.TypeExpense,
			Amount:     100.0,
			Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Moves spend between budgets when the amount changes", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().GetByID(mock.Anything, "tx1").Return(existing(), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Budgets(mock.Anything).Return(f.budgets).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		oldKey := entity.BudgetKey{UserID: "user1", CategoryID: "cat1", Month: 3, Year: 2024}
		f.budgets.EXPECT().AddSpent(mock.Anything, oldKey, -100.0).Return(nil).Once()
		f.budgets.EXPECT().AddSpent(mock.Anything, oldKey, 60.0).Return(nil).Once()

		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		newAmount := 60.0
		tx, err := f.service.Update(ctx, "user1", "tx1", usecase.UpdateTransactionInput{
			Amount: &newAmount,
		})

		require.NoError(t, err)
		assert.Equal(t, 60.0, tx.Amount)
	})

	t.Run("Category change rewires the budget key", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().GetByID(mock.Anything, "tx1").Return(existing(), nil).Once()
		f.categories.EXPECT().GetByID(mock.Anything, "cat2").
			Return(visibleCategory("cat2", "user1"), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Budgets(mock.Anything).Return(f.budgets).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		oldKey := entity.BudgetKey{UserID: "user1", CategoryID: "cat1", Month: 3, Year: 2024}
		newKey := entity.BudgetKey{UserID: "user1", CategoryID: "cat2", Month: 3, Year: 2024}
		f.budgets.EXPECT().AddSpent(mock.Anything, oldKey, -100.0).Return(nil).Once()
		f.budgets.EXPECT().AddSpent(mock.Anything, newKey, 100.0).Return(nil).Once()

		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		newCat := "cat2"
		tx, err := f.service.Update(ctx, "user1", "tx1", usecase.UpdateTransactionInput{
			CategoryID: &newCat,
		})

		require.NoError(t, err)
		assert.Equal(t, "cat2", tx.CategoryID)
	})

	t.Run("Rolls back when the second adjustment fails", func(t *testing.T) {
		f := newTransactionFixture(t)
		dbErr := errors.New("budget row locked")

		f.transactions.EXPECT().GetByID(mock.Anything, "tx1").Return(existing(), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Budgets(mock.Anything).Return(f.budgets).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.budgets.EXPECT().AddSpent(mock.Anything, mock.Anything, -100.0).Return(nil).Once()
		f.budgets.EXPECT().AddSpent(mock.Anything, mock.Anything, 60.0).Return(dbErr).Once()

		f.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		newAmount := 60.0
		tx, err := f.service.Update(ctx, "user1", "tx1", usecase.UpdateTransactionInput{
			Amount: &newAmount,
		})

		assert.Nil(t, tx)
		var recErr *errs.ReconciliationError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, 60.0, recErr.Delta)
	})

	t.Run("Negative amount is rejected before any write", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().GetByID(mock.Anything, "tx1").Return(existing(), nil).Once()

		bad := -5.0
		tx, err := f.service.Update(ctx, "user1", "tx1", usecase.UpdateTransactionInput{
			Amount: &bad,
		})

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Another user's transaction is off limits", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().GetByID(mock.Anything, "tx1").Return(existing(), nil).Once()

		tx, err := f.service.Update(ctx, "intruder", "tx1", usecase.UpdateTransactionInput{})

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	existing := &entity.Transaction{
		ID:         "tx1",
		UserID:     "user1",
		CategoryID: "cat1",
		Type:       entity.TypeExpense,
		Amount:     75.0,
		Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Deletes and subtracts the amount from the budget", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().GetByID(mock.Anything, "tx1").Return(existing, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Budgets(mock.Anything).Return(f.budgets).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Delete(mock.Anything, "tx1").Return(nil).Once()

		key := entity.BudgetKey{UserID: "user1", CategoryID: "cat1", Month: 3, Year: 2024}
		f.budgets.EXPECT().AddSpent(mock.Anything, key, -75.0).Return(nil).Once()

		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := f.service.Delete(ctx, "user1", "tx1")

		assert.NoError(t, err)
	})

	t.Run("Rolls back when the adjustment fails", func(t *testing.T) {
		f := newTransactionFixture(t)
		dbErr := errors.New("connection lost")

		f.transactions.EXPECT().GetByID(mock.Anything, "tx1").Return(existing, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		f.uow.EXPECT().Transactions(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().Budgets(mock.Anything).Return(f.budgets).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		f.txRepo.EXPECT().Delete(mock.Anything, "tx1").Return(nil).Once()
		f.budgets.EXPECT().AddSpent(mock.Anything, mock.Anything, -75.0).Return(dbErr).Once()

		f.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		err := f.service.Delete(ctx, "user1", "tx1")

		var recErr *errs.ReconciliationError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, -75.0, recErr.Delta)
	})

	t.Run("Not found passes through", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().GetByID(mock.Anything, "missing").
			Return(nil, errs.ErrTransactionNotFound).Once()

		err := f.service.Delete(ctx, "user1", "missing")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("List scopes the filter to the user", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
				return filter.UserID == "user1" && filter.CategoryID == "cat1"
			})).
			Return([]*entity.Transaction{{ID: "tx1"}}, nil).Once()

		result, err := f.service.List(ctx, "user1", usecase.ListTransactionsInput{CategoryID: "cat1"})

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Latest defaults the limit", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
				return filter.UserID == "user1" && filter.Limit == 5
			})).
			Return(nil, nil).Once()

		_, err := f.service.Latest(ctx, "user1", 0)

		assert.NoError(t, err)
	})

	t.Run("ListAll leaves the user unscoped", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.transactions.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
				return filter.UserID == ""
			})).
			Return(nil, nil).Once()

		_, err := f.service.ListAll(ctx, usecase.ListTransactionsInput{})

		assert.NoError(t, err)
	})
}
