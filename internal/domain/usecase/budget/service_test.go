package budget

import (
	"context"
	"testing"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	coremocks "github.com/Alokafernando/Smart-Personal-Finance-Tracker/mocks/port/core"
	persistencemocks "github.com/Alokafernando/Smart-Personal-Finance-Tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type budgetFixture struct {
	budgets      *persistencemocks.MockBudgetRepository
	transactions *persistencemocks.MockTransactionRepository
	categories   *persistencemocks.MockCategoryRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      usecase.BudgetUseCase
}

func newBudgetFixture(t *testing.T) *budgetFixture {
	f := &budgetFixture{
		budgets:      persistencemocks.NewMockBudgetRepository(t),
		transactions: persistencemocks.NewMockTransactionRepository(t),
		categories:   persistencemocks.NewMockCategoryRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.service = NewService(f.budgets, f.transactions, f.categories, f.timeProvider, f.logger)
	return f
}

func ownedCategory(id, owner string) *entity.Category {
	return &entity.Category{ID: id, UserID: &owner, Type: entity.TypeExpense}
}

func TestCreateBudget(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	input := usecase.CreateBudgetInput{
		CategoryID: "cat1",
		Amount:     500.0,
		Month:      3,
		Year:       2024,
	}
	key := entity.BudgetKey{UserID: "user1", CategoryID: "cat1", Month: 3, Year: 2024}

	t.Run("Seeds spent from existing transactions", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(ownedCategory("cat1", "user1"), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.budgets.EXPECT().GetByKey(mock.Anything, key).Return(nil, errs.ErrBudgetNotFound).Once()
		f.transactions.EXPECT().SumForBudgetKey(mock.Anything, key).Return(123.45, nil).Once()
		f.budgets.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			return b.Spent == 123.45 && b.Amount == 500.0
		})).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		budget, err := f.service.Create(ctx, "user1", input)

		require.NoError(t, err)
		assert.Equal(t, 123.45, budget.Spent)
		assert.Equal(t, 376.55, budget.Remaining())
	})

	t.Run("Duplicate key conflicts", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(ownedCategory("cat1", "user1"), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.budgets.EXPECT().GetByKey(mock.Anything, key).
			Return(&entity.Budget{ID: "existing"}, nil).Once()

		budget, err := f.service.Create(ctx, "user1", input)

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrDuplicateBudget)

		var conflict *errs.BudgetConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "cat1", conflict.CategoryID)
		assert.Equal(t, 3, conflict.Month)
	})

	t.Run("Invalid month rejected before any lookup", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(ownedCategory("cat1", "user1"), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)

		bad := input
		bad.Month = 13
		budget, err := f.service.Create(ctx, "user1", bad)

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrInvalidPeriod)
	})

	t.Run("Category invisible to the user", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(ownedCategory("cat1", "someone-else"), nil).Once()

		budget, err := f.service.Create(ctx, "user1", input)

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})
}

func TestUpdateBudget(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	existing := func() *entity.Budget {
		return &entity.Budget{
			ID:         "b1",
			UserID:     "user1",
			CategoryID: "cat1",
			Amount:     500.0,
			Spent:      200.0,
			Month:      3,
			Year:       2024,
		}
	}

	t.Run("Amount change keeps the spent counter", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.budgets.EXPECT().GetByID(mock.Anything, "b1").Return(existing(), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.budgets.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			return b.Amount == 800.0 && b.Spent == 200.0
		})).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		amount := 800.0
		budget, err := f.service.Update(ctx, "user1", "b1", usecase.UpdateBudgetInput{
			Amount: &amount,
		})

		require.NoError(t, err)
		assert.Equal(t, 800.0, budget.Amount)
		assert.Equal(t, 200.0, budget.Spent)
	})

	t.Run("Period change recomputes spent for the new key", func(t *testing.T) {
		f := newBudgetFixture(t)

		newKey := entity.BudgetKey{UserID: "user1", CategoryID: "cat1", Month: 4, Year: 2024}

		f.budgets.EXPECT().GetByID(mock.Anything, "b1").Return(existing(), nil).Once()
		f.budgets.EXPECT().GetByKey(mock.Anything, newKey).Return(nil, errs.ErrBudgetNotFound).Once()
		f.transactions.EXPECT().SumForBudgetKey(mock.Anything, newKey).Return(55.0, nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.budgets.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		month := 4
		budget, err := f.service.Update(ctx, "user1", "b1", usecase.UpdateBudgetInput{
			Month: &month,
		})

		require.NoError(t, err)
		assert.Equal(t, 55.0, budget.Spent)
	})

	t.Run("Moving onto an occupied key conflicts", func(t *testing.T) {
		f := newBudgetFixture(t)

		newKey := entity.BudgetKey{UserID: "user1", CategoryID: "cat1", Month: 4, Year: 2024}

		f.budgets.EXPECT().GetByID(mock.Anything, "b1").Return(existing(), nil).Once()
		f.budgets.EXPECT().GetByKey(mock.Anything, newKey).
			Return(&entity.Budget{ID: "other"}, nil).Once()

		month := 4
		budget, err := f.service.Update(ctx, "user1", "b1", usecase.UpdateBudgetInput{
			Month: &month,
		})

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrDuplicateBudget)
	})

	t.Run("Not the owner", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.budgets.EXPECT().GetByID(mock.Anything, "b1").Return(existing(), nil).Once()

		budget, err := f.service.Update(ctx, "intruder", "b1", usecase.UpdateBudgetInput{})

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
	})
}

func TestReconcileBudget(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Warns and repairs on drift", func(t *testing.T) {
		f := newBudgetFixture(t)

		budget := &entity.Budget{
			ID: "b1", UserID: "user1", CategoryID: "cat1",
			Amount: 500.0, Spent: 180.0, Month: 3, Year: 2024,
		}

		f.budgets.EXPECT().GetByID(mock.Anything, "b1").Return(budget, nil).Once()
		f.transactions.EXPECT().SumForBudgetKey(mock.Anything, budget.Key()).Return(210.0, nil).Once()
		f.logger.EXPECT().Warn(mock.Anything, mock.MatchedBy(func(fields map[string]any) bool {
			return fields["stored"] == 180.0 && fields["computed"] == 210.0
		})).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.budgets.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.Reconcile(ctx, "user1", "b1")

		require.NoError(t, err)
		assert.Equal(t, 210.0, result.Spent)
	})

	t.Run("Silent when the counter already matches", func(t *testing.T) {
		f := newBudgetFixture(t)

		budget := &entity.Budget{
			ID: "b1", UserID: "user1", CategoryID: "cat1",
			Amount: 500.0, Spent: 210.0, Month: 3, Year: 2024,
		}

		f.budgets.EXPECT().GetByID(mock.Anything, "b1").Return(budget, nil).Once()
		f.transactions.EXPECT().SumForBudgetKey(mock.Anything, budget.Key()).Return(210.0, nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.budgets.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.Reconcile(ctx, "user1", "b1")

		require.NoError(t, err)
		assert.Equal(t, 210.0, result.Spent)
	})
}

func TestBudgetListing(t *testing.T) {
	ctx := context.Background()

	t.Run("Latest defaults the limit", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.budgets.EXPECT().Latest(mock.Anything, "user1", 5).Return(nil, nil).Once()

		_, err := f.service.Latest(ctx, "user1", 0)
		assert.NoError(t, err)
	})

	t.Run("List passes the period filter through", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.budgets.EXPECT().ListByUser(mock.Anything, "user1", 3, 2024).
			Return([]*entity.Budget{{ID: "b1"}}, nil).Once()

		result, err := f.service.List(ctx, "user1", 3, 2024)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func TestDeleteBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner can delete", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.budgets.EXPECT().GetByID(mock.Anything, "b1").
			Return(&entity.Budget{ID: "b1", UserID: "user1"}, nil).Once()
		f.budgets.EXPECT().Delete(mock.Anything, "b1").Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		assert.NoError(t, f.service.Delete(ctx, "user1", "b1"))
	})

	t.Run("Non-owner cannot", func(t *testing.T) {
		f := newBudgetFixture(t)

		f.budgets.EXPECT().GetByID(mock.Anything, "b1").
			Return(&entity.Budget{ID: "b1", UserID: "user1"}, nil).Once()

		assert.ErrorIs(t, f.service.Delete(ctx, "intruder", "b1"), errs.ErrNotOwner)
	})
}
