package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	coremocks "github.com/Alokafernando/Smart-Personal-Finance-Tracker/mocks/port/core"
	persistencemocks "github.com/Alokafernando/Smart-Personal-Finance-Tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsFixture struct {
	transactions *persistencemocks.MockTransactionRepository
	categories   *persistencemocks.MockCategoryRepository
	users        *persistencemocks.MockUserRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      usecase.AnalyticsUseCase
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	f := &analyticsFixture{
		transactions: persistencemocks.NewMockTransactionRepository(t),
		categories:   persistencemocks.NewMockCategoryRepository(t),
		users:        persistencemocks.NewMockUserRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.service = NewService(f.transactions, f.categories, f.users, f.timeProvider, f.logger)
	return f
}

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Derives balance and savings rate", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		f.transactions.EXPECT().
			SumByType(mock.Anything, persistence.TransactionFilter{UserID: "user1"}).
			Return(entity.Summary{Income: 1000.0, Expense: 300.0}, nil).Once()

		resp, err := f.service.Summary(ctx, "user1")

		require.NoError(t, err)
		assert.Equal(t, 1000.0, resp.Income)
		assert.Equal(t, 300.0, resp.Expense)
		assert.Equal(t, 700.0, resp.Balance)
		assert.Equal(t, "70.0", resp.SavingsRate)
	})

	t.Run("No income yields zero rate", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		f.transactions.EXPECT().SumByType(mock.Anything, mock.Anything).
			Return(entity.Summary{Income: 0, Expense: 120.0}, nil).Once()

		resp, err := f.service.Summary(ctx, "user1")

		require.NoError(t, err)
		assert.Equal(t, "0", resp.SavingsRate)
	})
}

func TestMonthly(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	f.transactions.EXPECT().MonthlyTotals(mock.Anything, mock.Anything).
		Return([]entity.MonthlyTotal{
			{Year: 2024, Month: 1, Income: 500.0, Expense: 100.0},
			{Year: 2024, Month: 3, Income: 0, Expense: 80.0},
		}, nil).Once()

	rows, err := f.service.Monthly(ctx, "user1")

	require.NoError(t, err)
	require.Len(t, rows, 2, "months without data stay absent")
	assert.Equal(t, "Jan", rows[0].Month)
	assert.Equal(t, 2024, rows[0].Year)
	assert.Equal(t, "Mar", rows[1].Month)
}

func TestBalanceTrend(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	f.transactions.EXPECT().MonthlyTotals(mock.Anything, mock.Anything).
		Return([]entity.MonthlyTotal{
			{Year: 2023, Month: 2, Income: 100.0, Expense: 20.0},
			{Year: 2024, Month: 2, Income: 50.0, Expense: 10.0},
			{Year: 2024, Month: 7, Income: 0, Expense: 40.0},
		}, nil).Once()

	rows, err := f.service.BalanceTrend(ctx, "user1")

	require.NoError(t, err)
	require.Len(t, rows, 12, "all twelve months present")

	// February merges both years.
	assert.Equal(t, 2, rows[1].Month)
	assert.Equal(t, 150.0, rows[1].Income)
	assert.Equal(t, 30.0, rows[1].Expense)
	assert.Equal(t, 120.0, rows[1].Balance)

	// July has expense only.
	assert.Equal(t, -40.0, rows[6].Balance)

	// Empty months zero-filled.
	assert.Equal(t, 0.0, rows[0].Income)
	assert.Equal(t, 0.0, rows[11].Expense)
}

func TestCategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	f.transactions.EXPECT().
		CategoryTotals(mock.Anything, persistence.TransactionFilter{
			UserID: "user1",
			Type:   entity.TypeExpense,
		}, "Unknown").
		Return([]entity.CategoryTotal{
			{Name: "Food", Total: 300.0},
			{Name: "Fuel", Total: 120.0},
		}, nil).Once()

	rows, err := f.service.CategoryBreakdown(ctx, "user1")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Food", rows[0].Name)
	assert.Equal(t, 300.0, rows[0].Value)
}

func TestFiltered(t *testing.T) {
	ctx := context.Background()

	t.Run("Month and year bound the period inclusively", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		month, year := 3, 2024
		wantFrom := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		wantTo := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)

		matchPeriod := func(filter persistence.TransactionFilter) bool {
			return filter.From != nil && filter.From.Equal(wantFrom) &&
				filter.To != nil && filter.To.Equal(wantTo)
		}

		f.transactions.EXPECT().SumByType(mock.Anything, mock.MatchedBy(matchPeriod)).
			Return(entity.Summary{Income: 100.0}, nil).Once()
		f.transactions.EXPECT().MonthlyTotals(mock.Anything, mock.MatchedBy(matchPeriod)).
			Return(nil, nil).Once()
		f.transactions.EXPECT().CategoryTotals(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return matchPeriod(filter) && filter.Type == entity.TypeExpense
		}), "Unknown").Return(nil, nil).Once()

		resp, err := f.service.Filtered(ctx, "user1", usecase.FilterInput{Month: &month, Year: &year})

		require.NoError(t, err)
		assert.Equal(t, 100.0, resp.Summary.Income)
	})

	t.Run("Month without year uses the current year", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		f.timeProvider.EXPECT().Now().
			Return(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)).Once()

		month := 12
		wantFrom := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

		f.transactions.EXPECT().SumByType(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.From != nil && filter.From.Equal(wantFrom)
		})).Return(entity.Summary{}, nil).Once()
		f.transactions.EXPECT().MonthlyTotals(mock.Anything, mock.Anything).Return(nil, nil).Once()
		f.transactions.EXPECT().CategoryTotals(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil).Once()

		_, err := f.service.Filtered(ctx, "user1", usecase.FilterInput{Month: &month})

		assert.NoError(t, err)
	})

	t.Run("Year alone spans the whole year", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		year := 2023
		wantFrom := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		wantTo := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)

		f.transactions.EXPECT().SumByType(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.From.Equal(wantFrom) && filter.To.Equal(wantTo)
		})).Return(entity.Summary{}, nil).Once()
		f.transactions.EXPECT().MonthlyTotals(mock.Anything, mock.Anything).Return(nil, nil).Once()
		f.transactions.EXPECT().CategoryTotals(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil).Once()

		_, err := f.service.Filtered(ctx, "user1", usecase.FilterInput{Year: &year})

		assert.NoError(t, err)
	})

	t.Run("No period means no bounds", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		f.transactions.EXPECT().SumByType(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.From == nil && filter.To == nil
		})).Return(entity.Summary{}, nil).Once()
		f.transactions.EXPECT().MonthlyTotals(mock.Anything, mock.Anything).Return(nil, nil).Once()
		f.transactions.EXPECT().CategoryTotals(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil).Once()

		_, err := f.service.Filtered(ctx, "user1", usecase.FilterInput{})

		assert.NoError(t, err)
	})
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	generatedAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	f := newAnalyticsFixture(t)

	f.transactions.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*entity.Transaction{
			{CategoryID: "cat1", Type: entity.TypeIncome, Amount: 1000.0,
				Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
			{CategoryID: "cat2", Type: entity.TypeExpense, Amount: 300.0,
				Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
			{CategoryID: "gone", Type: entity.TypeExpense, Amount: 50.0,
				Date: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)},
		}, nil).Once()
	f.categories.EXPECT().ListVisible(mock.Anything, "user1").
		Return([]*entity.Category{
			{ID: "cat1", Name: "Salary"},
			{ID: "cat2", Name: "Food"},
		}, nil).Once()
	f.timeProvider.EXPECT().Now().Return(generatedAt).Once()

	report, err := f.service.Report(ctx, "user1", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, generatedAt, report.GeneratedAt)
	assert.Equal(t, 1000.0, report.Summary.Income)
	assert.Equal(t, 350.0, report.Summary.Expense)
	assert.Equal(t, 1000.0, report.MonthlyIncome[0])
	assert.Equal(t, 300.0, report.MonthlyExpense[0])
	assert.Equal(t, 50.0, report.MonthlyExpense[1])
	require.Len(t, report.Transactions, 3)
	assert.Equal(t, "Other", report.Transactions[2].Category, "unresolvable category falls back")

	require.Len(t, report.Categories, 2)
	assert.Equal(t, "Food", report.Categories[0].Name, "categories sorted by value descending")
}

func TestAdminViews(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminSummary is unscoped", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		f.transactions.EXPECT().
			SumByType(mock.Anything, persistence.TransactionFilter{}).
			Return(entity.Summary{Income: 5000.0, Expense: 2000.0}, nil).Once()

		resp, err := f.service.AdminSummary(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3000.0, resp.Balance)
	})

	t.Run("TopCategories defaults the limit", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		f.transactions.EXPECT().TopCategories(mock.Anything, mock.Anything, 5).
			Return([]entity.CategoryTotal{{Name: "Food", Total: 900.0}}, nil).Once()

		rows, err := f.service.TopCategories(ctx, 0)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Food", rows[0].Name)
	})

	t.Run("UserEngagement bounds the month at its first day", func(t *testing.T) {
		f := newAnalyticsFixture(t)

		f.timeProvider.EXPECT().Now().
			Return(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)).Once()
		f.users.EXPECT().
			Engagement(mock.Anything, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
			Return(&entity.UserEngagement{Total: 10, NewThisMonth: 2, Active: 7}, nil).Once()

		stats, err := f.service.UserEngagement(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(10), stats.Total)
		assert.Equal(t, int64(7), stats.Active)
	})
}
