package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
)

// Fallback labels for transactions whose category no longer resolves.
const (
	unknownCategory = "Unknown"
	otherCategory   = "Other"
)

// Service implements the analytics use case: read-only aggregation views
// over the transaction set. All grouping happens in the store; this layer
// derives balance and savings rate and shapes the responses.
type Service struct {
	transactions persistence.TransactionRepository
	categories   persistence.CategoryRepository
	users        persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates an analytics service instance
func NewService(
	transactions persistence.TransactionRepository,
	categories persistence.CategoryRepository,
	users persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AnalyticsUseCase {
	return &Service{
		transactions: transactions,
		categories:   categories,
		users:        users,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func summaryResponse(s entity.Summary) usecase.SummaryResponse {
	return usecase.SummaryResponse{
		Income:      s.Income,
		Expense:     s.Expense,
		Balance:     s.Balance(),
		SavingsRate: s.SavingsRate(),
	}
}

// periodRange returns [first-of-period 00:00, last-of-period 23:59:59.999].
// With only a year the period is the whole year; a month without a year
// defaults to the current year.
func (s *Service) periodRange(month, year *int) (*time.Time, *time.Time) {
	if month == nil && year == nil {
		return nil, nil
	}

	y := s.timeProvider.Now().Year()
	if year != nil {
		y = *year
	}

	var from, to time.Time
	if month != nil {
		from = time.Date(y, time.Month(*month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0).Add(-time.Millisecond)
	} else {
		from = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(y+1, time.January, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond)
	}
	return &from, &to
}

// Summary returns per-type totals with balance and savings rate
func (s *Service) Summary(ctx context.Context, userID string) (*usecase.SummaryResponse, error) {
	totals, err := s.transactions.SumByType(ctx, persistence.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	resp := summaryResponse(totals)
	return &resp, nil
}

// Monthly returns one row per (year, month) present in the data. Months with
// no transactions are absent, not zero-filled.
func (s *Service) Monthly(ctx context.Context, userID string) ([]usecase.MonthlyRow, error) {
	totals, err := s.transactions.MonthlyTotals(ctx, persistence.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	rows := make([]usecase.MonthlyRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, usecase.MonthlyRow{
			Month:   t.MonthLabel(),
			Year:    t.Year,
			Income:  t.Income,
			Expense: t.Expense,
		})
	}
	return rows, nil
}

// CategoryBreakdown sums EXPENSE transactions per category, descending by
// total. Income transactions never appear here.
func (s *Service) CategoryBreakdown(ctx context.Context, userID string) ([]usecase.CategoryRow, error) {
	totals, err := s.transactions.CategoryTotals(ctx, persistence.TransactionFilter{
		UserID: userID,
		Type:   entity.TypeExpense,
	}, unknownCategory)
	if err != nil {
		return nil, err
	}
	return categoryRows(totals), nil
}

// BalanceTrend returns all twelve calendar months zero-filled, regardless of
// year, with per-month income, expense and balance.
func (s *Service) BalanceTrend(ctx context.Context, userID string) ([]usecase.TrendRow, error) {
	totals, err := s.transactions.MonthlyTotals(ctx, persistence.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	var income, expense [12]float64
	for _, t := range totals {
		income[t.Month-1] += t.Income
		expense[t.Month-1] += t.Expense
	}

	rows := make([]usecase.TrendRow, 12)
	for i := 0; i < 12; i++ {
		rows[i] = usecase.TrendRow{
			Month:   i + 1,
			Income:  income[i],
			Expense: expense[i],
			Balance: income[i] - expense[i],
		}
	}
	return rows, nil
}

// Filtered returns summary + monthly breakdown + category breakdown in one
// response for an optional period/type/category.
func (s *Service) Filtered(ctx context.Context, userID string, input usecase.FilterInput) (*usecase.FilteredResponse, error) {
	from, to := s.periodRange(input.Month, input.Year)

	filter := persistence.TransactionFilter{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		From:       from,
		To:         to,
	}

	totals, err := s.transactions.SumByType(ctx, filter)
	if err != nil {
		return nil, err
	}

	monthly, err := s.transactions.MonthlyTotals(ctx, filter)
	if err != nil {
		return nil, err
	}
	monthlyRows := make([]usecase.MonthlyRow, 0, len(monthly))
	for _, t := range monthly {
		monthlyRows = append(monthlyRows, usecase.MonthlyRow{
			Month:   t.MonthLabel(),
			Year:    t.Year,
			Income:  t.Income,
			Expense: t.Expense,
		})
	}

	expenseFilter := filter
	expenseFilter.Type = entity.TypeExpense
	categories, err := s.transactions.CategoryTotals(ctx, expenseFilter, unknownCategory)
	if err != nil {
		return nil, err
	}

	return &usecase.FilteredResponse{
		Summary:    summaryResponse(totals),
		Monthly:    monthlyRows,
		Categories: categoryRows(categories),
	}, nil
}

// Report assembles the export payload: summary, twelve-month bar series,
// category expense breakdown and the full transaction table.
func (s *Service) Report(ctx context.Context, userID string, month, year *int) (*usecase.ReportData, error) {
	from, to := s.periodRange(month, year)
	filter := persistence.TransactionFilter{UserID: userID, From: from, To: to}

	list, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	visible, err := s.categories.ListVisible(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range visible {
		names[c.ID] = c.Name
	}

	data := &usecase.ReportData{GeneratedAt: s.timeProvider.Now()}
	var summary entity.Summary
	categoryExpense := make(map[string]float64)

	for _, tx := range list {
		name, ok := names[tx.CategoryID]
		if !ok {
			name = otherCategory
		}

		m := int(tx.Date.Month()) - 1
		switch tx.Type {
		case entity.TypeIncome:
			summary.Income += tx.Amount
			data.MonthlyIncome[m] += tx.Amount
		case entity.TypeExpense:
			summary.Expense += tx.Amount
			data.MonthlyExpense[m] += tx.Amount
			categoryExpense[name] += tx.Amount
		}

		data.Transactions = append(data.Transactions, usecase.ReportTransaction{
			Date:     tx.Date,
			Type:     tx.Type,
			Category: name,
			Amount:   tx.Amount,
		})
	}

	data.Summary = summaryResponse(summary)
	for name, total := range categoryExpense {
		data.Categories = append(data.Categories, usecase.CategoryRow{Name: name, Value: total})
	}
	sortCategoryRows(data.Categories)

	return data, nil
}

// AdminSummary returns the global summary across all users
func (s *Service) AdminSummary(ctx context.Context) (*usecase.SummaryResponse, error) {
	totals, err := s.transactions.SumByType(ctx, persistence.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	resp := summaryResponse(totals)
	return &resp, nil
}

// TopCategories returns the limit highest-total categories globally, all
// types included.
func (s *Service) TopCategories(ctx context.Context, limit int) ([]usecase.CategoryRow, error) {
	if limit <= 0 {
		limit = 5
	}
	totals, err := s.transactions.TopCategories(ctx, persistence.TransactionFilter{}, limit)
	if err != nil {
		return nil, err
	}
	return categoryRows(totals), nil
}

// UserEngagement returns account-activity counts with admins excluded
func (s *Service) UserEngagement(ctx context.Context) (*entity.UserEngagement, error) {
	now := s.timeProvider.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return s.users.Engagement(ctx, monthStart)
}

func categoryRows(totals []entity.CategoryTotal) []usecase.CategoryRow {
	rows := make([]usecase.CategoryRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, usecase.CategoryRow{Name: t.Name, Value: t.Total})
	}
	return rows
}

func sortCategoryRows(rows []usecase.CategoryRow) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
}
