package usecase

import (
	"context"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// SummaryResponse is the per-type total view with derived metrics.
type SummaryResponse struct {
	Income      float64 `json:"income"`
	Expense     float64 `json:"expense"`
	Balance     float64 `json:"balance"`
	SavingsRate string  `json:"savingsRate"`
}

// MonthlyRow is one month present in the data.
type MonthlyRow struct {
	Month   string  `json:"month"`
	Year    int     `json:"year"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryRow is one category's aggregated amount.
type CategoryRow struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TrendRow is one calendar month of the zero-filled balance trend.
type TrendRow struct {
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// FilterInput narrows the combined analytics view. A month without a year
// defaults the year to the current one.
type FilterInput struct {
	Month      *int
	Year       *int
	Type       entity.CategoryType
	CategoryID string
}

// FilteredResponse is the combined summary + breakdown view.
type FilteredResponse struct {
	Summary    SummaryResponse `json:"summary"`
	Monthly    []MonthlyRow    `json:"monthly"`
	Categories []CategoryRow   `json:"categories"`
}

// ReportTransaction is one row of the exported transaction table.
type ReportTransaction struct {
	Date     time.Time
	Type     entity.CategoryType
	Category string
	Amount   float64
}

/// ReportData is everything the document renderers need: the summary, a
// twelve-month bar series, the per-category expense breakdown and the full
// transaction table.
type ReportData struct {
	GeneratedAt    time.Time
	Summary        SummaryResponse
	MonthlyIncome  [12]float64
	MonthlyExpense [12]float64
	Categories     []CategoryRow
	Transactions   []ReportTransaction
}

// AnalyticsUseCase computes read-only derived views over transactions.
type AnalyticsUseCase interface {
	// Summary returns per-type totals with balance and savings rate
	Summary(ctx context.Context, userID string) (*SummaryResponse, error)

	// Monthly returns one row per month present in the data
	Monthly(ctx context.Context, userID string) ([]MonthlyRow, error)

	// CategoryBreakdown sums EXPENSE transactions per category, descending
	CategoryBreakdown(ctx context.Context, userID string) ([]CategoryRow, error)

	// BalanceTrend returns all twelve calendar months, zero-filled
	BalanceTrend(ctx context.Context, userID string) ([]TrendRow, error)

	// Filtered returns the combined view for an optional period/type/category
	Filtered(ctx context.Context, userID string, input FilterInput) (*FilteredResponse, error)

	// Report assembles the export payload for an optional period
	Report(ctx context.Context, userID string, month, year *int) (*ReportData, error)

	// AdminSummary returns the global summary across all users
	AdminSummary(ctx context.Context) (*SummaryResponse, error)

	// TopCategories returns the limit highest-total categories globally
	TopCategories(ctx context.Context, limit int) ([]CategoryRow, error)

	// UserEngagement returns account-activity counts, admins excluded
	UserEngagement(ctx context.Context) (*entity.UserEngagement, error)
}
