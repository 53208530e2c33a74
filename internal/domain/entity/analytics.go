package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the per-type totals of a transaction set together with the
// derived balance and savings rate.
type Summary struct {
	Income  float64
	Expense float64
}

// Balance returns income minus expense.
func (s Summary) Balance() float64 {
	return s.Income - s.Expense
}

// SavingsRate returns (balance / income) * 100 formatted to one decimal
// place, "0" when there is no income.
func (s Summary) SavingsRate() string {
	if s.Income == 0 {
		return "0"
	}
	rate := decimal.NewFromFloat(s.Balance()).
		Div(decimal.NewFromFloat(s.Income)).
		Mul(decimal.NewFromInt(100))
	return rate.StringFixed(1)
}

// MonthlyTotal is one month's income/expense totals.
type MonthlyTotal struct {
	Year    int
	Month   int
	Income  float64
	Expense float64
}

// Balance returns the month's net amount.
func (m MonthlyTotal) Balance() float64 {
	return m.Income - m.Expense
}

// MonthLabel returns the short English month name used by the reporting
// endpoints.
func (m MonthlyTotal) MonthLabel() string {
	return time.Month(m.Month).String()[:3]
}

// CategoryTotal is an aggregated amount attributed to one category name.
type CategoryTotal struct {
	CategoryID string
	Name       string
	Total      float64
}

// UserEngagement is the admin view of account activity. Admin accounts are
// excluded from every count.
type UserEngagement struct {
	Total        int64
	NewThisMonth int64
	Active       int64
}
