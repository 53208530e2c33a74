package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	t.Run("Balance", func(t *testing.T) {
		s := Summary{Income: 1000.0, Expense: 300.0}
		assert.Equal(t, 700.0, s.Balance())
	})

	t.Run("Savings rate with income", func(t *testing.T) {
		s := Summary{Income: 1000.0, Expense: 300.0}
		assert.Equal(t, "70.0", s.SavingsRate())
	})

	t.Run("Savings rate rounds to one decimal", func(t *testing.T) {
		s := Summary{Income: 3000.0, Expense: 1000.0}
		assert.Equal(t, "66.7", s.SavingsRate())
	})

	t.Run("Zero income yields zero rate", func(t *testing.T) {
		s := Summary{Income: 0, Expense: 500.0}
		assert.Equal(t, "0", s.SavingsRate())
	})

	t.Run("Negative rate when overspent", func(t *testing.T) {
		s := Summary{Income: 100.0, Expense: 150.0}
		assert.Equal(t, "-50.0", s.SavingsRate())
	})
}

func TestMonthlyTotal(t *testing.T) {
	t.Run("Balance", func(t *testing.T) {
		m := MonthlyTotal{Income: 500.0, Expense: 200.0}
		assert.Equal(t, 300.0, m.Balance())
	})

	t.Run("MonthLabel", func(t *testing.T) {
		assert.Equal(t, "Jan", MonthlyTotal{Month: 1}.MonthLabel())
		assert.Equal(t, "Jun", MonthlyTotal{Month: 6}.MonthLabel())
		assert.Equal(t, "Dec", MonthlyTotal{Month: 12}.MonthLabel())
	})
}
