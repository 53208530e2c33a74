package entity

import (
	"testing"
	"time"

	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Valid transaction creation", func(t *testing.T) {
		date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		tx, err := NewTransaction("user1", "cat1", TypeExpense, 42.50, date, now)

		require.NoError(t, err)
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, "user1", tx.UserID)
		assert.Equal(t, "cat1", tx.CategoryID)
		assert.Equal(t, TypeExpense, tx.Type)
		assert.Equal(t, 42.50, tx.Amount)
		assert.Equal(t, date, tx.Date)
		assert.Equal(t, now, tx.CreatedAt)
	})

	t.Run("Zero date falls back to now", func(t *testing.T) {
		tx, err := NewTransaction("user1", "cat1", TypeIncome, 100.0, time.Time{}, now)

		require.NoError(t, err)
		assert.Equal(t, now, tx.Date)
	})

	t.Run("Zero amount is allowed", func(t *testing.T) {
		tx, err := NewTransaction("user1", "cat1", TypeExpense, 0, now, now)

		require.NoError(t, err)
		assert.Equal(t, 0.0, tx.Amount)
	})

	t.Run("Missing user", func(t *testing.T) {
		tx, err := NewTransaction("", "cat1", TypeExpense, 10.0, now, now)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("Missing category", func(t *testing.T) {
		tx, err := NewTransaction("user1", "", TypeExpense, 10.0, now, now)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("Invalid type", func(t *testing.T) {
		tx, err := NewTransaction("user1", "cat1", CategoryType("TRANSFER"), 10.0, now, now)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidCategoryType)
	})

	t.Run("Negative amount", func(t *testing.T) {
		tx, err := NewTransaction("user1", "cat1", TypeExpense, -5.0, now, now)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}
