package entity

import (
	"testing"
	"time"

	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Valid category creation", func(t *testing.T) {
		cat, err := NewCategory("user1", "Groceries", TypeExpense, "🛒", "#FF0000", fixedTime)

		require.NoError(t, err)
		assert.NotEmpty(t, cat.ID)
		require.NotNil(t, cat.UserID)
		assert.Equal(t, "user1", *cat.UserID)
		assert.Equal(t, "Groceries", cat.Name)
		assert.Equal(t, TypeExpense, cat.Type)
		assert.Equal(t, "🛒", cat.Icon)
		assert.Equal(t, "#FF0000", cat.Color)
		assert.False(t, cat.IsDefault, "user categories are never defaults")
	})

	t.Run("Defaults icon and color when empty", func(t *testing.T) {
		cat, err := NewCategory("user1", "Rent", TypeExpense, "", "", fixedTime)

		require.NoError(t, err)
		assert.Equal(t, "Tag", cat.Icon)
		assert.Equal(t, "#4D96FF", cat.Color)
	})

	t.Run("Missing name", func(t *testing.T) {
		cat, err := NewCategory("user1", "   ", TypeExpense, "", "", fixedTime)

		assert.Nil(t, cat)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("Invalid type", func(t *testing.T) {
		cat, err := NewCategory("user1", "Rent", CategoryType("TRANSFER"), "", "", fixedTime)

		assert.Nil(t, cat)
		assert.ErrorIs(t, err, errs.ErrInvalidCategoryType)
	})
}

func TestCategoryVisibility(t *testing.T) {
	owner := "user1"

	t.Run("OwnedBy", func(t *testing.T) {
		cat := &Category{UserID: &owner}

		assert.True(t, cat.OwnedBy("user1"))
		assert.False(t, cat.OwnedBy("user2"))
	})

	t.Run("Defaults have no owner", func(t *testing.T) {
		def := &Category{UserID: nil, IsDefault: true}

		assert.False(t, def.OwnedBy("user1"))
		assert.True(t, def.VisibleTo("user1"))
		assert.True(t, def.VisibleTo("user2"))
	})

	t.Run("User categories visible only to the owner", func(t *testing.T) {
		cat := &Category{UserID: &owner}

		assert.True(t, cat.VisibleTo("user1"))
		assert.False(t, cat.VisibleTo("user2"))
	})
}

func TestDefaultCategories(t *testing.T) {
	assert.Len(t, DefaultCategories, 8)

	income := 0
	for _, dc := range DefaultCategories {
		assert.True(t, ValidCategoryType(dc.Type))
		assert.NotEmpty(t, dc.Name)
		if dc.Type == TypeIncome {
			income++
		}
	}
	assert.Equal(t, 3, income)
}

func TestValidCategoryType(t *testing.T) {
	assert.True(t, ValidCategoryType(TypeIncome))
	assert.True(t, ValidCategoryType(TypeExpense))
	assert.False(t, ValidCategoryType(CategoryType("BOTH")))
	assert.False(t, ValidCategoryType(CategoryType("")))
}
