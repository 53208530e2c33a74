package category

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

type categoryFixture struct {
	categories   *persistencemocks.MockCategoryRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      usecase.CategoryUseCase
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	f := &categoryFixture{
		categories:   persistencemocks.NewMockCategoryRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.service = NewService(f.categories, f.timeProvider, f.logger)
	return f
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Creates a user category", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.categories.EXPECT().FindByName(mock.Anything, "user1", "Groceries").
			Return(nil, errs.ErrCategoryNotFound).Once()
		f.categories.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
			return c.Name == "Groceries" && c.UserID != nil && *c.UserID == "user1"
		})).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		cat, err := f.service.Create(ctx, "user1", usecase.CreateCategoryInput{
			Name: "Groceries",
			Type: entity.TypeExpense,
		})

		require.NoError(t, err)
		assert.Equal(t, "Groceries", cat.Name)
	})

	t.Run("Duplicate name conflicts", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.categories.EXPECT().FindByName(mock.Anything, "user1", "Groceries").
			Return(&entity.Category{ID: "existing"}, nil).Once()

		cat, err := f.service.Create(ctx, "user1", usecase.CreateCategoryInput{
			Name: "Groceries",
			Type: entity.TypeExpense,
		})

		assert.Nil(t, cat)
		assert.ErrorIs(t, err, errs.ErrDuplicateCategory)
	})

	t.Run("Invalid type", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.timeProvider.EXPECT().Now().Return(fixedTime)

		cat, err := f.service.Create(ctx, "user1", usecase.CreateCategoryInput{
			Name: "Groceries",
			Type: entity.CategoryType("BOTH"),
		})

		assert.Nil(t, cat)
		assert.ErrorIs(t, err, errs.ErrInvalidCategoryType)
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	owner := "user1"

	userCategory := func() *entity.Category {
		return &entity.Category{
			ID:     "cat1",
			UserID: &owner,
			Name:   "Groceries",
			Type:   entity.TypeExpense,
		}
	}

	t.Run("Owner renames their category", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").Return(userCategory(), nil).Once()
		f.categories.EXPECT().FindByName(mock.Anything, "user1", "Food").
			Return(nil, errs.ErrCategoryNotFound).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.categories.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		name := "Food"
		cat, err := f.service.Update(ctx, "user1", "cat1", usecase.UpdateCategoryInput{
			Name: &name,
		})

		require.NoError(t, err)
		assert.Equal(t, "Food", cat.Name)
	})

	t.Run("Case-only rename skips the duplicate check", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").Return(userCategory(), nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.categories.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		name := "GROCERIES"
		cat, err := f.service.Update(ctx, "user1", "cat1", usecase.UpdateCategoryInput{
			Name: &name,
		})

		require.NoError(t, err)
		assert.Equal(t, "GROCERIES", cat.Name)
	})

	t.Run("Defaults are immutable", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "def1").
			Return(&entity.Category{ID: "def1", IsDefault: true}, nil).Once()

		name := "Renamed"
		cat, err := f.service.Update(ctx, "user1", "def1", usecase.UpdateCategoryInput{
			Name: &name,
		})

		assert.Nil(t, cat)
		assert.ErrorIs(t, err, errs.ErrDefaultImmutable)
	})

	t.Run("Only the owner may edit", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").Return(userCategory(), nil).Once()

		cat, err := f.service.Update(ctx, "intruder", "cat1", usecase.UpdateCategoryInput{})

		assert.Nil(t, cat)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	owner := "user1"

	t.Run("Owner deletes their category", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "cat1").
			Return(&entity.Category{ID: "cat1", UserID: &owner, Name: "Groceries"}, nil).Once()
		f.categories.EXPECT().Delete(mock.Anything, "cat1").Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		assert.NoError(t, f.service.Delete(ctx, "user1", "cat1"))
	})

	t.Run("Defaults cannot be deleted", func(t *testing.T) {
		f := newCategoryFixture(t)

		f.categories.EXPECT().GetByID(mock.Anything, "def1").
			Return(&entity.Category{ID: "def1", IsDefault: true}, nil).Once()

		err := f.service.Delete(ctx, "user1", "def1")

		assert.ErrorIs(t, err, errs.ErrDefaultImmutable)
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	f := newCategoryFixture(t)

	f.categories.EXPECT().ListVisible(mock.Anything, "user1").
		Return([]*entity.Category{{ID: "def1", IsDefault: true}, {ID: "cat1"}}, nil).Once()

	result, err := f.service.List(ctx, "user1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
