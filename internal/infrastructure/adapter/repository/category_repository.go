package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CategoryRepository implements CategoryRepository interface using GORM
type CategoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CategoryRepository) entityToModel(category *entity.Category) *model.Category {
	return &model.Category{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		Type:      string(category.Type),
		Icon:      category.Icon,
		Color:     category.Color,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func (r *CategoryRepository) modelToEntity(categoryModel *model.Category) *entity.Category {
	return &entity.Category{
		ID:        categoryModel.ID,
		UserID:    categoryModel.UserID,
		Name:      categoryModel.Name,
		Type:      entity.CategoryType(categoryModel.Type),
		Icon:      categoryModel.Icon,
		Color:     categoryModel.Color,
		IsDefault: categoryModel.IsDefault,
		CreatedAt: categoryModel.CreatedAt,
		UpdatedAt: categoryModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CategoryRepository) handleDatabaseError(operation string, err error, categoryID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Category not found", map[string]any{
			"category_id": categoryID,
		})
		return errs.ErrCategoryNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"category_id": categoryID,
		"error":       err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateCategory
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := r.entityToModel(category)
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		return r.handleDatabaseError("creating category", err, category.ID)
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).First(&categoryModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting category", result.Error, id)
	}
	return r.modelToEntity(&categoryModel), nil
}

// Update persists changes to an existing category
func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := r.entityToModel(category)

	result := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":       categoryModel.Name,
			"type":       categoryModel.Type,
			"icon":       categoryModel.Icon,
			"color":      categoryModel.Color,
			"updated_at": categoryModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating category", result.Error, category.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting category", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotFound
	}
	return nil
}

// ListVisible returns the global defaults plus the user's own categories
func (r *CategoryRepository) ListVisible(ctx context.Context, userID string) ([]*entity.Category, error) {
	var categoryModels []model.Category
	result := r.db.WithContext(ctx).
		Where("user_id IS NULL OR user_id = ?", userID).
		Order("created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing categories", result.Error, "")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, r.modelToEntity(&categoryModels[i]))
	}
	return categories, nil
}

// FindByName looks up a visible category by name, case-insensitively
func (r *CategoryRepository) FindByName(ctx context.Context, userID, name string) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).
		Where("(user_id IS NULL OR user_id = ?) AND LOWER(name) = LOWER(?)", userID, name).
		First(&categoryModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding category by name", result.Error, "")
	}
	return r.modelToEntity(&categoryModel), nil
}
