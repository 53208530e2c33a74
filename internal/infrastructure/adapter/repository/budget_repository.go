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

// BudgetRepository implements BudgetRepository interface using GORM
type BudgetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *BudgetRepository) entityToModel(budget *entity.Budget) *model.Budget {
	return &model.Budget{
		ID:         budget.ID,
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Spent:      budget.Spent,
		Month:      budget.Month,
		Year:       budget.Year,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}

func (r *BudgetRepository) modelToEntity(budgetModel *model.Budget) *entity.Budget {
	return &entity.Budget{
		ID:         budgetModel.ID,
		UserID:     budgetModel.UserID,
		CategoryID: budgetModel.CategoryID,
		Amount:     budgetModel.Amount,
		Spent:      budgetModel.Spent,
		Month:      budgetModel.Month,
		Year:       budgetModel.Year,
		CreatedAt:  budgetModel.CreatedAt,
		UpdatedAt:  budgetModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *BudgetRepository) handleDatabaseError(operation string, err error, budgetID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Budget not found", map[string]any{
			"budget_id": budgetID,
		})
		return errs.ErrBudgetNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"budget_id": budgetID,
		"error":     err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateBudget
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new budget
func (r *BudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := r.entityToModel(budget)
	if err := r.db.WithContext(ctx).Create(budgetModel).Error; err != nil {
		return r.handleDatabaseError("creating budget", err, budget.ID)
	}
	return nil
}

// GetByID retrieves a budget by ID
func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*entity.Budget, error) {
	var budgetModel model.Budget
	result := r.db.WithContext(ctx).First(&budgetModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting budget", result.Error, id)
	}
	return r.modelToEntity(&budgetModel), nil
}

// GetByKey retrieves the budget matching a key
func (r *BudgetRepository) GetByKey(ctx context.Context, key entity.BudgetKey) (*entity.Budget, error) {
	var budgetModel model.Budget
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND month = ? AND year = ?",
			key.UserID, key.CategoryID, key.Month, key.Year).
		First(&budgetModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting budget by key", result.Error, "")
	}
	return r.modelToEntity(&budgetModel), nil
}

// Update persists changes to an existing budget
func (r *BudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := r.entityToModel(budget)

	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("id = ?", budget.ID).
		Updates(map[string]any{
			"category_id": budgetModel.CategoryID,
			"amount":      budgetModel.Amount,
			"spent":       budgetModel.Spent,
			"month":       budgetModel.Month,
			"year":        budgetModel.Year,
			"updated_at":  budgetModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating budget", result.Error, budget.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget
func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Budget{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting budget", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}

// ListByUser returns a user's budgets; month/year of 0 mean no period filter
func (r *BudgetRepository) ListByUser(ctx context.Context, userID string, month, year int) ([]*entity.Budget, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if month > 0 {
		query = query.Where("month = ?", month)
	}
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	var budgetModels []model.Budget
	if err := query.Order("year DESC, month DESC, created_at DESC").Find(&budgetModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing budgets", err, "")
	}

	return r.modelsToEntities(budgetModels), nil
}

// Latest returns the user's most recently created budgets
func (r *BudgetRepository) Latest(ctx context.Context, userID string, limit int) ([]*entity.Budget, error) {
	var budgetModels []model.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&budgetModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing latest budgets", err, "")
	}

	return r.modelsToEntities(budgetModels), nil
}

// ListAll returns every budget (admin view)
func (r *BudgetRepository) ListAll(ctx context.Context) ([]*entity.Budget, error) {
	var budgetModels []model.Budget
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC, created_at DESC").
		Find(&budgetModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing all budgets", err, "")
	}

	return r.modelsToEntities(budgetModels), nil
}

// AddSpent atomically adds delta to the spent counter of the budget matching
// the key. No matching budget means the amount goes unaccounted, which is
// not an error.
func (r *BudgetRepository) AddSpent(ctx context.Context, key entity.BudgetKey, delta float64) error {
	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("user_id = ? AND category_id = ? AND month = ? AND year = ?",
			key.UserID, key.CategoryID, key.Month, key.Year).
		Update("spent", gorm.Expr("spent + ?", delta))
	if result.Error != nil {
		return r.handleDatabaseError("adjusting budget spend", result.Error, "")
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No budget matches transaction, amount unaccounted", map[string]any{
			"user_id":     key.UserID,
			"category_id": key.CategoryID,
			"month":       key.Month,
			"year":        key.Year,
		})
	}
	return nil
}

func (r *BudgetRepository) modelsToEntities(budgetModels []model.Budget) []*entity.Budget {
	budgets := make([]*entity.Budget, 0, len(budgetModels))
	for i := range budgetModels {
		budgets = append(budgets, r.modelToEntity(&budgetModels[i]))
	}
	return budgets
}
