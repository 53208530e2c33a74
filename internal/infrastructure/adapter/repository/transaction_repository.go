package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(tx *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:         tx.ID,
		UserID:     tx.UserID,
		CategoryID: tx.CategoryID,
		Type:       string(tx.Type),
		Amount:     tx.Amount,
		Date:       tx.Date,
		Note:       tx.Note,
		Merchant:   tx.Merchant,
		RawText:    tx.RawText,
		AICategory: tx.AICategory,
		CreatedAt:  tx.CreatedAt,
		UpdatedAt:  tx.UpdatedAt,
	}
}

func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:         txModel.ID,
		UserID:     txModel.UserID,
		CategoryID: txModel.CategoryID,
		Type:       entity.CategoryType(txModel.Type),
		Amount:     txModel.Amount,
		Date:       txModel.Date,
		Note:       txModel.Note,
		Merchant:   txModel.Merchant,
		RawText:    txModel.RawText,
		AICategory: txModel.AICategory,
		CreatedAt:  txModel.CreatedAt,
		UpdatedAt:  txModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, txID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Transaction not found", map[string]any{
			"transaction_id": txID,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": txID,
		"error":          err.Error(),
	})

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// applyFilter narrows a query to the filter's conditions. Zero values mean
// no condition.
func applyFilter(query *gorm.DB, filter persistence.TransactionFilter) *gorm.DB {
	if filter.UserID != "" {
		query = query.Where("transactions.user_id = ?", filter.UserID)
	}
	if filter.CategoryID != "" {
		query = query.Where("transactions.category_id = ?", filter.CategoryID)
	}
	if filter.Type != "" {
		query = query.Where("transactions.type = ?", string(filter.Type))
	}
	if filter.From != nil {
		query = query.Where("transactions.date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("transactions.date <= ?", *filter.To)
	}
	return query
}

// Create stores a new transaction
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txModel := r.entityToModel(tx)
	if err := r.db.WithContext(ctx).Create(txModel).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, tx.ID)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).First(&txModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, id)
	}
	return r.modelToEntity(&txModel), nil
}

// Update persists changes to an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	txModel := r.entityToModel(tx)

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", tx.ID).
		Updates(map[string]any{
			"category_id": txModel.CategoryID,
			"type":        txModel.Type,
			"amount":      txModel.Amount,
			"date":        txModel.Date,
			"note":        txModel.Note,
			"merchant":    txModel.Merchant,
			"updated_at":  txModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, tx.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// List returns transactions matching the filter, newest first
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Order("date DESC, created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var txModels []model.Transaction
	if err := query.Find(&txModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, "")
	}

	txs := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		txs = append(txs, r.modelToEntity(&txModels[i]))
	}
	return txs, nil
}

// SumByType sums amounts grouped by transaction type
func (r *TransactionRepository) SumByType(ctx context.Context, filter persistence.TransactionFilter) (entity.Summary, error) {
	var rows []struct {
		Type  string
		Total float64
	}

	err := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return entity.Summary{}, r.handleDatabaseError("summing transactions", err, "")
	}

	var summary entity.Summary
	for _, row := range rows {
		switch entity.CategoryType(row.Type) {
		case entity.TypeIncome:
			summary.Income = row.Total
		case entity.TypeExpense:
			summary.Expense = row.Total
		}
	}
	return summary, nil
}

// MonthlyTotals groups amounts by calendar month, chronological order
func (r *TransactionRepository) MonthlyTotals(ctx context.Context, filter persistence.TransactionFilter) ([]entity.MonthlyTotal, error) {
	var rows []struct {
		Year  int
		Month int
		Type  string
		Total float64
	}

	err := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Select("CAST(EXTRACT(YEAR FROM date) AS INTEGER) AS year, CAST(EXTRACT(MONTH FROM date) AS INTEGER) AS month, type, COALESCE(SUM(amount), 0) AS total").
		Group("year, month, type").
		Order("year ASC, month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("aggregating monthly totals", err, "")
	}

	totals := make([]entity.MonthlyTotal, 0, len(rows))
	index := make(map[[2]int]int)
	for _, row := range rows {
		key := [2]int{row.Year, row.Month}
		i, ok := index[key]
		if !ok {
			totals = append(totals, entity.MonthlyTotal{Year: row.Year, Month: row.Month})
			i = len(totals) - 1
			index[key] = i
		}
		switch entity.CategoryType(row.Type) {
		case entity.TypeIncome:
			totals[i].Income = row.Total
		case entity.TypeExpense:
			totals[i].Expense = row.Total
		}
	}
	return totals, nil
}

// CategoryTotals sums amounts per category, descending by total. Orphaned
// transactions resolve to fallbackName.
func (r *TransactionRepository) CategoryTotals(ctx context.Context, filter persistence.TransactionFilter, fallbackName string) ([]entity.CategoryTotal, error) {
	var rows []struct {
		CategoryID string
		Name       string
		Total      float64
	}

	err := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Select("transactions.category_id, COALESCE(categories.name, ?) AS name, COALESCE(SUM(transactions.amount), 0) AS total", fallbackName).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Group("transactions.category_id, categories.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("aggregating category totals", err, "")
	}

	totals := make([]entity.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.CategoryTotal{
			CategoryID: row.CategoryID,
			Name:       row.Name,
			Total:      row.Total,
		})
	}
	return totals, nil
}

// TopCategories returns the limit highest-total categories in the filtered set
func (r *TransactionRepository) TopCategories(ctx context.Context, filter persistence.TransactionFilter, limit int) ([]entity.CategoryTotal, error) {
	var rows []struct {
		CategoryID string
		Name       string
		Total      float64
	}

	err := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Select("transactions.category_id, COALESCE(categories.name, '') AS name, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Group("transactions.category_id, categories.name").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("aggregating top categories", err, "")
	}

	totals := make([]entity.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.CategoryTotal{
			CategoryID: row.CategoryID,
			Name:       row.Name,
			Total:      row.Total,
		})
	}
	return totals, nil
}

// SumForBudgetKey sums the amounts of the transactions matching a budget key
func (r *TransactionRepository) SumForBudgetKey(ctx context.Context, key entity.BudgetKey) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ?", key.UserID, key.CategoryID).
		Where("EXTRACT(MONTH FROM date) = ? AND EXTRACT(YEAR FROM date) = ?", key.Month, key.Year).
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing budget spend", err, "")
	}
	return total, nil
}
