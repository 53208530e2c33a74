package budget

import (
	"context"
	"errors"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
)

// Service implements the budget use case. Budgets are unique per
// (user, category, month, year); the spent counter is seeded and reconciled
// from the matching transactions.
type Service struct {
	budgets      persistence.BudgetRepository
	transactions persistence.TransactionRepository
	categories   persistence.CategoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a budget service instance
func NewService(
	budgets persistence.BudgetRepository,
	transactions persistence.TransactionRepository,
	categories persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.BudgetUseCase {
	return &Service{
		budgets:      budgets,
		transactions: transactions,
		categories:   categories,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create adds a budget. The spent counter starts at the sum of the
// transactions already matching the key, so a budget created mid-month is
// immediately consistent.
func (s *Service) Create(ctx context.Context, userID string, input usecase.CreateBudgetInput) (*entity.Budget, error) {
	category, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.VisibleTo(userID) {
		return nil, errs.ErrCategoryNotFound
	}

	budget, err := entity.NewBudget(userID, input.CategoryID, input.Amount, input.Month, input.Year, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if _, err := s.budgets.GetByKey(ctx, budget.Key()); err == nil {
		return nil, errs.NewBudgetConflictError(userID, input.CategoryID, input.Month, input.Year)
	} else if !errors.Is(err, errs.ErrBudgetNotFound) {
		return nil, err
	}

	spent, err := s.transactions.SumForBudgetKey(ctx, budget.Key())
	if err != nil {
		return nil, err
	}
	budget.Spent = spent

	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}

	s.logger.Info("Budget created", map[string]any{
		"budget_id":   budget.ID,
		"user_id":     userID,
		"category_id": budget.CategoryID,
		"month":       budget.Month,
		"year":        budget.Year,
		"amount":      budget.Amount,
		"spent":       budget.Spent,
	})
	return budget, nil
}

// List returns the user's budgets, optionally filtered by period
func (s *Service) List(ctx context.Context, userID string, month, year int) ([]*entity.Budget, error) {
	return s.budgets.ListByUser(ctx, userID, month, year)
}

// Latest returns the user's most recently created budgets
func (s *Service) Latest(ctx context.Context, userID string, limit int) ([]*entity.Budget, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.budgets.Latest(ctx, userID, limit)
}

// ListAll returns every budget (admin)
func (s *Service) ListAll(ctx context.Context) ([]*entity.Budget, error) {
	return s.budgets.ListAll(ctx)
}

// owned loads a budget and checks ownership.
func (s *Service) owned(ctx context.Context, userID, id string) (*entity.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, errs.ErrNotOwner
	}
	return budget, nil
}

// Update edits a budget. Moving it onto a key held by another budget of the
// same user conflicts; when the key changes, spent is recomputed from the
// transactions matching the new key.
func (s *Service) Update(ctx context.Context, userID, id string, input usecase.UpdateBudgetInput) (*entity.Budget, error) {
	budget, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	oldKey := budget.Key()

	if input.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if !category.VisibleTo(userID) {
			return nil, errs.ErrCategoryNotFound
		}
		budget.CategoryID = *input.CategoryID
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, errs.ErrNegativeAmount
		}
		budget.Amount = *input.Amount
	}
	if input.Month != nil {
		if *input.Month < 1 || *input.Month > 12 {
			return nil, errs.ErrInvalidPeriod
		}
		budget.Month = *input.Month
	}
	if input.Year != nil {
		if *input.Year < 2000 || *input.Year > 2100 {
			return nil, errs.ErrInvalidPeriod
		}
		budget.Year = *input.Year
	}

	newKey := budget.Key()
	if newKey != oldKey {
		existing, err := s.budgets.GetByKey(ctx, newKey)
		if err == nil && existing.ID != budget.ID {
			return nil, errs.NewBudgetConflictError(userID, newKey.CategoryID, newKey.Month, newKey.Year)
		} else if err != nil && !errors.Is(err, errs.ErrBudgetNotFound) {
			return nil, err
		}

		spent, err := s.transactions.SumForBudgetKey(ctx, newKey)
		if err != nil {
			return nil, err
		}
		budget.Spent = spent
	}

	budget.UpdatedAt = s.timeProvider.Now()
	if err := s.budgets.Update(ctx, budget); err != nil {
		return nil, err
	}

	s.logger.Info("Budget updated", map[string]any{
		"budget_id": budget.ID,
		"user_id":   userID,
		"amount":    budget.Amount,
		"spent":     budget.Spent,
	})
	return budget, nil
}

// Delete removes a budget
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	budget, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.budgets.Delete(ctx, budget.ID); err != nil {
		return err
	}

	s.logger.Info("Budget deleted", map[string]any{
		"budget_id": budget.ID,
		"user_id":   userID,
	})
	return nil
}

// Reconcile recomputes the spent counter from the matching transactions and
// stores the result. This is the explicit recovery path should the counter
// ever diverge from ground truth.
func (s *Service) Reconcile(ctx context.Context, userID, id string) (*entity.Budget, error) {
	budget, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	spent, err := s.transactions.SumForBudgetKey(ctx, budget.Key())
	if err != nil {
		return nil, err
	}

	if spent != budget.Spent {
		s.logger.Warn("Budget spent counter drifted from source", map[string]any{
			"budget_id": budget.ID,
			"user_id":   userID,
			"stored":    budget.Spent,
			"computed":  spent,
		})
	}

	budget.Spent = spent
	budget.UpdatedAt = s.timeProvider.Now()
	if err := s.budgets.Update(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}
