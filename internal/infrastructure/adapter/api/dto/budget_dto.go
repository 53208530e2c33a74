package dto

import (
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// CreateBudgetRequest represents the API request for creating a budget
type CreateBudgetRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gte=0"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	Year       int     `json:"year" binding:"required"`
}

// UpdateBudgetRequest represents the API request for editing a budget
type UpdateBudgetRequest struct {
	CategoryID *string  `json:"category_id"`
	Amount     *float64 `json:"amount"`
	Month      *int     `json:"month"`
	Year       *int     `json:"year"`
}

// BudgetResponse represents the API view of a budget
type BudgetResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
}

// NewBudgetResponse maps a budget entity to its API view
func NewBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID,
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Spent:      budget.Spent,
		Remaining:  budget.Remaining(),
		Month:      budget.Month,
		Year:       budget.Year,
	}
}

// NewBudgetResponses maps a budget slice to its API view
func NewBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, NewBudgetResponse(b))
	}
	return out
}
