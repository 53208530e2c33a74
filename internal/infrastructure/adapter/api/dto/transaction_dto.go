package dto

import (
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// CreateTransactionRequest represents the API request for logging a
// transaction. Date is optional and defaults to now.
type CreateTransactionRequest struct {
	CategoryID string     `json:"category_id" binding:"required"`
	Type       string     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount     float64    `json:"amount" binding:"required,gte=0"`
	Date       *time.Time `json:"date"`
	Note       string     `json:"note"`
	Merchant   string     `json:"merchant"`
	RawText    string     `json:"raw_text"`
	AICategory string     `json:"ai_category"`
}

// UpdateTransactionRequest represents the API request for editing a
// transaction
type UpdateTransactionRequest struct {
	CategoryID *string    `json:"category_id"`
	Amount     *float64   `json:"amount"`
	Date       *time.Time `json:"date"`
	Note       *string    `json:"note"`
	Merchant   *string    `json:"merchant"`
}

// TransactionResponse represents the API view of a transaction
type TransactionResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	CategoryID string  `json:"category_id"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Note       string  `json:"note,omitempty"`
	Merchant   string  `json:"merchant,omitempty"`
	AICategory string  `json:"ai_category,omitempty"`
}

// NewTransactionResponse maps a transaction entity to its API view
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         tx.ID,
		UserID:     tx.UserID,
		CategoryID: tx.CategoryID,
		Type:       string(tx.Type),
		Amount:     tx.Amount,
		Date:       tx.Date.Format("2006-01-02T15:04:05Z07:00"),
		Note:       tx.Note,
		Merchant:   tx.Merchant,
		AICategory: tx.AICategory,
	}
}

// NewTransactionResponses maps a transaction slice to its API view
func NewTransactionResponses(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
