package entity

import (
	"time"

	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/google/uuid"
)

// Transaction is a single income or expense entry logged by a user, either
// manually or from the receipt scanner.
type Transaction struct {
	ID         string
	UserID     string
	CategoryID string
	Type       CategoryType
	Amount     float64
	Date       time.Time
	Note       string
	Merchant   string
	RawText    string
	AICategory string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a transaction entry.
func NewTransaction(userID, categoryID string, txType CategoryType, amount float64, date time.Time, now time.Time) (*Transaction, error) {
	if userID == "" || categoryID == "" {
		return nil, errs.ErrMissingFields
	}
	if !ValidCategoryType(txType) {
		return nil, errs.ErrInvalidCategoryType
	}
	if amount < 0 {
		return nil, errs.ErrNegativeAmount
	}
	if date.IsZero() {
		date = now
	}

	return &Transaction{
		ID:         uuid.NewString(),
		UserID:     userID,
		CategoryID: categoryID,
		Type:       txType,
		Amount:     amount,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// BudgetKey returns the budget match key for this transaction: the owning
// user, the category, and the calendar month of the transaction date.
func (t *Transaction) BudgetKey() BudgetKey {
	return BudgetKey{
		UserID:     t.UserID,
		CategoryID: t.CategoryID,
		Month:      int(t.Date.Month()),
		Year:       t.Date.Year(),
	}
}
