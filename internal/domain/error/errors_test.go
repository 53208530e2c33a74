package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Missing fields", ErrMissingFields, CodeMissingFields},
		{"Negative amount", ErrNegativeAmount, CodeNegativeAmount},
		{"Invalid role", ErrInvalidRole, CodeInvalidRole},
		{"Invalid category type", ErrInvalidCategoryType, CodeInvalidCategoryType},
		{"Invalid period", ErrInvalidPeriod, CodeInvalidPeriod},
		{"Invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"Password mismatch maps to credentials code", ErrPasswordMismatch, CodeInvalidCredentials},
		{"Account rejected", ErrAccountRejected, CodeAccountRejected},
		{"Not owner", ErrNotOwner, CodeNotOwner},
		{"Default immutable", ErrDefaultImmutable, CodeDefaultImmutable},
		{"User not found", ErrUserNotFound, CodeUserNotFound},
		{"Category not found", ErrCategoryNotFound, CodeCategoryNotFound},
		{"Transaction not found", ErrTransactionNotFound, CodeTransactionNotFound},
		{"Budget not found", ErrBudgetNotFound, CodeBudgetNotFound},
		{"Duplicate budget", ErrDuplicateBudget, CodeDuplicateBudget},
		{"Duplicate category", ErrDuplicateCategory, CodeDuplicateCategory},
		{"Duplicate email", ErrDuplicateEmail, CodeDuplicateEmail},
		{"Unknown error falls through to internal", errors.New("boom"), CodeInternalServer},
		{"Wrapped error keeps its code", fmt.Errorf("context: %w", ErrBudgetNotFound), CodeBudgetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestErrorClassification(t *testing.T) {
	t.Run("IsNotFoundError", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrCategoryNotFound))
		assert.True(t, IsNotFoundError(ErrTransactionNotFound))
		assert.True(t, IsNotFoundError(ErrBudgetNotFound))
		assert.True(t, IsNotFoundError(ErrNotFound))
		assert.False(t, IsNotFoundError(ErrDuplicateBudget))
	})

	t.Run("IsConflictError", func(t *testing.T) {
		assert.True(t, IsConflictError(ErrDuplicateBudget))
		assert.True(t, IsConflictError(ErrDuplicateCategory))
		assert.True(t, IsConflictError(ErrDuplicateEmail))
		assert.False(t, IsConflictError(ErrUserNotFound))
	})

	t.Run("IsValidationError", func(t *testing.T) {
		assert.True(t, IsValidationError(ErrMissingFields))
		assert.True(t, IsValidationError(ErrNegativeAmount))
		assert.True(t, IsValidationError(ErrInvalidPeriod))
		assert.False(t, IsValidationError(ErrInvalidCredentials))
	})
}

func TestBudgetConflictError(t *testing.T) {
	err := NewBudgetConflictError("user1", "cat1", 3, 2024)

	t.Run("Matches the duplicate budget sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrDuplicateBudget)
		assert.Equal(t, CodeDuplicateBudget, ErrorCode(err))
		assert.True(t, IsConflictError(err))
	})

	t.Run("Message carries the key", func(t *testing.T) {
		assert.Contains(t, err.Error(), "cat1")
		assert.Contains(t, err.Error(), "3/2024")
	})

	t.Run("LogFields", func(t *testing.T) {
		var conflict *BudgetConflictError
		assert.True(t, errors.As(err, &conflict))

		fields := conflict.LogFields()
		assert.Equal(t, "user1", fields["user_id"])
		assert.Equal(t, "cat1", fields["category_id"])
		assert.Equal(t, 3, fields["month"])
		assert.Equal(t, 2024, fields["year"])
	})
}

func TestReconciliationError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ReconciliationError{
		TransactionID: "tx1",
		UserID:        "user1",
		CategoryID:    "cat1",
		Delta:         -42.50,
		Err:           cause,
	}

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Message carries the delta", func(t *testing.T) {
		assert.Contains(t, err.Error(), "tx1")
		assert.Contains(t, err.Error(), "-42.50")
	})

	t.Run("LogFields", func(t *testing.T) {
		fields := err.LogFields()
		assert.Equal(t, "tx1", fields["transaction_id"])
		assert.Equal(t, -42.50, fields["delta"])
		assert.Equal(t, "connection reset", fields["error"])
	})
}
