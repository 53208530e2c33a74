package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingFields       = 4001
	CodeNegativeAmount      = 4002
	CodeInvalidID           = 4003
	CodeInvalidRole         = 4004
	CodeInvalidCategoryType = 4005
	CodeInvalidPeriod       = 4006
	CodeInvalidCredentials  = 4010
	CodeAccountRejected     = 4031
	CodeNotOwner            = 4032
	CodeDefaultImmutable    = 4033
	CodeUserNotFound        = 4040
	CodeCategoryNotFound    = 4041
	CodeTransactionNotFound = 4042
	CodeBudgetNotFound      = 4043
	CodeDuplicateBudget     = 4090
	CodeDuplicateCategory   = 4091
	CodeDuplicateEmail      = 4092

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrMissingFields is returned when a required request field is absent
	ErrMissingFields = errors.New("missing required fields")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidID is returned when an identifier has an invalid format
	ErrInvalidID = errors.New("invalid id format")

	// ErrInvalidRole is returned when a role value is not USER or ADMIN
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCategoryType is returned when a type is not INCOME or EXPENSE
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrInvalidPeriod is returned when a month or year is out of range
	ErrInvalidPeriod = errors.New("invalid month or year")

	// ErrInvalidCredentials is returned when login verification fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch is returned when the current password check fails
	ErrPasswordMismatch = errors.New("current password is incorrect")

	// ErrAccountRejected is returned when a rejected account attempts to log in
	ErrAccountRejected = errors.New("account has been rejected and cannot log in")

	// ErrNotOwner is returned when a user operates on a resource they do not own
	ErrNotOwner = errors.New("resource is owned by another user")

	// ErrDefaultImmutable is returned on any attempt to change a default category
	ErrDefaultImmutable = errors.New("default categories cannot be modified or deleted")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound is returned when the requested category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound is returned when the requested budget doesn't exist
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrDuplicateBudget is returned when a budget already covers the same
	// (user, category, month, year) key
	ErrDuplicateBudget = errors.New("budget already exists for this category and period")

	// ErrDuplicateCategory is returned when the user already has a category
	// with the same name, compared case-insensitively
	ErrDuplicateCategory = errors.New("category with this name already exists")

	// ErrDuplicateEmail is returned when the email is already registered
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when the store cannot be reached
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields):
		return CodeMissingFields
	case errors.Is(err, ErrNegativeAmount):
		return CodeNegativeAmount
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrInvalidRole):
		return CodeInvalidRole
	case errors.Is(err, ErrInvalidCategoryType):
		return CodeInvalidCategoryType
	case errors.Is(err, ErrInvalidPeriod):
		return CodeInvalidPeriod
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrPasswordMismatch):
		return CodeInvalidCredentials
	case errors.Is(err, ErrAccountRejected):
		return CodeAccountRejected
	case errors.Is(err, ErrNotOwner):
		return CodeNotOwner
	case errors.Is(err, ErrDefaultImmutable):
		return CodeDefaultImmutable
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrBudgetNotFound):
		return CodeBudgetNotFound
	case errors.Is(err, ErrDuplicateBudget):
		return CodeDuplicateBudget
	case errors.Is(err, ErrDuplicateCategory):
		return CodeDuplicateCategory
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	default:
		return CodeInternalServer
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrBudgetNotFound)
}

// IsConflictError checks if the error reports a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateBudget) ||
		errors.Is(err, ErrDuplicateCategory) ||
		errors.Is(err, ErrDuplicateEmail)
}

// IsValidationError checks if the error was caused by bad request input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidCategoryType) ||
		errors.Is(err, ErrInvalidPeriod)
}

// BudgetConflictError reports a duplicate budget attempt with its match key
type BudgetConflictError struct {
	UserID     string
	CategoryID string
	Month      int
	Year       int
}

// Error implements the error interface
func (e *BudgetConflictError) Error() string {
	return fmt.Sprintf("budget already exists for category %s in %d/%d",
		e.CategoryID, e.Month, e.Year)
}

// Is checks if the target error is an ErrDuplicateBudget
func (e *BudgetConflictError) Is(target error) bool {
	return target == ErrDuplicateBudget
}

// LogFields returns a map of fields for structured logging
func (e *BudgetConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "budget_conflict",
		"user_id":     e.UserID,
		"category_id": e.CategoryID,
		"month":       e.Month,
		"year":        e.Year,
		"error_code":  CodeDuplicateBudget,
	}
}

// NewBudgetConflictError creates a detailed duplicate budget error
func NewBudgetConflictError(userID, categoryID string, month, year int) error {
	return &BudgetConflictError{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Year:       year,
	}
}

// ReconciliationError reports a failed budget adjustment during a transaction
// write. The surrounding database transaction is rolled back when this is
// returned.
type ReconciliationError struct {
	TransactionID string
	UserID        string
	CategoryID    string
	Delta         float64
	Err           error
}

// Error implements the error interface
func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("budget reconciliation failed for transaction %s (user: %s, category: %s, delta: %.2f): %v",
		e.TransactionID, e.UserID, e.CategoryID, e.Delta, e.Err)
}

// Unwrap returns the underlying error
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReconciliationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "reconciliation_error",
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"category_id":    e.CategoryID,
		"delta":          e.Delta,
		"error":          e.Err.Error(),
	}
}
