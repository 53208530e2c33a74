package entity

import (
	"strings"
	"time"

	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/google/uuid"
)

// CategoryType classifies a category (and its transactions) as money in or out
type CategoryType string

const (
	TypeIncome  CategoryType = "INCOME"
	TypeExpense CategoryType = "EXPENSE"
)

// ValidCategoryType reports whether t is INCOME or EXPENSE.
func ValidCategoryType(t CategoryType) bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is a labeled grouping of transactions. UserID is nil for the
// global system defaults, which are immutable and undeletable.
type Category struct {
	ID        string
	UserID    *string
	Name      string
	Type      CategoryType
	Icon      string
	Color     string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a user-owned category.
func NewCategory(userID, name string, catType CategoryType, icon, color string, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if userID == "" || name == "" {
		return nil, errs.ErrMissingFields
	}
	if !ValidCategoryType(catType) {
		return nil, errs.ErrInvalidCategoryType
	}
	if icon == "" {
		icon = "Tag"
	}
	if color == "" {
		color = "#4D96FF"
	}

	return &Category{
		ID:        uuid.NewString(),
		UserID:    &userID,
		Name:      name,
		Type:      catType,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// OwnedBy reports whether the category belongs to the given user.
func (c *Category) OwnedBy(userID string) bool {
	return c.UserID != nil && *c.UserID == userID
}

// VisibleTo reports whether the user may reference this category on a
// transaction: their own categories plus the global defaults.
func (c *Category) VisibleTo(userID string) bool {
	return c.IsDefault || c.OwnedBy(userID)
}

// DefaultCategory is one entry of the immutable seed configuration applied at
// startup.
type DefaultCategory struct {
	Name string
	Type CategoryType
	Icon string
}

// DefaultCategories is the system seed list. Seeded once with a nil owner;
// every user sees them and none may change them.
var DefaultCategories = []DefaultCategory{
	{Name: "Salary", Type: TypeIncome, Icon: "💼"},
	{Name: "Business", Type: TypeIncome, Icon: "📈"},
	{Name: "Investments", Type: TypeIncome, Icon: "🏦"},

	{Name: "Food", Type: TypeExpense, Icon: "🍔"},
	{Name: "Shopping", Type: TypeExpense, Icon: "🛍️"},
	{Name: "Fuel", Type: TypeExpense, Icon: "⛽"},
	{Name: "Bills", Type: TypeExpense, Icon: "💡"},
	{Name: "Entertainment", Type: TypeExpense, Icon: "🎬"},
}
