package usecase

import (
	"context"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// UpdateUserInput carries optional admin edits to an account. Nil fields are
// left untouched.
type UpdateUserInput struct {
	Username   *string
	ProfileURL *string
	Approved   *entity.ApprovalStatus
}

// UserUseCase is the admin view over accounts.
type UserUseCase interface {
	// List returns all users
	List(ctx context.Context) ([]*entity.User, error)

	// Get returns one user by ID
	Get(ctx context.Context, id string) (*entity.User, error)

	// Update applies admin edits; approval decisions trigger a best-effort
	// notification mail
	Update(ctx context.Context, id string, input UpdateUserInput) (*entity.User, error)

	// Reject soft-deactivates an account (approval → REJECTED). Accounts are
	// never hard-deleted.
	Reject(ctx context.Context, id string) (*entity.User, error)
}
