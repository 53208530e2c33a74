package usecase

import (
	"context"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	ProfileURL string
}

// LoginResult is a successful login: the account plus its access token.
type LoginResult struct {
	User        *entity.User
	AccessToken string
}

// AuthUseCase handles registration, login and self-service account
// operations.
type AuthUseCase interface {
	// Register creates a pending account with the given role. Admin accounts
	// can only be registered through the admin endpoint.
	Register(ctx context.Context, input RegisterInput, role entity.Role) (*entity.User, error)

	// Login verifies credentials and issues an access token. Rejected
	// accounts are refused.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// GetProfile returns the account identified by the token subject
	GetProfile(ctx context.Context, userID string) (*entity.User, error)

	// ChangePassword verifies the current password and stores a new hash
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
