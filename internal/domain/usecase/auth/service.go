package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
)

// Service implements registration, login and self-service account
// operations.
type Service struct {
	users        persistence.UserRepository
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenManager
	mailer       coreport.Mailer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates an auth service instance
func NewService(
	users persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenManager,
	mailer coreport.Mailer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &Service{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		mailer:       mailer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a pending account. Registration succeeds even when the
// notification mail cannot be sent.
func (s *Service) Register(ctx context.Context, input usecase.RegisterInput, role entity.Role) (*entity.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, errs.ErrMissingFields
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	user, err := entity.NewUser(input.Username, input.Email, hash, role, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	user.ProfileURL = input.ProfileURL

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    role,
	})

	// Best effort: a lost mail must never fail registration.
	if err := s.mailer.Send(ctx, user.Email,
		"Welcome to Smart Finance Tracker",
		fmt.Sprintf("Hi %s, your account was created and is waiting for admin approval.", user.Username),
	); err != nil {
		s.logger.Warn("Failed to send registration mail", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Rejected accounts
// cannot log in; pending accounts can, with limited frontend capabilities.
func (s *Service) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	if email == "" || password == "" {
		return nil, errs.ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsRejected() {
		return nil, errs.ErrAccountRejected
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return &usecase.LoginResult{User: user, AccessToken: token}, nil
}

// GetProfile returns the account identified by the token subject
func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ChangePassword verifies the current password and stores a new hash
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return errs.ErrMissingFields
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, currentPassword); err != nil {
		return errs.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	user.PasswordHash = hash
	user.UpdatedAt = s.timeProvider.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Password changed", map[string]any{"user_id": userID})
	return nil
}
