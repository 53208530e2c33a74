package user

import (
	"context"
	"fmt"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
)

// Service implements the admin account-review use case.
type Service struct {
	users        persistence.UserRepository
	mailer       coreport.Mailer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a user administration service instance
func NewService(
	users persistence.UserRepository,
	mailer coreport.Mailer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &Service{
		users:        users,
		mailer:       mailer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns all users
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	return s.users.List(ctx)
}

// Get returns one user by ID
func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update applies admin edits. An approval decision triggers a best-effort
// notification mail; a lost mail never fails the update.
func (s *Service) Update(ctx context.Context, id string, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if input.Username != nil && *input.Username != "" {
		user.Username = *input.Username
	}
	if input.ProfileURL != nil {
		user.ProfileURL = *input.ProfileURL
	}
	if input.Approved != nil {
		if !entity.ValidStatus(*input.Approved) {
			return nil, errs.ErrMissingFields
		}
		statusChanged = user.Approved != *input.Approved
		user.Approved = *input.Approved
	}

	user.UpdatedAt = s.timeProvider.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User updated by admin", map[string]any{
		"user_id":  user.ID,
		"approved": user.Approved,
	})

	if statusChanged {
		s.notifyDecision(ctx, user)
	}

	return user, nil
}

// Reject soft-deactivates an account. Accounts are never hard-deleted.
func (s *Service) Reject(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Approved = entity.StatusRejected
	user.UpdatedAt = s.timeProvider.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User rejected", map[string]any{"user_id": user.ID})
	s.notifyDecision(ctx, user)

	return user, nil
}

func (s *Service) notifyDecision(ctx context.Context, user *entity.User) {
	var subject, body string
	switch user.Approved {
	case entity.StatusApproved:
		subject = "Your account has been approved"
		body = fmt.Sprintf("Hi %s, your Smart Finance Tracker account is now active.", user.Username)
	case entity.StatusRejected:
		subject = "Your account has been deactivated"
		body = fmt.Sprintf("Hi %s, your Smart Finance Tracker account has been deactivated.", user.Username)
	default:
		return
	}

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		s.logger.Warn("Failed to send approval mail", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}
}
