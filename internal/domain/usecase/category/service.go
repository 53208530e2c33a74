package category

import (
	"context"
	"errors"
	"strings"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
)

// Service implements the category use case. Default categories are a shared
// immutable set; user categories are unique per user by case-insensitive
// name.
type Service struct {
	categories   persistence.CategoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a category service instance
func NewService(
	categories persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CategoryUseCase {
	return &Service{
		categories:   categories,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns the defaults plus the user's own categories
func (s *Service) List(ctx context.Context, userID string) ([]*entity.Category, error) {
	return s.categories.ListVisible(ctx, userID)
}

// Create adds a user-owned category; a duplicate name (case-insensitive)
// conflicts.
func (s *Service) Create(ctx context.Context, userID string, input usecase.CreateCategoryInput) (*entity.Category, error) {
	category, err := entity.NewCategory(userID, input.Name, input.Type, input.Icon, input.Color, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.FindByName(ctx, userID, category.Name); err == nil {
		return nil, errs.ErrDuplicateCategory
	} else if !errors.Is(err, errs.ErrCategoryNotFound) {
		return nil, err
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created", map[string]any{
		"category_id": category.ID,
		"user_id":     userID,
		"name":        category.Name,
		"type":        category.Type,
	})
	return category, nil
}

// editable loads a category and checks it may be changed by the user:
// defaults are immutable and undeletable regardless of requester, and only
// the owner may touch their own.
func (s *Service) editable(ctx context.Context, userID, id string) (*entity.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.IsDefault {
		return nil, errs.ErrDefaultImmutable
	}
	if !category.OwnedBy(userID) {
		return nil, errs.ErrNotOwner
	}
	return category, nil
}

// Update edits a user-owned category
func (s *Service) Update(ctx context.Context, userID, id string, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.editable(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errs.ErrMissingFields
		}
		if !strings.EqualFold(name, category.Name) {
			if _, err := s.categories.FindByName(ctx, userID, name); err == nil {
				return nil, errs.ErrDuplicateCategory
			} else if !errors.Is(err, errs.ErrCategoryNotFound) {
				return nil, err
			}
		}
		category.Name = name
	}
	if input.Type != nil {
		if !entity.ValidCategoryType(*input.Type) {
			return nil, errs.ErrInvalidCategoryType
		}
		category.Type = *input.Type
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.Color != nil {
		category.Color = *input.Color
	}

	category.UpdatedAt = s.timeProvider.Now()
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category updated", map[string]any{
		"category_id": category.ID,
		"user_id":     userID,
	})
	return category, nil
}

// Delete removes a user-owned category
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	category, err := s.editable(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, category.ID); err != nil {
		return err
	}

	s.logger.Info("Category deleted", map[string]any{
		"category_id": category.ID,
		"user_id":     userID,
		"name":        category.Name,
	})
	return nil
}
