package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// rolesToColumn flattens the role list to its comma-separated column form
func rolesToColumn(roles []entity.Role) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ",")
}

// columnToRoles parses the comma-separated role column
func columnToRoles(column string) []entity.Role {
	parts := strings.Split(column, ",")
	roles := make([]entity.Role, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			roles = append(roles, entity.Role(p))
		}
	}
	return roles
}

// entityToModel converts a user entity to its database model
func (r *UserRepository) entityToModel(user *entity.User) *model.User {
	return &model.User{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Roles:        rolesToColumn(user.Roles),
		Approved:     string(user.Approved),
		ProfileURL:   user.ProfileURL,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		Roles:        columnToRoles(userModel.Roles),
		Approved:     entity.ApprovalStatus(userModel.Approved),
		ProfileURL:   userModel.ProfileURL,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating user", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	userModel := r.entityToModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "email = ?", strings.ToLower(email))
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, "")
	}

	return r.modelToEntity(&userModel), nil
}

// Update persists changes to an existing user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := r.entityToModel(user)

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":      userModel.Username,
			"email":         userModel.Email,
			"password_hash": userModel.PasswordHash,
			"roles":         userModel.Roles,
			"approved":      userModel.Approved,
			"profile_url":   userModel.ProfileURL,
			"updated_at":    userModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, "")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}
	return users, nil
}

// Engagement returns account-activity counts excluding admin accounts
func (r *UserRepository) Engagement(ctx context.Context, monthStart time.Time) (*entity.UserEngagement, error) {
	nonAdmin := r.db.WithContext(ctx).Model(&model.User{}).
		Where("roles NOT LIKE ?", "%"+string(entity.RoleAdmin)+"%")

	engagement := &entity.UserEngagement{}

	if err := nonAdmin.Session(&gorm.Session{}).Count(&engagement.Total).Error; err != nil {
		return nil, r.handleDatabaseError("counting users", err, "")
	}

	if err := nonAdmin.Session(&gorm.Session{}).
		Where("created_at >= ?", monthStart).
		Count(&engagement.NewThisMonth).Error; err != nil {
		return nil, r.handleDatabaseError("counting new users", err, "")
	}

	if err := nonAdmin.Session(&gorm.Session{}).
		Where("EXISTS (SELECT 1 FROM transactions WHERE transactions.user_id = users.id)").
		Count(&engagement.Active).Error; err != nil {
		return nil, r.handleDatabaseError("counting active users", err, "")
	}

	return engagement, nil
}
