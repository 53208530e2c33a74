package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	coremocks "github.com/Alokafernando/Smart-Personal-Finance-Tracker/mocks/port/core"
	persistencemocks "github.com/Alokafernando/Smart-Personal-Finance-Tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	users        *persistencemocks.MockUserRepository
	hasher       *coremocks.MockPasswordHasher
	tokens       *coremocks.MockTokenManager
	mailer       *coremocks.MockMailer
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      usecase.AuthUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	f := &authFixture{
		users:        persistencemocks.NewMockUserRepository(t),
		hasher:       coremocks.NewMockPasswordHasher(t),
		tokens:       coremocks.NewMockTokenManager(t),
		mailer:       coremocks.NewMockMailer(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.service = NewService(f.users, f.hasher, f.tokens, f.mailer, f.timeProvider, f.logger)
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	input := usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	t.Run("Creates a pending account and sends mail", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(nil, errs.ErrUserNotFound).Once()
		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" &&
				u.PasswordHash == "hashed" &&
				u.Approved == entity.StatusPending
		})).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		f.mailer.EXPECT().Send(mock.Anything, "alice@example.com", mock.Anything, mock.Anything).
			Return(nil).Once()

		user, err := f.service.Register(ctx, input, entity.RoleUser)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, user.Approved)
		assert.Equal(t, []entity.Role{entity.RoleUser}, user.Roles)
	})

	t.Run("A lost mail never fails registration", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(nil, errs.ErrUserNotFound).Once()
		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		f.mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp unreachable")).Once()
		f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		user, err := f.service.Register(ctx, input, entity.RoleUser)

		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(&entity.User{ID: "existing"}, nil).Once()

		user, err := f.service.Register(ctx, input, entity.RoleUser)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("Missing fields", func(t *testing.T) {
		f := newAuthFixture(t)

		user, err := f.service.Register(ctx, usecase.RegisterInput{Email: "a@b.com"}, entity.RoleUser)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("Admin role is honored", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).
			Return(nil, errs.ErrUserNotFound).Once()
		f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		f.mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()

		user, err := f.service.Register(ctx, input, entity.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	approved := func() *entity.User {
		return &entity.User{
			ID:           "user1",
			Email:        "alice@example.com",
			PasswordHash: "hashed",
			Roles:        []entity.Role{entity.RoleUser},
			Approved:     entity.StatusApproved,
		}
	}

	t.Run("Valid credentials issue a token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
			Return(approved(), nil).Once()
		f.hasher.EXPECT().Compare("hashed", "secret123").Return(nil).Once()
		f.tokens.EXPECT().Sign(mock.Anything).Return("jwt-token", nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := f.service.Login(ctx, "alice@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", result.AccessToken)
		assert.Equal(t, "user1", result.User.ID)
	})

	t.Run("Pending accounts may log in", func(t *testing.T) {
		f := newAuthFixture(t)

		pending := approved()
		pending.Approved = entity.StatusPending

		f.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(pending, nil).Once()
		f.hasher.EXPECT().Compare(mock.Anything, mock.Anything).Return(nil).Once()
		f.tokens.EXPECT().Sign(mock.Anything).Return("jwt-token", nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		result, err := f.service.Login(ctx, "alice@example.com", "secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("Rejected accounts are locked out", func(t *testing.T) {
		f := newAuthFixture(t)

		rejected := approved()
		rejected.Approved = entity.StatusRejected

		f.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(rejected, nil).Once()

		result, err := f.service.Login(ctx, "alice@example.com", "secret123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAccountRejected)
	})

	t.Run("Unknown email looks like bad credentials", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).
			Return(nil, errs.ErrUserNotFound).Once()

		result, err := f.service.Login(ctx, "ghost@example.com", "secret123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(approved(), nil).Once()
		f.hasher.EXPECT().Compare("hashed", "wrong").
			Return(errors.New("mismatch")).Once()

		result, err := f.service.Login(ctx, "alice@example.com", "wrong")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Replaces the hash after verifying the old password", func(t *testing.T) {
		f := newAuthFixture(t)

		user := &entity.User{ID: "user1", PasswordHash: "old-hash"}

		f.users.EXPECT().GetByID(mock.Anything, "user1").Return(user, nil).Once()
		f.hasher.EXPECT().Compare("old-hash", "current").Return(nil).Once()
		f.hasher.EXPECT().Hash("fresh").Return("new-hash", nil).Once()
		f.timeProvider.EXPECT().Now().Return(fixedTime)
		f.users.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.PasswordHash == "new-hash"
		})).Return(nil).Once()
		f.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := f.service.ChangePassword(ctx, "user1", "current", "fresh")

		assert.NoError(t, err)
	})

	t.Run("Wrong current password", func(t *testing.T) {
		f := newAuthFixture(t)

		f.users.EXPECT().GetByID(mock.Anything, "user1").
			Return(&entity.User{ID: "user1", PasswordHash: "old-hash"}, nil).Once()
		f.hasher.EXPECT().Compare("old-hash", "wrong").
			Return(errors.New("mismatch")).Once()

		err := f.service.ChangePassword(ctx, "user1", "wrong", "fresh")

		assert.ErrorIs(t, err, errs.ErrPasswordMismatch)
	})

	t.Run("Missing input", func(t *testing.T) {
		f := newAuthFixture(t)

		err := f.service.ChangePassword(ctx, "user1", "", "fresh")

		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})
}
