package entity

import (
	"testing"
	"time"

	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("alice", "Alice@Example.com", "hashed-pw", RoleUser, fixedTime)

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email, "email must be lowercased")
		assert.Equal(t, []Role{RoleUser}, user.Roles)
		assert.Equal(t, StatusPending, user.Approved, "new accounts start pending review")
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Trims whitespace", func(t *testing.T) {
		user, err := NewUser("  bob  ", "  bob@example.com  ", "hash", RoleUser, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, "bob@example.com", user.Email)
	})

	t.Run("Missing username", func(t *testing.T) {
		user, err := NewUser("", "a@b.com", "hash", RoleUser, fixedTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("Missing email", func(t *testing.T) {
		user, err := NewUser("alice", "   ", "hash", RoleUser, fixedTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("Missing password hash", func(t *testing.T) {
		user, err := NewUser("alice", "a@b.com", "", RoleUser, fixedTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
	})

	t.Run("Invalid role", func(t *testing.T) {
		user, err := NewUser("alice", "a@b.com", "hash", Role("SUPERUSER"), fixedTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}

func TestUserRoles(t *testing.T) {
	t.Run("HasRole", func(t *testing.T) {
		user := &User{Roles: []Role{RoleUser}}

		assert.True(t, user.HasRole(RoleUser))
		assert.False(t, user.HasRole(RoleAdmin))
	})

	t.Run("HasAnyRole", func(t *testing.T) {
		user := &User{Roles: []Role{RoleUser}}

		assert.True(t, user.HasAnyRole(RoleAdmin, RoleUser))
		assert.False(t, user.HasAnyRole(RoleAdmin))
	})

	t.Run("IsAdmin", func(t *testing.T) {
		admin := &User{Roles: []Role{RoleUser, RoleAdmin}}
		regular := &User{Roles: []Role{RoleUser}}

		assert.True(t, admin.IsAdmin())
		assert.False(t, regular.IsAdmin())
	})
}

func TestApprovalStatus(t *testing.T) {
	t.Run("IsRejected", func(t *testing.T) {
		assert.True(t, (&User{Approved: StatusRejected}).IsRejected())
		assert.False(t, (&User{Approved: StatusApproved}).IsRejected())
		assert.False(t, (&User{Approved: StatusPending}).IsRejected())
	})

	t.Run("ValidStatus", func(t *testing.T) {
		assert.True(t, ValidStatus(StatusPending))
		assert.True(t, ValidStatus(StatusApproved))
		assert.True(t, ValidStatus(StatusRejected))
		assert.False(t, ValidStatus(ApprovalStatus("UNKNOWN")))
		assert.False(t, ValidStatus(ApprovalStatus("")))
	})
}
