package entity

import (
	"strings"
	"time"

	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/google/uuid"
)

// Role is an access role carried by a user account
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ApprovalStatus is the admin review state of an account
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// User represents an account in the finance tracker. Accounts start PENDING
// and are reviewed by an admin; rejection deactivates the account but never
// removes it.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Roles        []Role
	Approved     ApprovalStatus
	ProfileURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a pending user with the given role.
func NewUser(username, email, passwordHash string, role Role, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || passwordHash == "" {
		return nil, errs.ErrMissingFields
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, errs.ErrInvalidRole
	}

	return &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Roles:        []Role{role},
		Approved:     StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user carries at least one of the required roles.
func (u *User) HasAnyRole(required ...Role) bool {
	for _, r := range required {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// IsRejected reports whether the account has been deactivated by an admin.
func (u *User) IsRejected() bool {
	return u.Approved == StatusRejected
}

// ValidStatus reports whether s is one of the known approval states.
func ValidStatus(s ApprovalStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
