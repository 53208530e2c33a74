package auth

import (
	"fmt"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenManager signs and verifies HMAC access tokens
type JWTTokenManager struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTTokenManager creates a new JWTTokenManager
func NewJWTTokenManager(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTTokenManager {
	return &JWTTokenManager{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Sign issues a token carrying the user's ID and roles
func (m *JWTTokenManager) Sign(user *entity.User) (string, error) {
	now := m.timeProvider.Now()

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns its claims
func (m *JWTTokenManager) Verify(tokenStr string) (*coreport.TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))
	if err != nil || !token.Valid {
		return nil, errs.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errs.ErrInvalidCredentials
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errs.ErrInvalidCredentials
	}

	tokenClaims := &coreport.TokenClaims{UserID: sub}
	if rawRoles, ok := claims["roles"].([]any); ok {
		for _, raw := range rawRoles {
			if role, ok := raw.(string); ok {
				tokenClaims.Roles = append(tokenClaims.Roles, entity.Role(role))
			}
		}
	}

	return tokenClaims, nil
}
