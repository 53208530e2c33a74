package core

import "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"

// TokenClaims is the verified content of an access token.
type TokenClaims struct {
	UserID string
	Roles  []entity.Role
}

// TokenManager signs and verifies access tokens. Token issuance itself is an
// external collaborator; the domain only depends on this port.
type TokenManager interface {
	Sign(user *entity.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
