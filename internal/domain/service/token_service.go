package service

import (
	"time"

	"neabi/internal/domain/entity"
)

// Claims is the identity a verified bearer token carries.
type Claims struct {
	UserID uint
	Email  string
	Role   entity.Role
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Verification is a pure function of (token, secret, clock): it embeds its own
// expiry and never consults the session ledger.
type TokenService interface {
	// Generate creates a signed token embedding the user's id, email and role
	// with a fixed validity window.
	Generate(user *entity.User) (string, error)

	// Validate checks the signature and expiry of a token string. Signature
	// mismatch and expiry are deliberately collapsed into one generic
	// invalid-token failure.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured validity window.
	TokenDuration() time.Duration
}
