package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload carried by a session token. Tokens are
// self-contained: the server keeps no session state, so a token is valid
// until its expiry and cannot be revoked earlier.
type SessionClaims struct {
	Email  string    `json:"email"`
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Sign mints a token over {email, id} with the configured TTL.
	Sign(email string, userID uuid.UUID) (string, error)

	// Parse verifies the signature and expiry of a token and returns its claims.
	Parse(tokenString string) (*SessionClaims, error)

	// TTL returns the configured validity window for issued tokens.
	TTL() time.Duration
}
