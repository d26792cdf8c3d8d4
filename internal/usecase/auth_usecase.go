// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"roster/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new credential.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// SignInInput defines the data required to authenticate.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the credential and the session token minted for it.
// The credential's password hash is excluded from serialization by the entity.
type AuthOutput struct {
	Credential *entity.Credential
	Token      string
}

// AuthUsecase defines the authentication operations the delivery layer depends on.
type AuthUsecase interface {
	// SignUp creates a new credential and issues a session token.
	// Fails with ErrCredentialAlreadyExists when the email is taken.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn verifies a password against the stored credential and issues a
	// session token. Fails with ErrCredentialNotFound for unknown emails and
	// ErrInvalidCredentials on a password mismatch.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// WhoAmI loads the credential identified by an authenticated email.
	WhoAmI(ctx context.Context, email string) (*entity.Credential, error)
}
