// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential exists for a lookup key.
var ErrCredentialNotFound = errors.New("credential not found")

// ErrDuplicateEmail is returned when an insert collides with the unique email
// constraint. The storage-layer constraint is the source of truth for the
// one-credential-per-email invariant; any application-level pre-check is only
// a fast path for a friendlier error.
var ErrDuplicateEmail = errors.New("email already registered")

// CredentialRepository defines persistence operations for authentication credentials.
type CredentialRepository interface {
	// FindByEmail retrieves a credential by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Create persists a new credential. The storage assigns the ID.
	// Returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, cred *entity.Credential) error
}
