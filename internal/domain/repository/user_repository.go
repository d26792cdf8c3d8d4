package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ListUsersFilter narrows and pages a user listing. Name and Email are
// case-insensitive substring filters; empty values match everything.
type ListUsersFilter struct {
	Name   string
	Email  string
	Offset int
	Limit  int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users matching the filter, sorted by name ascending.
	List(ctx context.Context, filter ListUsersFilter) ([]*entity.User, error)

	// Count returns the total number of users matching the filter, ignoring paging.
	Count(ctx context.Context, filter ListUsersFilter) (int64, error)

	// Create persists a new user entity. Returns ErrDuplicateEmail on an
	// email collision.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. Returns ErrUserNotFound if no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
