package usecase

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListUsersInput narrows and pages the user listing.
type ListUsersInput struct {
	Name  string
	Email string
	Page  int
	Limit int
}

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput defines the data for a user update. Empty fields keep
// their stored values.
type UpdateUserInput struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// --- Output DTOs ---

// ListUsersOutput carries one page of users plus the pagination summary.
type ListUsersOutput struct {
	TotalUsers  int64
	TotalPages  int
	CurrentPage int
	Users       []*entity.User
}

// UserUsecase defines the user CRUD operations the delivery layer depends on.
// This resource is deliberately independent from the authentication
// credentials: neither side validates against the other.
type UserUsecase interface {
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
