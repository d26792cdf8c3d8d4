package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns one page of users matching the optional name and email
// filters, together with the pagination summary.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}

	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	filter := repository.ListUsersFilter{
		Name:   input.Name,
		Email:  input.Email,
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	total, err := srv.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	if len(users) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoUsersFound, "no users matched the query")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	srv.log(ctx).Debug("Listed users",
		slog.Int64("total", total),
		slog.Int("page", page),
		slog.Int("limit", limit),
	)

	return &usecase.ListUsersOutput{
		TotalUsers:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Users:       users,
	}, nil
}

// CreateUser creates a user record. The email must not be taken by another
// user; the unique index on users.email backs the pre-check under races.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Creating user", slog.String("email", input.Email))

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already taken")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up user")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already taken")
			}

			return errors.Wrap(err, "failed to create user")
		}

		created = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create user transaction")
	}

	return created, nil
}

// UpdateUser applies the non-empty fields of the input to an existing user.
// The read and the write share one transaction so a concurrent delete cannot
// resurrect the row.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", input.ID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user does not exist")
			}

			return errors.Wrap(err, "failed to look up user")
		}

		if input.Name != "" {
			user.Name = input.Name
		}
		if input.Email != "" {
			user.Email = input.Email
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already taken")
			}

			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.Any("userID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update user transaction")
	}

	return updated, nil
}

// DeleteUser removes a user by ID.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user does not exist")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
