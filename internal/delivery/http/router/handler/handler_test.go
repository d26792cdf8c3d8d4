package handler

import (
	"context"
	"io"
	"log/slog"
	"time"

	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/validator"
	"roster/internal/domain/entity"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

// --- Usecase mocks ---

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthUsecase) WhoAmI(ctx context.Context, email string) (*entity.Credential, error) {
	args := m.Called(ctx, email)
	if cred, ok := args.Get(0).(*entity.Credential); ok {
		return cred, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.ListUsersOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// --- Token service stub for the auth middleware ---

type stubTokenService struct {
	claims *service.SessionClaims
	err    error
}

func (s *stubTokenService) Sign(string, uuid.UUID) (string, error) {
	return "stub-token", nil
}

func (s *stubTokenService) Parse(string) (*service.SessionClaims, error) {
	return s.claims, s.err
}

func (s *stubTokenService) TTL() time.Duration {
	return 0
}

// newTestServer builds an echo instance with the same validator and error
// handling as the real server, so handler tests observe the wire behavior.
func newTestServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}
