package impl

import (
	"context"
	"time"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type mockCredentialRepository struct {
	mock.Mock
}

func (m *mockCredentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	args := m.Called(ctx, email)
	if cred, ok := args.Get(0).(*entity.Credential); ok {
		return cred, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCredentialRepository) Create(ctx context.Context, cred *entity.Credential) error {
	args := m.Called(ctx, cred)

	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, filter repository.ListUsersFilter) ([]*entity.User, error) {
	args := m.Called(ctx, filter)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context, filter repository.ListUsersFilter) (int64, error) {
	args := m.Called(ctx, filter)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// --- Service mocks ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Sign(email string, userID uuid.UUID) (string, error) {
	args := m.Called(email, userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Parse(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.SessionClaims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) TTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// --- Transaction plumbing ---

// fakeRepositoryFactory hands the test's mocks to the transactional callback.
type fakeRepositoryFactory struct {
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
}

func (f *fakeRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepositoryFactory) CredentialRepo() repository.CredentialRepository {
	return f.credentialRepo
}

// fakeTransactionManager executes the callback immediately without a real
// transaction, so the services can be tested against mocks alone.
type fakeTransactionManager struct {
	factory repository.RepositoryFactory
}

func (tm *fakeTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}
