// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new credential and issues a session token for it.
//
// The duplicate pre-check inside the transaction gives a friendly error on
// the common path, but the unique index on credentials.email is what actually
// holds the invariant: two concurrent signups racing on the same email both
// pass the pre-check, and the second insert fails with ErrDuplicateEmail,
// which is surfaced as the same AlreadyExists error.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	var created *entity.Credential
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.CredentialRepo()

		_, err := credRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrCredentialAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to look up credential")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
		}

		newCredential := &entity.Credential{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		if err := credRepo.Create(ctx, newCredential); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				// Lost the race against a concurrent signup; same outcome as the pre-check.
				return errors.Wrap(domainerrors.ErrCredentialAlreadyExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create credential")
		}

		created = newCredential

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	// Token signing happens outside the transaction; a signing failure leaves
	// the created credential in place, so a retry lands on AlreadyExists and
	// the user can sign in normally.
	token, err := srv.tokenService.Sign(created.Email, created.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token after signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenSignFailed, "failed to sign session token")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("credentialID", created.ID))

	return &usecase.AuthOutput{Credential: created, Token: token}, nil
}

// SignIn verifies a password against the stored credential and issues a session token.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting signin", slog.String("email", input.Email))

	// Single lookup; no transaction needed.
	credential, err := srv.credentialRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Signin for unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrCredentialNotFound, "signin failed")
		}

		return nil, errors.Wrap(err, "failed to look up credential")
	}

	// bcrypt comparison is CPU-bound and constant-time per the library contract.
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Signin password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "signin failed")
	}

	token, err := srv.tokenService.Sign(credential.Email, credential.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token during signin", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenSignFailed, "failed to sign session token")
	}

	srv.log(ctx).Debug("Signin completed", slog.Any("credentialID", credential.ID))

	return &usecase.AuthOutput{Credential: credential, Token: token}, nil
}

// WhoAmI loads the credential identified by an authenticated email.
func (srv *authService) WhoAmI(ctx context.Context, email string) (*entity.Credential, error) {
	credential, err := srv.credentialRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCredentialNotFound, "credential no longer exists")
		}

		return nil, errors.Wrap(err, "failed to look up credential")
	}

	return credential, nil
}
