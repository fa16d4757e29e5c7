// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bcrypt ignores everything past the 72nd byte.
const maxPasswordBytes = 72

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account. The existence check, hashing and insert run in
// one transaction; a concurrent insert of the same email still surfaces as
// ErrAccountExists through the unique index.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if err := checkCredentialInput(input.Email, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	var created *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrAccountExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to find account by email")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during signup")
		}

		account := &entity.Account{
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account during signup")
		}

		created = account

		return nil
	})
	if err != nil {
		logFailure(srv.log(ctx), "Signup failed", err, slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Info("Signup completed", slog.Any("accountID", created.ID))

	return &usecase.SignupOutput{Account: created}, nil
}

// Signin exchanges a verified credential for a fresh access token.
func (srv *accountService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	if err := checkCredentialInput(input.Email, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting signin", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			err = errors.Wrap(domainerrors.ErrAccountNotFound, "signin failed")
		} else {
			err = errors.Wrap(err, "failed to find account by email")
		}
		logFailure(srv.log(ctx), "Signin failed", err, slog.String("email", input.Email))

		return nil, err
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Signin failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "signin failed")
	}

	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		logFailure(srv.log(ctx), "Signin failed", err, slog.Any("accountID", account.ID))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Signin succeeded", slog.Any("accountID", account.ID))

	return &usecase.SigninOutput{Token: token}, nil
}

func checkCredentialInput(email, password string) error {
	if email == "" || password == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}
	if len(password) > maxPasswordBytes {
		return errors.Wrap(domainerrors.ErrValidationFailed, "password exceeds 72 bytes")
	}

	return nil
}

// logFailure logs client errors at warn and everything else at error.
func logFailure(logger *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.Any("error", err))

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		logger.Warn(msg, attrs...)

		return
	}

	logger.Error(msg, attrs...)
}
