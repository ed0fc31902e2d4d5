// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "atlas/internal/delivery/context"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. A username or email collision surfaces as a
// conflict from the repository and is returned untouched.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:       input.Username,
		Email:          input.Email,
		Password:       hashedPassword,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		AdditionalName: input.AdditionalName,
		PhoneNumber:    input.PhoneNumber,
		DateOfBirth:    input.DateOfBirth,
		AvatarImage:    input.AvatarImage,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("User registered", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login verifies the credentials and issues a bearer token. The identifier is
// matched against both username and email. Unknown identifier and wrong
// password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	var loginUser *entity.User

	// Read from primary in a short transaction so a just-registered account
	// can log in before replicas catch up.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		loginUser, findErr = repoFactory.UserRepo().FindByLogin(ctx, input.Login)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(findErr, "failed to find user by login")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("login", input.Login), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loginUser.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("login", input.Login))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokenService.Generate(loginUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", loginUser.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// List returns users matching the search/pagination parameters.
func (srv *userService) List(ctx context.Context, params repository.ListParams) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetByID returns a single user.
func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessagef("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateMe applies a partial update to the caller's own account. A supplied
// password is re-hashed before it is stored.
func (srv *userService) UpdateMe(ctx context.Context, current *entity.User, input usecase.UpdateUserInput) (*entity.User, error) {
	var updatedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, current.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WithMessagef("user not found")
			}

			return errors.Wrap(err, "failed to load user for update")
		}

		if input.Password != nil {
			hashed, hashErr := srv.hasher.Hash(*input.Password)
			if hashErr != nil {
				return errors.Wrap(hashErr, "failed to hash password during update")
			}
			user.Password = hashed
		}
		applyUserUpdate(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.Any("userID", current.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", updatedUser.ID))

	return updatedUser, nil
}

// Delete removes an account. A user can only delete themselves: an unknown id
// is a 404, another user's id is a 403.
func (srv *userService) Delete(ctx context.Context, current *entity.User, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		target, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WithMessagef("user not found")
			}

			return errors.Wrap(err, "failed to load user for delete")
		}

		if target.ID != current.ID {
			return domainerrors.ErrForbidden.WithMessagef("users can only delete their own account")
		}

		return userRepo.Delete(ctx, target.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("User delete failed", slog.Any("userID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

func applyUserUpdate(user *entity.User, input usecase.UpdateUserInput) {
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.AdditionalName != nil {
		user.AdditionalName = input.AdditionalName
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.AvatarImage != nil {
		user.AvatarImage = input.AvatarImage
	}
}
