// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

//nolint:gochecknoglobals
var userErrors = []errorMapping{
	{from: repository.ErrUserNotFound, to: domainerrors.ErrUserNotFound},
	{from: repository.ErrDuplicateEmail, to: domainerrors.ErrUserAlreadyExists},
	{from: repository.ErrUserInUse, to: domainerrors.ErrConflict.WithMessage("User is referenced by orders or delegate sheets")},
}

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	bootstrap    *config.BootstrapConfig
	bootstrapID  uuid.UUID
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}

	if params.Config != nil && params.Config.Bootstrap != nil {
		srv.bootstrap = params.Config.Bootstrap
		if id, err := uuid.Parse(strings.TrimSpace(params.Config.Bootstrap.UserID)); err == nil {
			srv.bootstrapID = id
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a data_entry account for self-registered staff.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	return srv.createUser(ctx, uuid.Nil, input.Username, input.Email, input.Password, entity.RoleDataEntry)
}

// CreateUser creates an account with an explicit role.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "role", Message: "role must be one of admin, data_entry, accounts"})
	}

	return srv.createUser(ctx, uuid.Nil, input.Username, input.Email, input.Password, input.Role)
}

func (srv *userService) createUser(ctx context.Context, id uuid.UUID, username, email, password string, role entity.Role) (*entity.User, error) {
	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithCause(err)
	}

	now := srv.now()
	user := &entity.User{
		ID:           id,
		Username:     strings.TrimSpace(username),
		Email:        normalizeEmail(email),
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapRepoError(err, userErrors...)
	}

	srv.log(ctx).Info("User created", slog.String("user_id", user.ID.String()), slog.String("role", role.String()))

	return user, nil
}

// Login verifies the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresAt:   srv.now().Add(srv.tokenService.GetAccessTokenDuration()),
		User:        user,
	}, nil
}

// ListUsers returns every account, newest first.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns one account.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, userErrors...)
	}

	return user, nil
}

// UpdateUser applies a partial update; a new password is re-hashed.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "role", Message: "role must be one of admin, data_entry, accounts"})
	}

	var hashedPassword string
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WithCause(err)
		}
		hashedPassword = hash
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err, userErrors...)
		}

		if input.Username != nil {
			user.Username = strings.TrimSpace(*input.Username)
		}
		if input.Email != nil {
			user.Email = normalizeEmail(*input.Email)
		}
		if input.Role != nil {
			user.Role = *input.Role
		}
		if hashedPassword != "" {
			user.PasswordHash = hashedPassword
		}
		user.UpdatedAt = srv.now()

		if err := userRepo.Update(ctx, user); err != nil {
			return mapRepoError(err, userErrors...)
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteUser removes an account other than the caller's own and the bootstrap admin.
func (srv *userService) DeleteUser(ctx context.Context, actor entity.Principal, id uuid.UUID) error {
	if id == actor.UserID {
		return domainerrors.ErrCannotDeleteSelf
	}
	if srv.bootstrapID != uuid.Nil && id == srv.bootstrapID {
		return domainerrors.ErrCannotDeleteBootstrap
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, userErrors...)
	}

	srv.log(ctx).Info("User deleted", slog.String("user_id", id.String()), slog.String("actor_id", actor.UserID.String()))

	return nil
}

// UserExists reports whether an account with the id exists.
func (srv *userService) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := srv.userRepo.Exists(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to check user")
	}

	return exists, nil
}

// EnsureBootstrapAdmin seeds the configured administrator when its id is unused.
func (srv *userService) EnsureBootstrapAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || srv.bootstrapID == uuid.Nil {
		srv.log(ctx).Info("Bootstrap admin not configured, skipping")

		return nil
	}

	exists, err := srv.userRepo.Exists(ctx, srv.bootstrapID)
	if err != nil {
		return errors.Wrap(err, "failed to check bootstrap admin")
	}
	if exists {
		return nil
	}

	_, err = srv.createUser(ctx, srv.bootstrapID, srv.bootstrap.Username, srv.bootstrap.Email, srv.bootstrap.Password, entity.RoleAdmin)
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		srv.log(ctx).Warn("Bootstrap admin email already taken by another account", slog.String("email", srv.bootstrap.Email))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to seed bootstrap admin")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
