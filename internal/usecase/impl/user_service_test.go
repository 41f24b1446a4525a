package impl

import (
	"context"
	"testing"
	"time"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      *userService
	txManager    *mockRepo.MockTransactionManager
	repos        *repoSet
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoSet(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     repos.userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*userService)
	srv.now = fixedClock

	return userServiceFixtures{
		service:      srv,
		txManager:    txManager,
		repos:        repos,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "clerk",
		Email:    "Clerk@Example.com ",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.repos.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "clerk@example.com", user.Email)
	assert.Equal(t, entity.RoleDataEntry, user.Role)
	assert.Equal(t, "hashed_password", user.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)
	fx.repos.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "a", Email: "a@b.c", Password: "Password123!"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUser(context.Background(), usecase.CreateUserInput{Email: "a@b.c", Role: "root"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: "hashed", Role: entity.RoleAccounts}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.repos.userRepo.EXPECT().FindByEmail(ctx, "a@b.c").Return(user, nil)
		fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateAccessToken(user.ID, "accounts").Return("token", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Hour)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "A@B.C", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "token", out.AccessToken)
		assert.Equal(t, fixedNow.Add(time.Hour), out.ExpiresAt)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.repos.userRepo.EXPECT().FindByEmail(ctx, "a@b.c").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@b.c", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.repos.userRepo.EXPECT().FindByEmail(ctx, "x@b.c").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "x@b.c", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()
	password := "NewPassword1!"
	role := entity.RoleAdmin

	fx.hasher.EXPECT().Hash(password).Return("new_hash", nil)
	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, PasswordHash: "old", Role: entity.RoleDataEntry}, nil)
	fx.repos.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new_hash" && u.Role == entity.RoleAdmin })).
		Return(nil)

	user, err := fx.service.UpdateUser(ctx, id, usecase.UpdateUserInput{Password: &password, Role: &role})

	require.NoError(t, err)
	assert.Equal(t, fixedNow, user.UpdatedAt)
}

func TestUserService_DeleteUser(t *testing.T) {
	bootstrapID := uuid.MustParse("00000000-0000-7000-8000-000000000001")
	actor := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}

	t.Run("self", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.DeleteUser(context.Background(), actor, actor.UserID)

		assert.ErrorIs(t, err, domainerrors.ErrCannotDeleteSelf)
	})

	t.Run("bootstrap", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.DeleteUser(context.Background(), actor, bootstrapID)

		assert.ErrorIs(t, err, domainerrors.ErrCannotDeleteBootstrap)
		assert.NotEqual(t, domainerrors.ErrCannotDeleteSelf.Message(), domainerrors.ErrCannotDeleteBootstrap.Message())
	})

	t.Run("referenced user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.repos.userRepo.EXPECT().Delete(ctx, id).Return(repository.ErrUserInUse)

		err := fx.service.DeleteUser(ctx, actor, id)

		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.repos.userRepo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, fx.service.DeleteUser(ctx, actor, id))
	})
}

func TestUserService_EnsureBootstrapAdmin(t *testing.T) {
	bootstrapID := uuid.MustParse("00000000-0000-7000-8000-000000000001")

	t.Run("seeds missing admin", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.repos.userRepo.EXPECT().Exists(ctx, bootstrapID).Return(false, nil)
		fx.hasher.EXPECT().Hash("ChangeMe123!").Return("hashed", nil)
		fx.repos.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.ID == bootstrapID && u.Role == entity.RoleAdmin })).
			Return(nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.repos.userRepo.EXPECT().Exists(ctx, bootstrapID).Return(true, nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.repos.userRepo.EXPECT().Exists(ctx, bootstrapID).Return(false, errors.New("db down"))

		assert.Error(t, fx.service.EnsureBootstrapAdmin(ctx))
	})
}
