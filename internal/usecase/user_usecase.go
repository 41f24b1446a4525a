// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required for staff self-registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// CreateUserInput defines an admin-created account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// UserUsecase defines user administration and session issuance.
type UserUsecase interface {
	// Register creates a data_entry account.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	// DeleteUser refuses to delete the caller's own account and the bootstrap account.
	DeleteUser(ctx context.Context, actor entity.Principal, id uuid.UUID) error
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)

	// EnsureBootstrapAdmin seeds the configured administrator when absent.
	EnsureBootstrapAdmin(ctx context.Context) error
}
