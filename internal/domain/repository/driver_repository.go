package repository

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDriverNotFound is returned when a driver is not found.
	ErrDriverNotFound = errors.New("driver not found")
	// ErrDuplicateDriverPhone is returned when the phone number is already taken.
	ErrDuplicateDriverPhone = errors.New("driver phone already exists")
	// ErrDriverInUse is returned when delete hits a referencing row.
	ErrDriverInUse = errors.New("driver is referenced by other records")
)

// DriverRepository defines driver persistence.
type DriverRepository interface {
	List(ctx context.Context, filter entity.DriverFilter, page *entity.PageRequest) ([]*entity.Driver, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
	// PhoneTaken reports whether another driver than exclude owns phone.
	PhoneTaken(ctx context.Context, phone string, exclude *uuid.UUID) (bool, error)
	Create(ctx context.Context, driver *entity.Driver) error
	Update(ctx context.Context, driver *entity.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
}
