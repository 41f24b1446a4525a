package usecase

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
)

// ListDriversInput selects drivers; All disables pagination.
type ListDriversInput struct {
	Filter entity.DriverFilter
	Page   entity.PageRequest
	All    bool
}

// CreateDriverInput defines a new driver.
type CreateDriverInput struct {
	DriverName     string
	DriverPhone    string
	DriverIDNumber string
	AssignedAreas  []string
}

// DriverUsecase defines driver management.
type DriverUsecase interface {
	ListDrivers(ctx context.Context, input ListDriversInput) (*entity.Page[*entity.Driver], error)
	GetDriver(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
	CreateDriver(ctx context.Context, input CreateDriverInput) (*entity.Driver, error)
	UpdateDriver(ctx context.Context, id uuid.UUID, changes entity.DriverChanges) (*entity.Driver, error)
	// DeleteDriver is refused while any order references the driver.
	DeleteDriver(ctx context.Context, id uuid.UUID) error
}
