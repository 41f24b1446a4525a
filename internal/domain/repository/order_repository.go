package repository

import (
	"context"
	"time"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateBarcode is returned when the order barcode is already taken.
	ErrDuplicateBarcode = errors.New("order barcode already exists")
)

// OrderRepository defines order persistence.
type OrderRepository interface {
	// List returns one page of orders, newest first, with the total match count.
	List(ctx context.Context, filter entity.OrderFilter, page entity.PageRequest) ([]*entity.Order, int64, error)
	// ListAll returns up to limit orders newest first, filtered only by date.
	// A negative limit returns every matching order.
	ListAll(ctx context.Context, date *entity.Date, limit int) ([]*entity.Order, error)
	// FindByID loads the order with its driver and creator.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Order, error)
	BarcodeExists(ctx context.Context, barcode string) (bool, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Order, error)
	CountByDriver(ctx context.Context, driverID uuid.UUID) (int64, error)
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	// UpdateStatus and AssignDriver stamp updated_at with the caller's clock.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error
	AssignDriver(ctx context.Context, id uuid.UUID, driverID *uuid.UUID, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
