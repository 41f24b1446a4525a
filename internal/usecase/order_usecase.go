package usecase

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListOrdersInput selects orders. With All set, only Filter.Date applies and the
// result is capped instead of paginated.
type ListOrdersInput struct {
	Filter entity.OrderFilter
	Page   entity.PageRequest
	All    bool
}

// CreateOrderInput defines a new order. OrderDate defaults to today.
type CreateOrderInput struct {
	Barcode          string
	OrderDate        *entity.Date
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	RecipientCity    string
	Notes            string
	CODAmount        decimal.Decimal
	CreatedBy        uuid.UUID
}

// OrderUsecase defines order intake and lifecycle operations.
type OrderUsecase interface {
	ListOrders(ctx context.Context, input ListOrdersInput) (*entity.Page[*entity.Order], error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Order, error)
	CheckBarcode(ctx context.Context, barcode string) (bool, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, changes entity.OrderChanges) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	// AssignDriver sets the driver, or clears it when driverID is nil.
	AssignDriver(ctx context.Context, id uuid.UUID, driverID *uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	// Label renders the order barcode as a PNG QR code.
	Label(ctx context.Context, id uuid.UUID) ([]byte, error)
}
