package usecase

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateDelegateSheetInput defines a sheet handed to one driver.
// SheetBarcode and TotalAmount are derived when empty.
type CreateDelegateSheetInput struct {
	DriverID     uuid.UUID
	SheetBarcode string
	TotalAmount  *decimal.Decimal
	OrderIDs     []uuid.UUID
	CreatedBy    uuid.UUID
}

// DelegateSheetUsecase defines delegate sheet operations.
type DelegateSheetUsecase interface {
	ListDelegateSheets(ctx context.Context, filter entity.DelegateSheetFilter, page entity.PageRequest) (*entity.Page[*entity.DelegateSheet], error)
	GetDelegateSheet(ctx context.Context, id uuid.UUID) (*entity.DelegateSheet, error)
	// CreateDelegateSheet writes the sheet and its order links atomically.
	CreateDelegateSheet(ctx context.Context, input CreateDelegateSheetInput) (*entity.DelegateSheet, error)
	ListSheetOrders(ctx context.Context, id uuid.UUID) ([]*entity.Order, error)
	Label(ctx context.Context, id uuid.UUID) ([]byte, error)
}
