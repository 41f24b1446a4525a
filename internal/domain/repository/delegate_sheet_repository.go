package repository

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDelegateSheetNotFound is returned when a sheet is not found.
	ErrDelegateSheetNotFound = errors.New("delegate sheet not found")
	// ErrDuplicateSheetBarcode is returned when the sheet barcode is already taken.
	ErrDuplicateSheetBarcode = errors.New("delegate sheet barcode already exists")
)

// DelegateSheetRepository defines delegate sheet persistence.
type DelegateSheetRepository interface {
	List(ctx context.Context, filter entity.DelegateSheetFilter, page entity.PageRequest) ([]*entity.DelegateSheet, int64, error)
	ListAll(ctx context.Context) ([]*entity.DelegateSheet, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DelegateSheet, error)
	Create(ctx context.Context, sheet *entity.DelegateSheet) error
	CreateLinks(ctx context.Context, links []*entity.DelegateSheetOrder) error
	// FindOrders follows the link table and returns the linked orders.
	FindOrders(ctx context.Context, sheetID uuid.UUID) ([]*entity.Order, error)
}
