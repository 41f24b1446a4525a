package repository

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateProductBarcode is returned when the product barcode is already taken.
var ErrDuplicateProductBarcode = errors.New("product barcode already exists")

// ProductRepository defines product persistence.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
}
