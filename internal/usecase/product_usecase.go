package usecase

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateProductInput defines a new product. Barcode is generated when empty.
type CreateProductInput struct {
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Unit       entity.ProductUnit
	Barcode    string
	ExpiryDate *entity.Date
}

// ProductUsecase defines the product catalogue.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
}
