package postgres

import (
	"context"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	q *query.Query
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		q: query.Use(db),
	}
}

// List returns every product, newest first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	p := repo.q.ProductModel

	productModels, err := p.WithContext(ctx).Order(p.CreatedAt.Desc()).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.q.ProductModel.WithContext(ctx).Create(productM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProductBarcode
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithMessage("Quantity and price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}
