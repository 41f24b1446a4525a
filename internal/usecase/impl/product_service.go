package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	productBarcodePrefix    = "PRD"
	productBarcodeSuffixLen = 10
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// ListProducts returns the catalogue, newest first.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct validates and stores a product, generating a barcode when none is given.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	var fieldErrs []domainerrors.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Quantity < 0 {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "quantity", Message: "quantity must not be negative"})
	}
	if input.Price.IsNegative() {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "price", Message: "price must not be negative"})
	}
	if !input.Unit.IsValid() {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "unit", Message: "unit must be one of PIECE, KG, CARTON"})
	}
	if len(fieldErrs) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrs...)
	}

	now := srv.now()
	product := &entity.Product{
		Name:       strings.TrimSpace(input.Name),
		Quantity:   input.Quantity,
		Price:      input.Price,
		Unit:       input.Unit,
		Barcode:    strings.TrimSpace(input.Barcode),
		ExpiryDate: input.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if product.Barcode == "" {
		product.Barcode = newProductBarcode()
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, mapRepoError(err,
			errorMapping{from: repository.ErrDuplicateProductBarcode, to: domainerrors.ErrProductBarcodeExists})
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("barcode", product.Barcode),
	)

	return product, nil
}

// newProductBarcode formats PRD-XXXXXXXXXX from a random identifier.
func newProductBarcode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:productBarcodeSuffixLen]

	return productBarcodePrefix + "-" + suffix
}
