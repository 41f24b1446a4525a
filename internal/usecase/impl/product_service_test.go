package impl

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"
	"courier/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.CreateProductInput
		repoErr   error
		callsRepo bool
		wantErr   error
	}{
		{
			name:      "generates barcode",
			input:     usecase.CreateProductInput{Name: "Rice", Quantity: 3, Price: decimal.NewFromInt(20), Unit: entity.ProductUnitKG},
			callsRepo: true,
		},
		{
			name:    "rejects unknown unit",
			input:   usecase.CreateProductInput{Name: "Rice", Unit: "BAG"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "rejects negative quantity",
			input:   usecase.CreateProductInput{Name: "Rice", Quantity: -1, Unit: entity.ProductUnitPiece},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:      "duplicate barcode",
			input:     usecase.CreateProductInput{Name: "Rice", Unit: entity.ProductUnitCarton, Barcode: "PRD-1"},
			repoErr:   repository.ErrDuplicateProductBarcode,
			callsRepo: true,
			wantErr:   domainerrors.ErrProductBarcodeExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mockRepo.NewMockProductRepository(t)
			srv := NewProductService(ProductServiceParams{ProductRepo: productRepo, Logger: newDiscardLogger()})
			ctx := context.Background()

			if tt.callsRepo {
				productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(tt.repoErr)
			}

			product, err := srv.CreateProduct(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Regexp(t, `^PRD-[0-9A-F]{10}$`, product.Barcode)
		})
	}
}
