package handler

import (
	"net/http"
	"strings"

	"courier/internal/delivery/api/response"
	"courier/internal/domain/entity"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the product catalogue
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name       string           `json:"name" validate:"required,max=200"`
	Quantity   *int             `json:"quantity" validate:"required,gte=0"`
	Price      *decimal.Decimal `json:"price" validate:"required"`
	Unit       string           `json:"unit" validate:"required,oneof=PIECE KG CARTON"`
	Barcode    string           `json:"barcode" validate:"max=100"`
	ExpiryDate string           `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if products == nil {
		products = []*entity.Product{}
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	expiry, err := parseDate("expiry_date", req.ExpiryDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:       strings.TrimSpace(req.Name),
		Quantity:   *req.Quantity,
		Price:      *req.Price,
		Unit:       entity.ProductUnit(req.Unit),
		Barcode:    strings.TrimSpace(req.Barcode),
		ExpiryDate: expiry,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, product, "Product created successfully")
}
