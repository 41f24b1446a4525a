package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"courier/internal/delivery/api/response"
	"courier/internal/domain/entity"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ListOrdersQuery represents the query string of GET /orders
type ListOrdersQuery struct {
	PageQuery
	All           bool   `query:"all"`
	Barcode       string `query:"barcode"`
	RecipientName string `query:"recipient_name"`
	Status        string `query:"status" validate:"omitempty,oneof=entered assigned out_for_delivery delivered partial_return full_return"`
	City          string `query:"city"`
	DriverID      string `query:"driver_id" validate:"omitempty,uuid"`
	Date          string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	Barcode          string           `json:"barcode" validate:"required,max=100"`
	OrderDate        string           `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	RecipientName    string           `json:"recipient_name" validate:"required,max=200"`
	RecipientPhone   string           `json:"recipient_phone" validate:"required,max=50"`
	RecipientAddress string           `json:"recipient_address" validate:"required"`
	RecipientCity    string           `json:"recipient_city" validate:"required,max=100"`
	Notes            string           `json:"notes"`
	CODAmount        *decimal.Decimal `json:"cod_amount" validate:"required"`
}

// UpdateOrderRequest represents a partial order update; absent fields are kept
type UpdateOrderRequest struct {
	Barcode          *string          `json:"barcode" validate:"omitempty,min=1,max=100"`
	OrderDate        *string          `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	RecipientName    *string          `json:"recipient_name" validate:"omitempty,min=1,max=200"`
	RecipientPhone   *string          `json:"recipient_phone" validate:"omitempty,min=1,max=50"`
	RecipientAddress *string          `json:"recipient_address" validate:"omitempty,min=1"`
	RecipientCity    *string          `json:"recipient_city" validate:"omitempty,min=1,max=100"`
	Notes            *string          `json:"notes"`
	CODAmount        *decimal.Decimal `json:"cod_amount"`
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=entered assigned out_for_delivery delivered partial_return full_return"`
}

// AssignDriverRequest sets the driver; a null driver_id clears the assignment
type AssignDriverRequest struct {
	DriverID *string `json:"driver_id" validate:"omitempty,uuid"`
}

// BarcodeQuery represents the query string of the barcode lookups
type BarcodeQuery struct {
	Barcode string `query:"barcode" validate:"required"`
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	var query ListOrdersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid order query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	driverID, err := parseOptionalUUID("driver_id", query.DriverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	date, err := parseDate("date", query.Date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), usecase.ListOrdersInput{
		Filter: entity.OrderFilter{
			Barcode:       strings.TrimSpace(query.Barcode),
			RecipientName: strings.TrimSpace(query.RecipientName),
			Status:        entity.OrderStatus(query.Status),
			City:          strings.TrimSpace(query.City),
			DriverID:      driverID,
			Date:          date,
		},
		Page: query.PageRequest(),
		All:  query.All,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CheckBarcode handles GET /orders/check-barcode
func (h *OrderHandler) CheckBarcode(c echo.Context) error {
	var query BarcodeQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid barcode query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	exists, err := h.orderUC.CheckBarcode(c.Request().Context(), query.Barcode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists})
}

// FindByBarcode handles GET /orders/find-by-barcode
func (h *OrderHandler) FindByBarcode(c echo.Context) error {
	var query BarcodeQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid barcode query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.FindByBarcode(c.Request().Context(), query.Barcode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	orderDate, err := parseDate("order_date", req.OrderDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		Barcode:          strings.TrimSpace(req.Barcode),
		OrderDate:        orderDate,
		RecipientName:    strings.TrimSpace(req.RecipientName),
		RecipientPhone:   strings.TrimSpace(req.RecipientPhone),
		RecipientAddress: strings.TrimSpace(req.RecipientAddress),
		RecipientCity:    strings.TrimSpace(req.RecipientCity),
		Notes:            req.Notes,
		CODAmount:        *req.CODAmount,
		CreatedBy:        principal.UserID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, order, "Order created successfully")
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	changes := entity.OrderChanges{
		Barcode:          trimmed(req.Barcode),
		RecipientName:    trimmed(req.RecipientName),
		RecipientPhone:   trimmed(req.RecipientPhone),
		RecipientAddress: trimmed(req.RecipientAddress),
		RecipientCity:    trimmed(req.RecipientCity),
		Notes:            req.Notes,
		CODAmount:        req.CODAmount,
	}
	if req.OrderDate != nil {
		if changes.OrderDate, err = parseDate("order_date", *req.OrderDate); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), id, changes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, order, "Order updated successfully")
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, nil, "Order deleted successfully")
}

// UpdateStatus handles PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, order, "Order status updated successfully")
}

// AssignDriver handles PUT /orders/:id/assign-driver
func (h *OrderHandler) AssignDriver(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid driver assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	var driverID *uuid.UUID
	if req.DriverID != nil {
		if driverID, err = parseOptionalUUID("driver_id", *req.DriverID); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	order, err := h.orderUC.AssignDriver(c.Request().Context(), id, driverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Driver assigned successfully"
	if driverID == nil {
		message = "Driver unassigned successfully"
	}

	return response.SuccessWithMessage(c, http.StatusOK, order, message)
}

// Label handles GET /orders/:id/label
func (h *OrderHandler) Label(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.Label(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
