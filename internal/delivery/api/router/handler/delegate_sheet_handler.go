package handler

import (
	"net/http"
	"strings"

	"courier/internal/delivery/api/response"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DelegateSheetHandlerParams holds dependencies for DelegateSheetHandler, injected by Fx.
type DelegateSheetHandlerParams struct {
	fx.In

	SheetUC usecase.DelegateSheetUsecase
}

// DelegateSheetHandler holds dependencies for delegate sheet handlers
type DelegateSheetHandler struct {
	sheetUC usecase.DelegateSheetUsecase
}

// NewDelegateSheetHandler is the constructor for DelegateSheetHandler
func NewDelegateSheetHandler(params DelegateSheetHandlerParams) *DelegateSheetHandler {
	return &DelegateSheetHandler{sheetUC: params.SheetUC}
}

// ListDelegateSheetsQuery represents the query string of GET /delegate-sheets
type ListDelegateSheetsQuery struct {
	PageQuery
	DriverID string `query:"driver_id" validate:"omitempty,uuid"`
	Barcode  string `query:"barcode"`
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateDelegateSheetRequest represents the request body for creating a delegate sheet
type CreateDelegateSheetRequest struct {
	DriverID     string           `json:"driver_id" validate:"required,uuid"`
	SheetBarcode string           `json:"sheet_barcode" validate:"max=100"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	OrderIDs     []string         `json:"order_ids" validate:"required,min=1,dive,uuid"`
}

// ListDelegateSheets handles GET /delegate-sheets
func (h *DelegateSheetHandler) ListDelegateSheets(c echo.Context) error {
	var query ListDelegateSheetsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid delegate sheet query")
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

	page, err := h.sheetUC.ListDelegateSheets(c.Request().Context(), entity.DelegateSheetFilter{
		DriverID: driverID,
		Barcode:  strings.TrimSpace(query.Barcode),
		Date:     date,
	}, query.PageRequest())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page)
}

// GetDelegateSheet handles GET /delegate-sheets/:id
func (h *DelegateSheetHandler) GetDelegateSheet(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sheet, err := h.sheetUC.GetDelegateSheet(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sheet)
}

// ListSheetOrders handles GET /delegate-sheets/:id/orders
func (h *DelegateSheetHandler) ListSheetOrders(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.sheetUC.ListSheetOrders(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return response.Success(c, http.StatusOK, orders)
}

// CreateDelegateSheet handles POST /delegate-sheets
func (h *DelegateSheetHandler) CreateDelegateSheet(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateDelegateSheetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid delegate sheet input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError(domainerrors.FieldError{Field: "driver_id", Message: "must be a valid UUID"}))
	}

	orderIDs := make([]uuid.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.NewValidationError(domainerrors.FieldError{Field: "order_ids", Message: "must contain valid UUIDs"}))
		}
		orderIDs = append(orderIDs, id)
	}

	sheet, err := h.sheetUC.CreateDelegateSheet(c.Request().Context(), usecase.CreateDelegateSheetInput{
		DriverID:     driverID,
		SheetBarcode: strings.TrimSpace(req.SheetBarcode),
		TotalAmount:  req.TotalAmount,
		OrderIDs:     orderIDs,
		CreatedBy:    principal.UserID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, sheet, "Delegate sheet created successfully")
}

// Label handles GET /delegate-sheets/:id/label
func (h *DelegateSheetHandler) Label(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.sheetUC.Label(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
