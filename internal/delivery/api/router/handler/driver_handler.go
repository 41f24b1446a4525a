package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"courier/internal/delivery/api/response"
	"courier/internal/domain/entity"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DriverHandlerParams holds dependencies for DriverHandler, injected by Fx.
type DriverHandlerParams struct {
	fx.In

	DriverUC usecase.DriverUsecase
	Logger   *slog.Logger
}

// DriverHandler holds dependencies for driver-related handlers
type DriverHandler struct {
	driverUC usecase.DriverUsecase
	logger   *slog.Logger
}

// NewDriverHandler is the constructor for DriverHandler
func NewDriverHandler(params DriverHandlerParams) *DriverHandler {
	return &DriverHandler{
		driverUC: params.DriverUC,
		logger:   params.Logger,
	}
}

// ListDriversQuery represents the query string of GET /drivers
type ListDriversQuery struct {
	PageQuery
	All    bool   `query:"all"`
	Search string `query:"search"`
}

// CreateDriverRequest represents the request body for creating a driver
type CreateDriverRequest struct {
	DriverName     string   `json:"driver_name" validate:"required,max=200"`
	DriverPhone    string   `json:"driver_phone" validate:"required,max=50"`
	DriverIDNumber string   `json:"driver_id_number" validate:"required,max=50"`
	AssignedAreas  []string `json:"assigned_areas"`
}

// UpdateDriverRequest represents a partial driver update; absent fields are kept
type UpdateDriverRequest struct {
	DriverName     *string   `json:"driver_name" validate:"omitempty,min=1,max=200"`
	DriverPhone    *string   `json:"driver_phone" validate:"omitempty,min=1,max=50"`
	DriverIDNumber *string   `json:"driver_id_number" validate:"omitempty,min=1,max=50"`
	AssignedAreas  *[]string `json:"assigned_areas"`
}

// ListDrivers handles GET /drivers
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	var query ListDriversQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid driver query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.driverUC.ListDrivers(c.Request().Context(), usecase.ListDriversInput{
		Filter: entity.DriverFilter{Search: strings.TrimSpace(query.Search)},
		Page:   query.PageRequest(),
		All:    query.All,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page)
}

// GetDriver handles GET /drivers/:id
func (h *DriverHandler) GetDriver(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, driver)
}

// CreateDriver handles POST /drivers
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	var req CreateDriverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid driver input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	driver, err := h.driverUC.CreateDriver(c.Request().Context(), usecase.CreateDriverInput{
		DriverName:     strings.TrimSpace(req.DriverName),
		DriverPhone:    strings.TrimSpace(req.DriverPhone),
		DriverIDNumber: strings.TrimSpace(req.DriverIDNumber),
		AssignedAreas:  req.AssignedAreas,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, driver, "Driver created successfully")
}

// UpdateDriver handles PUT /drivers/:id
func (h *DriverHandler) UpdateDriver(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateDriverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid driver input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	driver, err := h.driverUC.UpdateDriver(c.Request().Context(), id, entity.DriverChanges{
		DriverName:     trimmed(req.DriverName),
		DriverPhone:    trimmed(req.DriverPhone),
		DriverIDNumber: trimmed(req.DriverIDNumber),
		AssignedAreas:  req.AssignedAreas,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, driver, "Driver updated successfully")
}

// DeleteDriver handles DELETE /drivers/:id
func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.driverUC.DeleteDriver(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, nil, "Driver deleted successfully")
}
