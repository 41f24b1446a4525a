package handler

import (
	"net/http"

	"courier/internal/delivery/api/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CityHandlerParams holds dependencies for CityHandler, injected by Fx.
type CityHandlerParams struct {
	fx.In

	CityUC usecase.CityUsecase
}

// CityHandler serves the city lookup
type CityHandler struct {
	cityUC usecase.CityUsecase
}

// NewCityHandler is the constructor for CityHandler
func NewCityHandler(params CityHandlerParams) *CityHandler {
	return &CityHandler{cityUC: params.CityUC}
}

// ListCitiesQuery represents the query string of GET /cities
type ListCitiesQuery struct {
	Search string `query:"search"`
}

// CreateCityRequest represents the request body for creating a city
type CreateCityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ListCities handles GET /cities
func (h *CityHandler) ListCities(c echo.Context) error {
	var query ListCitiesQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid city query")
	}

	cities, err := h.cityUC.ListCities(c.Request().Context(), query.Search)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cities)
}

// CreateCity handles POST /cities
func (h *CityHandler) CreateCity(c echo.Context) error {
	var req CreateCityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid city input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	city, err := h.cityUC.CreateCity(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, city, "City created successfully")
}
