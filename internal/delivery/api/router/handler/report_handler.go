package handler

import (
	"net/http"

	"courier/internal/delivery/api/response"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

// ReportHandler serves the reports and dashboard counters
type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{reportUC: params.ReportUC}
}

// FinancialQuery represents the query string of GET /reports/financial
type FinancialQuery struct {
	DateRangeQuery
	GroupBy string `query:"groupBy" validate:"omitempty,oneof=day week month"`
}

// OrdersByStatus handles GET /reports/orders-by-status
func (h *ReportHandler) OrdersByStatus(c echo.Context) error {
	rng, err := bindDateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.OrdersByStatus(c.Request().Context(), rng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// OrdersByCity handles GET /reports/orders-by-city
func (h *ReportHandler) OrdersByCity(c echo.Context) error {
	rng, err := bindDateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.OrdersByCity(c.Request().Context(), rng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// DriversPerformance handles GET /reports/drivers-performance
func (h *ReportHandler) DriversPerformance(c echo.Context) error {
	rng, err := bindDateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.DriversPerformance(c.Request().Context(), rng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// Financial handles GET /reports/financial
func (h *ReportHandler) Financial(c echo.Context) error {
	var query FinancialQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid report query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	rng, err := query.DateRange()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.Financial(c.Request().Context(), rng, entity.ReportGroupBy(query.GroupBy))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// OrderStats handles GET /stats/orders
func (h *ReportHandler) OrderStats(c echo.Context) error {
	stats, err := h.reportUC.OrderStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func bindDateRange(c echo.Context) (entity.DateRange, error) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return entity.DateRange{}, domainerrors.ErrInvalidDateRange
	}
	if err := c.Validate(&query); err != nil {
		return entity.DateRange{}, err
	}

	return query.DateRange()
}
