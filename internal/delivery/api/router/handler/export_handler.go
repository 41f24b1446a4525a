package handler

import (
	"log/slog"
	"mime"
	"net/http"

	"courier/internal/delivery/api/response"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExportHandlerParams holds dependencies for ExportHandler, injected by Fx.
type ExportHandlerParams struct {
	fx.In

	ExportUC usecase.ExportUsecase
	Logger   *slog.Logger
}

// ExportHandler serves the admin data export
type ExportHandler struct {
	exportUC usecase.ExportUsecase
	logger   *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler
func NewExportHandler(params ExportHandlerParams) *ExportHandler {
	return &ExportHandler{
		exportUC: params.ExportUC,
		logger:   params.Logger,
	}
}

// ExportQuery represents the query string of GET /data-management/export
type ExportQuery struct {
	Type string `query:"type" validate:"required"`
}

// Export handles GET /data-management/export and streams the file as an attachment
func (h *ExportHandler) Export(c echo.Context) error {
	var query ExportQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid export query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := h.exportUC.Export(c.Request().Context(), query.Type)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Export downloaded",
		slog.String("type", query.Type),
		slog.String("file", file.Name),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))

	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
