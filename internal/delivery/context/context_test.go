package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestLoggerFallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestSetPrincipal(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithLogger(WithRequestID(req.Context(), "req-1"), logger))
	c := e.NewContext(req, httptest.NewRecorder())

	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleAccounts}
	SetPrincipal(c, principal)

	got, ok := GetPrincipal(c)
	assert.True(t, ok)
	assert.Equal(t, principal, got)

	ctx := c.Request().Context()
	fromCtx, ok := GetPrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, principal, fromCtx)
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))

	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), "user_id="+principal.UserID.String())
}

func TestGetRequestIDFallsBackToHeader(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Response().Header().Set(HeaderXRequestID, "from-header")

	assert.Equal(t, "from-header", GetRequestID(c))

	SetRequestID(c, "from-context")
	assert.Equal(t, "from-context", GetRequestID(c))
}
