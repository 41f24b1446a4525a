package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"
	"courier/internal/errors"
	mocks "courier/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		header  string
		setup   func(m *mocks.MockTokenService)
		wantMsg string
	}{
		{name: "missing header", wantMsg: "Authorization header is missing"},
		{name: "basic scheme", header: "Basic abc", wantMsg: "Invalid token format, must be Bearer token"},
		{name: "empty bearer", header: "Bearer   ", wantMsg: "Invalid token format, must be Bearer token"},
		{
			name:   "rejected token",
			header: "Bearer stale",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))
			},
			wantMsg: "Invalid or expired token",
		},
		{
			name:   "unknown role",
			header: "Bearer odd",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateToken("odd").Return(&service.Claims{UserID: userID, Role: "driver"}, nil)
			},
			wantMsg: "Invalid token claims",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mocks.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})
			c, _ := newAuthContext(tt.header)

			err := m.Authenticate(okHandler)(c)

			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
			assert.Equal(t, tt.wantMsg, appErr.Message())
		})
	}
}

func TestAuthenticateThenRequirePermission(t *testing.T) {
	userID := uuid.New()
	tokens := mocks.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("entry").Return(&service.Claims{UserID: userID, Role: string(entity.RoleDataEntry)}, nil)
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})

	c, rec := newAuthContext("Bearer entry")
	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	got, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, got)

	assert.NoError(t, m.RequirePermission(entity.PermissionOrdersWrite)(okHandler)(c))

	err := m.RequirePermission(entity.PermissionDataExport)(okHandler)(c)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequirePermissionWithoutPrincipal(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{})
	c, _ := newAuthContext("")

	err := m.RequirePermission(entity.PermissionOrdersRead)(okHandler)(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
