package middleware

import (
	"strings"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware resolves the caller from a bearer token and enforces the permission policy.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService}
}

// Authenticate validates the access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return domainerrors.ErrUnauthorized.WithMessage("Invalid or expired token")
		}

		role := entity.Role(claims.Role)
		if claims.UserID == uuid.Nil || !role.IsValid() {
			return domainerrors.ErrUnauthorized.WithMessage("Invalid token claims")
		}

		deliverycontext.SetPrincipal(c, entity.Principal{UserID: claims.UserID, Role: role})

		return next(c)
	}
}

// RequirePermission rejects callers whose role lacks perm.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(perm entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !principal.Role.Can(perm) {
				return domainerrors.ErrForbidden.WithMessage("Permission denied: requires " + string(perm))
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the caller resolved by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	return deliverycontext.GetPrincipal(c)
}

// GetUserID returns the caller's user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}

	return principal.UserID, true
}
