package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
	"campushelper/internal/service"
)

// PrincipalKey is the echo context key under which the resolved principal is
// stored for downstream handlers.
const PrincipalKey = "principal"

// RequireAuthenticated gates a route behind token verification. The verified
// principal is placed in the request context.
func RequireAuthenticated(authService service.AuthService) echo.MiddlewareFunc {
	return requirePrincipal(authService.RequireAuthenticated)
}

// RequireAdmin gates a route behind token verification plus an admin check.
// Every mutating endpoint must pass through this before touching storage.
func RequireAdmin(authService service.AuthService) echo.MiddlewareFunc {
	return requirePrincipal(authService.RequireAdmin)
}

func requirePrincipal(check func(ctx context.Context, token string) (*model.Principal, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A missing or unparseable header is Unauthenticated, not
			// Malformed; Malformed is reserved for a present token that
			// fails decoding.
			token, ok := bearerToken(c)
			if !ok {
				return httpError(apperrors.ErrUnauthenticated)
			}
			principal, err := check(c.Request().Context(), token)
			if err != nil {
				return httpError(err)
			}
			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// CurrentPrincipal returns the principal stored by the guard middleware, or
// nil on an unguarded route.
func CurrentPrincipal(c echo.Context) *model.Principal {
	principal, _ := c.Get(PrincipalKey).(*model.Principal)
	return principal
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

func httpError(err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
}
