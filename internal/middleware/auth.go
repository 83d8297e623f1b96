package middleware

import (
	"net/http"
	"strings"

	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

const claimsKey = "claims"

// Auth verifies the bearer token and stores its claims on the context.
func Auth(tokens service.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			claims, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Claims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}
			if !claims.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admin only.")
			}
			return next(c)
		}
	}
}

func Claims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)
	return claims, ok && claims != nil
}

// Actor returns the authenticated caller; the zero Actor when Auth did not run.
func Actor(c echo.Context) service.Actor {
	claims, ok := Claims(c)
	if !ok {
		return service.Actor{}
	}
	return service.Actor{ID: claims.ID, Role: claims.Role}
}
