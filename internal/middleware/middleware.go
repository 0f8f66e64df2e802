// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"
	"strings"

	"job-portal/internal/api"
	"job-portal/internal/model"
	"job-portal/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenVerifier turns a bearer token into claims.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*service.CustomClaims, error)
}

// Claims returns the claims RequireUser stored on c.
func Claims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims != nil
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// RequireUser accepts any request carrying a valid token.
func RequireUser(v TokenVerifier) echo.MiddlewareFunc {
	return requireRole(v, "")
}

// RequireRole accepts only tokens issued to users with role. A mismatch is
// answered with 401, as for a missing token.
func RequireRole(v TokenVerifier, role model.Role) echo.MiddlewareFunc {
	return requireRole(v, role)
}

func requireRole(v TokenVerifier, role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized: Missing token"})
			}
			claims, err := v.VerifyAccessToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized: Invalid token"})
			}
			if role != "" && claims.Role != role {
				return c.JSON(http.StatusUnauthorized,
					api.Errors("Unauthorized: "+strings.ToUpper(string(role))+" access required"))
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
