package middleware

import (
	"net/http"
	"strings"

	"loanflow-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

const claimsKey = "auth.claims"

// JWT authenticates the request from its Authorization: Bearer header and
// stashes the parsed claims in the echo context.
func JWT(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			const prefix = "Bearer "
			if !strings.HasPrefix(raw, prefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := token.Parse(secret, strings.TrimSpace(raw[len(prefix):]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireRole gates a route group to callers holding the given role. Must run
// after JWT.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := CallerClaims(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			}
			if claims.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}

// CallerClaims returns the authenticated caller's claims, or nil on routes
// that never passed through JWT.
func CallerClaims(c echo.Context) *token.Claims {
	claims, _ := c.Get(claimsKey).(*token.Claims)
	return claims
}
