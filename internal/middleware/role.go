package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/acara-ticketing/internal/response"
)

// RequireRole lets the request through only when the authenticated user
// holds one of roles.  It must run after JWTAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentUser(c)
			if !ok || !allowed[claims.Role] {
				return response.Unauthorized(c, "forbidden")
			}
			return next(c)
		}
	}
}
