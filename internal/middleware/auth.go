package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/acara-ticketing/internal/response"
	"github.com/iliyamo/acara-ticketing/internal/utils"
)

// claimsKey is the echo.Context key holding the verified utils.Claims.
const claimsKey = "user"

// JWTAuth verifies the Bearer token of each request and stores its claims
// in the context.  A missing or invalid token is answered with a 403
// envelope; the reason is never disclosed.
func JWTAuth(issuer *utils.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, raw, ok := strings.Cut(auth, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				return response.Unauthorized(c, "")
			}
			claims, err := issuer.Verify(strings.TrimSpace(raw))
			if err != nil {
				return response.Unauthorized(c, "")
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// CurrentUser returns the claims stored by JWTAuth.
func CurrentUser(c echo.Context) (utils.Claims, bool) {
	claims, ok := c.Get(claimsKey).(utils.Claims)
	return claims, ok && claims.ID != ""
}
