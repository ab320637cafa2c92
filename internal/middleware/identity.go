package middleware

import "github.com/labstack/echo/v4"

// currentUserID returns the authenticated user's id, or "anon" for
// unauthenticated requests.  Used when building rate limit keys.
func currentUserID(c echo.Context) string {
	if claims, ok := CurrentUser(c); ok {
		return claims.ID
	}
	return "anon"
}
