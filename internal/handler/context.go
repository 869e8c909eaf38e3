package handler

import (
	"github.com/labstack/echo/v4"

	"cinelog/internal/auth"
)

// CurrentClaims returns the verified token claims for the request, or nil
// when the request is anonymous (public and optional-identity routes).
// The JWT middleware stores *auth.Claims under the "user" key.
func CurrentClaims(c echo.Context) *auth.Claims {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
