package context

import (
	"peterparts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeySessionClaims is the echo.Context key for verified session claims.
const KeySessionClaims ContextKey = "session_claims"

// SetSessionClaims stores claims that passed signature and expiry checks.
func SetSessionClaims(c echo.Context, claims *service.VerifiedClaims) {
	c.Set(string(KeySessionClaims), claims)
}

// GetSessionClaims returns the verified claims attached to the request, if any.
func GetSessionClaims(c echo.Context) (*service.VerifiedClaims, bool) {
	claims, ok := c.Get(string(KeySessionClaims)).(*service.VerifiedClaims)

	return claims, ok && claims != nil
}
