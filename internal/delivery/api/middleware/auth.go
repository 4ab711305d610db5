package middleware

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"peterparts/internal/delivery/api/response"
	deliverycontext "peterparts/internal/delivery/context"
	"peterparts/internal/domain/entity"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/domain/service"
	"peterparts/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for session authentication and role gates.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Authenticate rejects the request unless it carries a valid session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := extractToken(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrAuthenticationRequired)
		}

		claims, ok := m.tokenSvc.Verify(token)
		if !ok {
			m.logRejected(c, token)

			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetSessionClaims(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present
// and otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := extractToken(c); ok {
			if claims, ok := m.tokenSvc.Verify(token); ok {
				deliverycontext.SetSessionClaims(c, claims)
			} else {
				m.logRejected(c, token)
			}
		}

		return next(c)
	}
}

// RequireRole admits only the listed roles. There is no implied hierarchy,
// so every accepted role must be named. It must run after Authenticate or
// OptionalAuthenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetSessionClaims(c)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrAuthenticationRequired)
			}

			if !slices.Contains(roles, claims.Role) {
				return response.HandleAppError(c, domainerrors.ErrInsufficientPermissions)
			}

			return next(c)
		}
	}
}

// RequireAdmin admits administrators only.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleAdmin)
}

// RequireCustomer admits customers and administrators.
func (m *AuthMiddleware) RequireCustomer() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleCustomer, entity.RoleAdmin)
}

// GetClaims returns the verified session claims of the request.
func GetClaims(c echo.Context) (*service.VerifiedClaims, bool) {
	return deliverycontext.GetSessionClaims(c)
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := deliverycontext.GetSessionClaims(c)
	if !ok {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// logRejected records who a refused token claimed to be. The unverified
// claims are only logged, never trusted.
func (m *AuthMiddleware) logRejected(c echo.Context, token string) {
	attrs := []any{slog.String("path", c.Path())}

	if decoded, ok := m.tokenSvc.Decode(token); ok {
		attrs = append(attrs, slog.String("claimed_user_id", decoded.UserID))
		if decoded.ExpiresAt != nil {
			attrs = append(attrs, slog.Bool("expired", decoded.ExpiresAt.Before(time.Now())))
		}
	} else {
		attrs = append(attrs, slog.Bool("malformed", true))
	}

	deliverycontext.Logger(c.Request().Context(), m.logger).Info("Rejected session token", attrs...)
}

// extractToken reads the session cookie first, then an exact "Bearer " header.
func extractToken(c echo.Context) (string, bool) {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" {
		return "", false
	}

	return token, true
}
