package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"peterparts/config"
	"peterparts/internal/delivery/api/middleware"
	"peterparts/internal/delivery/api/response"
	deliverycontext "peterparts/internal/delivery/context"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/infra/auth"
	"peterparts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultFrontendURL   = "http://localhost:3001"
	frontendCallbackPath = "/auth/callback"
	authFailedReason     = "authentication_failed"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	CookiePolicy *auth.CookiePolicy
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthHandler serves the OTP and Google login endpoints.
type AuthHandler struct {
	authUC      usecase.AuthUsecase
	cookies     *auth.CookiePolicy
	frontendURL string
	logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	frontendURL := defaultFrontendURL
	if params.Config != nil && params.Config.Frontend.URL != "" {
		frontendURL = strings.TrimRight(params.Config.Frontend.URL, "/")
	}

	return &AuthHandler{
		authUC:      params.AuthUC,
		cookies:     params.CookiePolicy,
		frontendURL: frontendURL,
		logger:      params.Logger,
	}
}

// SendOTPRequest represents the request body for requesting a login code
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest represents the request body for redeeming a login code
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// VerifyOTPResponse is returned after a successful OTP login.
type VerifyOTPResponse struct {
	User    *usecase.UserDTO `json:"user"`
	Message string           `json:"message"`
}

// SendOTP handles POST /auth/otp/send
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		if req.Email == "" {
			return response.HandleAppError(c, domainerrors.ErrEmailRequired)
		}

		return response.HandleAppError(c, domainerrors.ErrInvalidEmailFormat)
	}

	if err := h.authUC.SendOTP(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Verification code sent successfully")
}

// VerifyOTP handles POST /auth/otp/verify
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrEmailAndCodeRequired)
	}

	session, err := h.authUC.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.cookies.SessionCookie(session.Token))

	return response.JSON(c, http.StatusOK, VerifyOTPResponse{
		User:    session.User,
		Message: "Authentication successful",
	})
}

// GoogleLogin handles GET /auth/google by redirecting to the consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	authURL, err := h.authUC.GoogleAuthURL(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback handles GET /auth/google/callback. It always redirects to
// the frontend, on failure too, so the browser flow never ends on JSON.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	logger := deliverycontext.Logger(c.Request().Context(), h.logger)

	if providerErr := c.QueryParam("error"); providerErr != "" {
		logger.Warn("Google returned an error", slog.String("error", providerErr))

		return h.redirectToFrontend(c, url.Values{"error": {providerErr}})
	}

	session, err := h.authUC.GoogleCallback(c.Request().Context(), &usecase.GoogleCallbackInput{
		Code:  c.QueryParam("code"),
		State: c.QueryParam("state"),
	})
	if err != nil {
		logger.Warn("Google sign-in failed", slog.Any("error", err))

		return h.redirectToFrontend(c, url.Values{"error": {authFailedReason}})
	}

	c.SetCookie(h.cookies.SessionCookie(session.Token))

	return h.redirectToFrontend(c, url.Values{"success": {"true"}})
}

// Logout handles POST /auth/logout. Sessions are stateless, so clearing the
// cookie is all there is to do.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookies.ClearedCookie())

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNotAuthenticated)
	}

	user, err := h.authUC.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, user)
}

func (h *AuthHandler) redirectToFrontend(c echo.Context, query url.Values) error {
	return c.Redirect(http.StatusFound, h.frontendURL+frontendCallbackPath+"?"+query.Encode())
}
