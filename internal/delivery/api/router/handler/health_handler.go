package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"peterparts/internal/delivery/api/response"
	"peterparts/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const readinessTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthChecker repository.HealthChecker
	Logger        *slog.Logger
}

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	checker repository.HealthChecker
	logger  *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		checker: params.HealthChecker,
		logger:  params.Logger,
	}
}

// Live handles GET /health
func (h *HealthHandler) Live(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready by pinging the database.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		h.logger.Warn("Readiness check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database is unavailable", nil)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "ready", "database": "ok"})
}
