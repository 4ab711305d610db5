package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"peterparts/config"
	deliverycontext "peterparts/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are probe and scrape endpoints that would drown the access log.
var quietPaths = []string{"/health", "/metrics"}

// LoggerMiddleware controllable logging middleware
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle logs every request in debug mode. Outside debug mode only failed
// requests are logged.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if isQuietPath(c.Request().URL.Path) {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		if m.debug || err != nil || c.Response().Status >= 500 {
			m.logRequest(c, start, err)
		}

		return err
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// Query strings on the OAuth callback carry the authorization code.
	if len(req.URL.RawQuery) > 0 && !strings.HasSuffix(req.URL.Path, "/callback") {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if claims, ok := deliverycontext.GetSessionClaims(c); ok {
		fields = append(fields, slog.String("user_id", claims.UserID.String()))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

func isQuietPath(path string) bool {
	for _, quiet := range quietPaths {
		if path == quiet || strings.HasPrefix(path, quiet+"/") {
			return true
		}
	}

	return false
}
