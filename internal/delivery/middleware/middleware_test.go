package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"peterparts/config"
	deliverycontext "peterparts/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "reuses client id", header: "abc-123", wantKeep: true},
		{name: "generates when missing", header: ""},
		{name: "replaces unsafe id", header: "bad id\nwith newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewRequestIDMiddleware(newBufferLogger(&buf))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seenCtxID string
			err := mw.Process(func(c echo.Context) error {
				seenCtxID = deliverycontext.RequestIDFromContext(c.Request().Context())
				deliverycontext.Logger(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenCtxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.Contains(t, buf.String(), `"request_id":"`+got+`"`)

			if tt.wantKeep {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	run := func(debug bool, path string, status int) string {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		mw := NewLoggerMiddleware(newBufferLogger(&buf), cfg)

		req := httptest.NewRequest(http.MethodGet, path, nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		_ = mw.Handle(func(c echo.Context) error {
			return c.NoContent(status)
		})(c)

		return buf.String()
	}

	assert.Contains(t, run(true, "/products", http.StatusOK), `"msg":"HTTP Request"`)
	assert.Empty(t, run(false, "/products", http.StatusOK), "successful requests are only logged in debug")
	assert.Contains(t, run(false, "/products", http.StatusInternalServerError), `"level":"ERROR"`)
	assert.Empty(t, run(true, "/health/ready", http.StatusOK))
	assert.Empty(t, run(true, "/metrics", http.StatusOK))

	callback := run(true, "/auth/google/callback?code=secret&state=s", http.StatusFound)
	assert.NotContains(t, callback, "secret")
}
