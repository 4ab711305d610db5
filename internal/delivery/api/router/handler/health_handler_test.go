package handler

import (
	"net/http"
	"testing"

	mockRepo "peterparts/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	checker := mockRepo.NewMockHealthChecker(t)
	h := NewHealthHandler(HealthHandlerParams{HealthChecker: checker, Logger: newDiscardLogger()})

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/health", "")
	require.NoError(t, h.Live(c))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	checker.EXPECT().Ping(mock.Anything).Return(nil).Once()
	c, rec = newJSONContext(newTestEcho(), http.MethodGet, "/health/ready", "")
	require.NoError(t, h.Ready(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","database":"ok"}`, rec.Body.String(), "same bare shape as /health")

	checker.EXPECT().Ping(mock.Anything).Return(errors.New("dial tcp: refused")).Once()
	c, rec = newJSONContext(newTestEcho(), http.MethodGet, "/health/ready", "")
	require.NoError(t, h.Ready(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", decodeError(t, rec).Code)
}
