package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"peterparts/internal/delivery/api/response"
	"peterparts/internal/domain/entity"
	"peterparts/internal/domain/service"
	"peterparts/internal/infra/auth"
	mockSvc "peterparts/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimsFor(role entity.Role) *service.VerifiedClaims {
	return &service.VerifiedClaims{SessionPayload: service.SessionPayload{
		UserID: uuid.New(),
		Email:  "a@b.com",
		Role:   role,
	}}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		verify     func(m *mockSvc.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no credentials",
			prepare:    func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTHENTICATION_REQUIRED",
		},
		{
			name:       "non bearer scheme counts as absent",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") },
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTHENTICATION_REQUIRED",
		},
		{
			name:    "invalid bearer token",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer forged") },
			verify: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Verify("forged").Return(nil, false)
				m.EXPECT().Decode("forged").Return(nil, false)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:    "valid bearer token",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
			verify: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Verify("good").Return(claimsFor(entity.RoleCustomer), true)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "cookie wins over header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "from-cookie"})
				r.Header.Set("Authorization", "Bearer from-header")
			},
			verify: func(m *mockSvc.MockTokenService) {
				m.EXPECT().Verify("from-cookie").Return(claimsFor(entity.RoleCustomer), true)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.verify != nil {
				tt.verify(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			} else {
				_, ok := GetUserID(c)
				assert.True(t, ok)
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("expired").Return(nil, false)
	tokenSvc.EXPECT().Decode("expired").Return(nil, false)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

	for _, header := range []string{"", "Token abc", "Bearer expired"} {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code, header)

		_, ok := GetClaims(c)
		assert.False(t, ok, header)
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), newDiscardLogger())

	run := func(gate echo.MiddlewareFunc, claims *service.VerifiedClaims) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/products", nil), rec)
		if claims != nil {
			c.Set("session_claims", claims)
		}
		require.NoError(t, gate(okHandler)(c))

		return rec
	}

	admin := m.RequireAdmin()
	rec := run(admin, claimsFor(entity.RoleCustomer))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "INSUFFICIENT_PERMISSIONS", errorCode(t, rec))

	assert.Equal(t, http.StatusNoContent, run(admin, claimsFor(entity.RoleAdmin)).Code)
	assert.Equal(t, http.StatusUnauthorized, run(admin, nil).Code)

	customer := m.RequireCustomer()
	assert.Equal(t, http.StatusNoContent, run(customer, claimsFor(entity.RoleCustomer)).Code)
	assert.Equal(t, http.StatusNoContent, run(customer, claimsFor(entity.RoleAdmin)).Code)

	customersOnly := m.RequireRole(entity.RoleCustomer)
	assert.Equal(t, http.StatusForbidden, run(customersOnly, claimsFor(entity.RoleAdmin)).Code, "no implied hierarchy")
}

func TestAuthMiddleware_LogsRejectedTokenClaims(t *testing.T) {
	userID := uuid.New().String()
	expiredAt := time.Now().Add(-time.Hour)

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("stale").Return(nil, false)
	tokenSvc.EXPECT().Decode("stale").Return(&service.DecodedClaims{
		UserID:    userID,
		Email:     "a@b.com",
		Role:      "Admin",
		ExpiresAt: &expiredAt,
	}, true)

	var buf bytes.Buffer
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "stale"})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))

	logged := buf.String()
	assert.Contains(t, logged, `"msg":"Rejected session token"`)
	assert.Contains(t, logged, `"claimed_user_id":"`+userID+`"`)
	assert.Contains(t, logged, `"expired":true`)
	assert.NotContains(t, logged, "a@b.com", "unverified email stays out of the log")
}
