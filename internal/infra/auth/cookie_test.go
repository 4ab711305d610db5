package auth

import (
	"net/http"
	"testing"
	"time"

	"peterparts/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCookiePolicy(t *testing.T, cfg *config.Config) *CookiePolicy {
	t.Helper()

	cfg.SecretKey.Session = "cookie-test-secret"
	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	return NewCookiePolicy(cfg, tokens)
}

func TestCookiePolicy_Development(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "development"

	cookie := newTestCookiePolicy(t, cfg).SessionCookie("token-value")

	assert.Equal(t, "auth_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestCookiePolicy_Production(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "production"
	cfg.Auth = &config.AuthConfig{SessionTTL: time.Hour}

	policy := newTestCookiePolicy(t, cfg)
	cookie := policy.SessionCookie("token-value")

	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)

	cleared := policy.ClearedCookie()
	assert.Equal(t, "auth_token", cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
	assert.True(t, cleared.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cleared.SameSite)
}
