package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: development
  log:
    level: info
http:
  port: 3000
  allowedOrigins:
    - http://localhost:3001
secretKey:
  session: from-file
otp:
  expiry: 5m
  sweepInterval: 30m
email:
  provider: resend
  from: shop@example.com
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_SESSION", "from-env")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("HTTP_ALLOWEDORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Session)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
	require.NotNil(t, cfg.OTP)
	assert.Equal(t, 5*time.Minute, cfg.OTP.Expiry)
	assert.Equal(t, 30*time.Minute, cfg.OTP.SweepInterval)
	require.NotNil(t, cfg.Email)
	assert.Equal(t, "resend", cfg.Email.Provider)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Frontend.URL = "https://shop.example.com/"

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "https://shop.example.com", cfg.Frontend.URL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.OTP.Expiry)
	assert.Zero(t, cfg.OTP.SweepInterval)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxImageBytes)
	assert.Equal(t, []string{"openid", "email", "profile"}, cfg.GoogleOAuth.Scopes)

	empty := &Config{}
	applyDefaults(empty)
	assert.Equal(t, "http://localhost:3001", empty.Frontend.URL)
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsProduction())

	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())
}
