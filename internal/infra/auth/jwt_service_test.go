package auth

import (
	"strings"
	"testing"
	"time"

	"peterparts/config"
	"peterparts/internal/domain/entity"
	"peterparts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testPayload() service.SessionPayload {
	return service.SessionPayload{
		UserID: uuid.New(),
		Email:  "a@b.com",
		Role:   entity.RoleCustomer,
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t)
	payload := testPayload()

	token, err := svc.Issue(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, ok := svc.Verify(token)
	require.True(t, ok)
	assert.Equal(t, payload, claims.SessionPayload)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt, 5*time.Second)
	assert.Equal(t, 7*24*time.Hour, svc.TTL())
}

func TestJWTService_VerifyRejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(testPayload())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: uuid.NewString(),
		Email:  "a@b.com",
		Role:   entity.RoleAdmin.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	forgedToken, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)
	forgedParts := strings.Split(forgedToken, ".")

	tests := map[string]string{
		"garbage":           "clearly-not-a-jwt-token-format",
		"empty":             "",
		"swapped payload":   parts[0] + "." + forgedParts[1] + "." + parts[2],
		"truncated":         parts[0] + "." + parts[1],
		"foreign signature": forgedToken,
	}

	for name, candidate := range tests {
		t.Run(name, func(t *testing.T) {
			claims, ok := svc.Verify(candidate)
			assert.False(t, ok)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)
	issuedAt := time.Now().Add(-8 * 24 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(testPayload())
	require.NoError(t, err)

	svc.now = time.Now
	claims, ok := svc.Verify(token)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyRejectsOtherAlgorithms(t *testing.T) {
	svc := newTestTokenService(t)

	claims := sessionClaims{
		UserID: uuid.NewString(),
		Role:   entity.RoleAdmin.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, ok := svc.Verify(hs512)
	assert.False(t, ok)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, ok = svc.Verify(none)
	assert.False(t, ok)
}

func TestJWTService_VerifyRejectsUnknownRole(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: uuid.NewString(),
		Role:   "Merchant",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, ok := svc.Verify(token)
	assert.False(t, ok)
}

func TestJWTService_DecodeSkipsSignature(t *testing.T) {
	svc := newTestTokenService(t)
	payload := testPayload()

	token, err := svc.Issue(payload)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	decoded, ok := svc.Decode(tampered)
	require.True(t, ok)
	assert.Equal(t, payload.UserID.String(), decoded.UserID)
	assert.Equal(t, payload.Email, decoded.Email)
	assert.Equal(t, "Customer", decoded.Role)
	require.NotNil(t, decoded.ExpiresAt)

	_, ok = svc.Decode("not-a-token")
	assert.False(t, ok)
}
