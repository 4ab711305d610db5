// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"peterparts/config"
	"peterparts/internal/domain/entity"
	"peterparts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// sessionClaims is the wire format of a session token.
type sessionClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. A missing secret aborts start-up.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs the payload with an expiry of ttl from now.
func (s *jwtService) Issue(payload service.SessionPayload) (string, error) {
	now := s.now()
	claims := sessionClaims{
		UserID: payload.UserID.String(),
		Email:  payload.Email,
		Role:   payload.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify returns the claims of a valid token, or false for any failure.
func (s *jwtService) Verify(tokenString string) (*service.VerifiedClaims, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, false
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, false
	}

	verified := &service.VerifiedClaims{
		SessionPayload: service.SessionPayload{
			UserID: userID,
			Email:  claims.Email,
			Role:   role,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		verified.IssuedAt = claims.IssuedAt.Time
	}

	return verified, true
}

// Decode reads the claims without checking signature or expiry.
func (s *jwtService) Decode(tokenString string) (*service.DecodedClaims, bool) {
	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, false
	}

	decoded := &service.DecodedClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time
		decoded.ExpiresAt = &expiresAt
	}

	return decoded, true
}

// TTL is the lifetime of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
