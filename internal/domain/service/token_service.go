package service

import (
	"time"

	"peterparts/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionPayload is the identity carried by a session token.
type SessionPayload struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// VerifiedClaims come from a token whose signature and expiry were checked.
// Only this type may feed an authorization decision.
type VerifiedClaims struct {
	SessionPayload
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// DecodedClaims come from an unverified token and are for diagnostics only.
type DecodedClaims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt *time.Time
}

// TokenService issues and checks stateless session tokens.
type TokenService interface {
	// Issue signs payload with an expiry of TTL from now.
	Issue(payload SessionPayload) (string, error)

	// Verify returns the claims when the token is well formed, correctly signed
	// and unexpired. Any failure yields (nil, false), never an error.
	Verify(token string) (*VerifiedClaims, bool)

	// Decode extracts claims without checking the signature.
	Decode(token string) (*DecodedClaims, bool)

	// TTL is the lifetime of issued tokens.
	TTL() time.Duration
}
