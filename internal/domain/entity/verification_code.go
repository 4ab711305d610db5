package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode is a single-use six digit login code sent by email.
type VerificationCode struct {
	ID        uuid.UUID
	Code      string
	UserID    uuid.UUID
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// NewVerificationCode builds an unused code for userID that expires after ttl.
func NewVerificationCode(userID uuid.UUID, code string, now time.Time, ttl time.Duration) *VerificationCode {
	return &VerificationCode{
		Code:      code,
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
	}
}

// IsValid reports whether the code can still be redeemed at now.
func (v *VerificationCode) IsValid(now time.Time) bool {
	return v.UsedAt == nil && v.ExpiresAt.After(now)
}
