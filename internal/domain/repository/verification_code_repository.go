package repository

import (
	"context"
	"time"

	"peterparts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVerificationCodeNotFound is returned when no redeemable code matches.
var ErrVerificationCodeNotFound = errors.New("verification code not found")

// VerificationCodeRepository persists one-time login codes.
type VerificationCodeRepository interface {
	// Create stores a new code.
	Create(ctx context.Context, code *entity.VerificationCode) error

	// FindValid returns the code row matching userID and code exactly that is
	// unused and expires after now.
	FindValid(ctx context.Context, userID uuid.UUID, code string, now time.Time) (*entity.VerificationCode, error)

	// MarkUsed claims the code. It only succeeds while the code is still unused,
	// returning ErrVerificationCodeNotFound if another request claimed it first.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// DeleteUnusedByUser removes every unused code for userID and returns the count.
	DeleteUnusedByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteExpired removes every code that expired before now and returns the count.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
