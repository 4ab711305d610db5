// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"peterparts/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// VerifyOTPInput carries the email and the code the user typed in.
type VerifyOTPInput struct {
	Email string
	Code  string
}

// GoogleCallbackInput is what Google sends back to the redirect URI.
type GoogleCallbackInput struct {
	Code  string
	State string
}

// --- Output DTOs ---

// UserDTO is the public view of a user. Provider identifiers stay server side.
type UserDTO struct {
	ID        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	Name      *string             `json:"name"`
	AvatarURL *string             `json:"avatarUrl"`
	Role      entity.Role         `json:"role"`
	Provider  entity.ProviderType `json:"provider"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// NewUserDTO converts a user entity into its public view.
func NewUserDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}

	return &UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
		Provider:  user.Provider,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// SessionOutput is returned by every successful login. The delivery layer
// turns Token into the session cookie.
type SessionOutput struct {
	User  *UserDTO
	Token string
}

// AuthUsecase defines the passwordless and Google login flows.
type AuthUsecase interface {
	// SendOTP finds or creates the account and mails it a fresh code,
	// invalidating any earlier unused code.
	SendOTP(ctx context.Context, email string) error

	// VerifyOTP redeems a code and starts a session.
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*SessionOutput, error)

	// GoogleAuthURL returns the consent screen to redirect the browser to.
	GoogleAuthURL(ctx context.Context) (string, error)

	// GoogleCallback exchanges the authorization code and starts a session.
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*SessionOutput, error)

	// CurrentUser reloads the user behind a verified session.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*UserDTO, error)

	// SweepExpiredCodes deletes verification codes past their expiry.
	SweepExpiredCodes(ctx context.Context) (int64, error)
}
