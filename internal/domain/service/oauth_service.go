package service

import (
	"context"

	"peterparts/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name, may be empty
	AvatarURL     string              // URL to user's profile picture, may be empty
	EmailVerified bool                // Whether the email is verified by the provider
	Provider      entity.ProviderType // The OAuth provider
}

// OAuthService runs the browser authorization-code flow against a provider.
type OAuthService interface {
	// AuthorizationURL returns the consent screen URL with a fresh state value
	// that the provider will echo back to the callback.
	AuthorizationURL() (string, error)

	// ValidateState consumes a state value issued by AuthorizationURL.
	ValidateState(state string) bool

	// Exchange trades an authorization code for a verified user profile.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}
