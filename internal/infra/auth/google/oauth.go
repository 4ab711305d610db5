// Package google implements the Google authorization-code flow.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"peterparts/config"
	"peterparts/internal/domain/entity"
	"peterparts/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleOAuth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const stateTTL = 10 * time.Minute

// IDTokenValidator checks a Google ID token against the expected audience.
type IDTokenValidator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

type googleIDTokenValidator struct{}

func (googleIDTokenValidator) Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, idToken, audience)
}

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	oauth     *oauth2.Config
	validator IDTokenValidator
	logger    *slog.Logger
	now       func() time.Time

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	return newOAuthService(cfg, logger, googleIDTokenValidator{})
}

func newOAuthService(cfg *config.Config, logger *slog.Logger, validator IDTokenValidator) *OAuthService {
	oauthCfg := cfg.GoogleOAuth
	if oauthCfg == nil {
		oauthCfg = &config.GoogleOAuthConfig{}
	}

	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     oauthCfg.ClientID,
			ClientSecret: oauthCfg.ClientSecret,
			RedirectURL:  oauthCfg.RedirectURI,
			Scopes:       oauthCfg.Scopes,
			Endpoint:     googleOAuth.Endpoint,
		},
		validator:  validator,
		logger:     logger,
		now:        time.Now,
		stateStore: make(map[string]time.Time),
	}
}

// AuthorizationURL returns the consent screen URL carrying a fresh state value.
func (s *OAuthService) AuthorizationURL() (string, error) {
	state, err := generateState()
	if err != nil {
		return "", err
	}

	s.storeState(state)

	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// ValidateState consumes a state value. Each value is accepted at most once.
func (s *OAuthService) ValidateState(state string) bool {
	if state == "" {
		return false
	}

	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}
	delete(s.stateStore, state)

	return s.now().Before(expiry)
}

// Exchange trades the authorization code for tokens and returns the profile
// carried by the validated ID token.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response did not include an id_token")
	}

	payload, err := s.validator.Validate(ctx, rawIDToken, s.oauth.ClientID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid id token")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		Name:          stringClaim(payload.Claims, "name"),
		AvatarURL:     stringClaim(payload.Claims, "picture"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		Provider:      entity.ProviderTypeGoogle,
	}

	if user.ID == "" || user.Email == "" {
		return nil, errors.New("id token is missing subject or email")
	}
	if !user.EmailVerified {
		return nil, errors.Errorf("google account email %s is not verified", user.Email)
	}

	s.logger.DebugContext(ctx, "Google profile resolved",
		slog.String("googleID", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// GetProvider returns the OAuth provider type
func (s *OAuthService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	now := s.now()
	for stored, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, stored)
		}
	}

	s.stateStore[state] = now.Add(stateTTL)
}

func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	return hex.EncodeToString(buf), nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}

// email_verified arrives as a bool, though some issuers send "true".
func boolClaim(claims map[string]any, key string) bool {
	switch value := claims[key].(type) {
	case bool:
		return value
	case string:
		return value == "true"
	default:
		return false
	}
}
