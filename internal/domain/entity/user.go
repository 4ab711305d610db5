// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. It is created on the first OTP request or the
// first Google sign-in and is never hard-deleted by the auth flows.
type User struct {
	ID        uuid.UUID
	Email     string  // Unique across all users.
	Name      *string // Optional display name.
	AvatarURL *string
	Role      Role
	Provider  ProviderType // Provider the account was first created with.
	GoogleID  *string      // Unique when set.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEmailUser builds a customer account for a first-time OTP login.
func NewEmailUser(email string) *User {
	return &User{
		Email:    email,
		Role:     RoleCustomer,
		Provider: ProviderTypeEmail,
	}
}

// NewGoogleUser builds a customer account for a first-time Google sign-in.
func NewGoogleUser(email, googleID string, name, avatarURL *string) *User {
	return &User{
		Email:     email,
		Name:      name,
		AvatarURL: avatarURL,
		Role:      RoleCustomer,
		Provider:  ProviderTypeGoogle,
		GoogleID:  &googleID,
	}
}

// ApplyProfile overwrites name and avatar only with non-empty provider values,
// keeping what is already stored otherwise. It reports whether anything changed.
func (u *User) ApplyProfile(name, avatarURL string) bool {
	changed := false
	if name != "" && (u.Name == nil || *u.Name != name) {
		u.Name = &name
		changed = true
	}
	if avatarURL != "" && (u.AvatarURL == nil || *u.AvatarURL != avatarURL) {
		u.AvatarURL = &avatarURL
		changed = true
	}

	return changed
}

// LinkGoogle attaches a Google identity to an existing account.
func (u *User) LinkGoogle(googleID string) {
	u.GoogleID = &googleID
}
