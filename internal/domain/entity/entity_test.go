package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUser_ApplyProfile(t *testing.T) {
	name := "Old Name"
	user := &User{Name: &name}

	changed := user.ApplyProfile("", "")
	assert.False(t, changed)
	assert.Equal(t, "Old Name", *user.Name)
	assert.Nil(t, user.AvatarURL)

	changed = user.ApplyProfile("New Name", "https://img.example.com/a.png")
	assert.True(t, changed)
	assert.Equal(t, "New Name", *user.Name)
	assert.Equal(t, "https://img.example.com/a.png", *user.AvatarURL)

	changed = user.ApplyProfile("New Name", "https://img.example.com/a.png")
	assert.False(t, changed)
}

func TestNewUsers_DefaultToCustomer(t *testing.T) {
	emailUser := NewEmailUser("a@b.com")
	assert.Equal(t, RoleCustomer, emailUser.Role)
	assert.Equal(t, ProviderTypeEmail, emailUser.Provider)
	assert.Nil(t, emailUser.GoogleID)

	googleUser := NewGoogleUser("a@b.com", "sub-1", nil, nil)
	assert.Equal(t, RoleCustomer, googleUser.Role)
	assert.Equal(t, ProviderTypeGoogle, googleUser.Provider)
	assert.Equal(t, "sub-1", *googleUser.GoogleID)
}

func TestVerificationCode_IsValid(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	code := NewVerificationCode(uuid.New(), "123456", now, 10*time.Minute)

	assert.True(t, code.IsValid(now))
	assert.True(t, code.IsValid(now.Add(9*time.Minute)))
	assert.False(t, code.IsValid(now.Add(10*time.Minute)))

	used := now.Add(time.Minute)
	code.UsedAt = &used
	assert.False(t, code.IsValid(now))
}

func TestRoles_Contains(t *testing.T) {
	roles := Roles{RoleCustomer, RoleAdmin}
	assert.True(t, roles.Contains(RoleAdmin))
	assert.False(t, Roles{RoleAdmin}.Contains(RoleCustomer))
	assert.Equal(t, []string{"Customer", "Admin"}, roles.ToStrings())
	assert.False(t, Role("Merchant").IsValid())
}

func TestProductChanges(t *testing.T) {
	empty := &ProductChanges{}
	assert.True(t, empty.IsEmpty())

	title := "Stand Mixer"
	price := decimal.RequireFromString("199.99")
	changes := &ProductChanges{Title: &title, Price: &price, Images: []string{}}
	assert.False(t, changes.IsEmpty())
	assert.False(t, (&ProductChanges{Images: []string{}}).IsEmpty(), "an empty slice clears the list")
}

func TestBrand_IsValid(t *testing.T) {
	assert.True(t, BrandCuisinart.IsValid())
	assert.True(t, BrandKitchenaid.IsValid())
	assert.False(t, Brand("kitchenaid").IsValid())
}
